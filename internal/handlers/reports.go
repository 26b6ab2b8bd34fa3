// reports.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportHandler handles report routes
type ReportHandler struct {
	DB *gorm.DB
}

// PeriodTotal handles GET /api/reports/period-total
// @Summary Total contributions in a period
// @Description Sum and count of contributions with a date in [start_date, end_date] inclusive
// @Tags Reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param community_id query int false "Filter by community"
// @Success 200 {object} PeriodTotalResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /reports/period-total [get]
func (h *ReportHandler) PeriodTotal(c *fiber.Ctx) error {
	start, err := requireQueryDate(c, "start_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	end, err := requireQueryDate(c, "end_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if start.Time().After(end.Time()) {
		return utils.ValidationErrorResponse(c, "start_date must not be after end_date")
	}
	communityID, err := queryUint(c, "community_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	total, err := services.GetPeriodTotal(h.DB, start, end, communityID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "periodTotal")
	}

	return c.Status(fiber.StatusOK).JSON(PeriodTotalResponse{
		Total:       total.Total.StringFixed(2),
		Count:       total.Count,
		StartDate:   start,
		EndDate:     end,
		CommunityID: communityID,
	})
}

// TypeTotals handles GET /api/reports/type-totals
// @Summary Contribution totals grouped by type
// @Description One entry per declared type, zero-filled when no rows match
// @Tags Reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param community_id query int false "Filter by community"
// @Success 200 {object} TypeTotalsResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /reports/type-totals [get]
func (h *ReportHandler) TypeTotals(c *fiber.Ctx) error {
	start, err := requireQueryDate(c, "start_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	end, err := requireQueryDate(c, "end_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if start.Time().After(end.Time()) {
		return utils.ValidationErrorResponse(c, "start_date must not be after end_date")
	}
	communityID, err := queryUint(c, "community_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	totals, err := services.GetTotalsByType(h.DB, start, end, communityID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "typeTotals")
	}

	entries := make([]TypeTotalResponse, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, TypeTotalResponse{
			Type:  t.Type,
			Total: t.Total.StringFixed(2),
			Count: t.Count,
		})
	}

	return c.Status(fiber.StatusOK).JSON(TypeTotalsResponse{
		StartDate:   start,
		EndDate:     end,
		CommunityID: communityID,
		Totals:      entries,
	})
}

// History handles GET /api/reports/parishioners/:id/history
// @Summary A parishioner's contribution history
// @Tags Reports
// @Produce json
// @Param id path int true "Parishioner ID"
// @Success 200 {object} HistoryResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /reports/parishioners/{id}/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	history, err := services.GetParishionerHistory(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "parishioner not found", "history")
	}
	return c.Status(fiber.StatusOK).JSON(newHistoryResponse(history))
}

// Birthdays handles GET /api/reports/birthdays
// @Summary Parishioners with birthdays in the selected period
// @Description period is one of today, 7days, month. Only active parishioners with a birth date are reported.
// @Tags Reports
// @Produce json
// @Param period query string true "today, 7days, or month"
// @Param community_id query int false "Filter by community"
// @Success 200 {array} services.BirthdayRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /reports/birthdays [get]
func (h *ReportHandler) Birthdays(c *fiber.Ctx) error {
	period := services.BirthdayPeriod(c.Query("period"))
	if !period.Valid() {
		return utils.ValidationErrorResponse(c, "period must be today, 7days, or month")
	}
	communityID, err := queryUint(c, "community_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	rows, err := services.GetBirthdays(h.DB, period, communityID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "birthdays")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
