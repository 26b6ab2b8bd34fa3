// contribution.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContributionHandler handles contribution routes
type ContributionHandler struct {
	DB *gorm.DB
}

// List handles GET /api/contributions with pagination and filters
// @Summary List contributions
// @Description Paginated list, most recent contribution date first
// @Tags Contributions
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param page_size query int false "Page size (1-100)"
// @Param parishioner_id query int false "Filter by parishioner"
// @Param community_id query int false "Filter by community"
// @Param type query string false "Filter by type (TITHE or OFFERING)"
// @Param start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {object} Page[ContributionResponse]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /contributions [get]
func (h *ContributionHandler) List(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	filter := services.ContributionFilter{}
	if filter.ParishionerID, err = queryUint(c, "parishioner_id"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if filter.CommunityID, err = queryUint(c, "community_id"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if raw := c.Query("type"); raw != "" {
		contributionType := models.ContributionType(raw)
		if !contributionType.Valid() {
			return utils.ValidationErrorResponse(c, "type must be TITHE or OFFERING")
		}
		filter.Type = &contributionType
	}
	if filter.StartDate, err = queryDate(c, "start_date"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if filter.EndDate, err = queryDate(c, "end_date"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	contributions, total, err := services.GetContributions(h.DB, page, pageSize, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listContributions")
	}

	return c.Status(fiber.StatusOK).JSON(Page[ContributionResponse]{
		Items:      newContributionResponses(contributions),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: utils.TotalPages(total, pageSize),
	})
}

// Get handles GET /api/contributions/:id
// @Summary Get a contribution
// @Tags Contributions
// @Produce json
// @Param id path int true "Contribution ID"
// @Success 200 {object} ContributionResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /contributions/{id} [get]
func (h *ContributionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	contribution, err := services.GetContribution(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "contribution not found", "getContribution")
	}
	return c.Status(fiber.StatusOK).JSON(newContributionResponse(*contribution))
}

// Create handles POST /api/contributions
// @Summary Record a contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Param contribution body ContributionRequest true "New contribution"
// @Success 201 {object} ContributionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /contributions [post]
func (h *ContributionHandler) Create(c *fiber.Ctx) error {
	var req ContributionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if err := validateContributionCreate(&req); err != nil {
		return utils.ValidationErrorResponse(c, err.Message)
	}

	contribution, err := services.CreateContribution(h.DB, services.ContributionInput{
		ParishionerID:    req.ParishionerID,
		CommunityID:      req.CommunityID,
		Type:             req.Type,
		Amount:           req.Amount,
		ContributionDate: *req.ContributionDate,
		PaymentMethod:    req.PaymentMethod,
		ReferenceMonth:   req.ReferenceMonth,
		Notes:            req.Notes,
	})
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createContribution")
	}
	return c.Status(fiber.StatusCreated).JSON(newContributionResponse(*contribution))
}

// Update handles PATCH /api/contributions/:id
// @Summary Update a contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Param id path int true "Contribution ID"
// @Param contribution body ContributionUpdateRequest true "Fields to update"
// @Success 200 {object} ContributionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /contributions/{id} [patch]
func (h *ContributionHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	var req ContributionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if validationErr := validateContributionUpdate(&req); validationErr != nil {
		return utils.ValidationErrorResponse(c, validationErr.Message)
	}

	contribution, err := services.UpdateContribution(h.DB, id, services.ContributionUpdate{
		ParishionerID:    req.ParishionerID,
		CommunityID:      req.CommunityID,
		Type:             req.Type,
		Amount:           req.Amount,
		ContributionDate: req.ContributionDate,
		PaymentMethod:    req.PaymentMethod,
		ReferenceMonth:   req.ReferenceMonth,
		Notes:            req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err, "contribution not found", "updateContribution")
	}
	return c.Status(fiber.StatusOK).JSON(newContributionResponse(*contribution))
}

// Delete handles DELETE /api/contributions/:id
// @Summary Delete a contribution
// @Description Hard delete
// @Tags Contributions
// @Param id path int true "Contribution ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /contributions/{id} [delete]
func (h *ContributionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if err := services.DeleteContribution(h.DB, id); err != nil {
		return respondServiceError(c, err, "contribution not found", "deleteContribution")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validateContributionCreate rejects invalid contribution input before any
// row is persisted.
func validateContributionCreate(req *ContributionRequest) *types.CustomError {
	if req.CommunityID == 0 {
		return types.NewValidationError("community_id is required")
	}
	if !req.Type.Valid() {
		return types.NewValidationError("type must be TITHE or OFFERING")
	}
	if !req.Amount.IsPositive() {
		return types.NewValidationError("amount must be greater than zero")
	}
	if req.ContributionDate == nil {
		return types.NewValidationError("contribution_date is required")
	}
	if req.ReferenceMonth != nil {
		if err := types.ValidateReferenceMonth(*req.ReferenceMonth); err != nil {
			return types.NewValidationError(err.Error())
		}
	}
	return nil
}

// validateContributionUpdate checks only the supplied fields.
func validateContributionUpdate(req *ContributionUpdateRequest) *types.CustomError {
	if req.Type != nil && !req.Type.Valid() {
		return types.NewValidationError("type must be TITHE or OFFERING")
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return types.NewValidationError("amount must be greater than zero")
	}
	if req.ReferenceMonth != nil {
		if err := types.ValidateReferenceMonth(*req.ReferenceMonth); err != nil {
			return types.NewValidationError(err.Error())
		}
	}
	return nil
}
