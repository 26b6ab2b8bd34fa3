// parishioner.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParishionerHandler handles parishioner routes
type ParishionerHandler struct {
	DB *gorm.DB
}

// List handles GET /api/parishioners with pagination and filters
// @Summary List parishioners
// @Description Paginated list, ordered by name. The search filter matches name, phone, or email case-insensitively.
// @Tags Parishioners
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param page_size query int false "Page size (1-100)"
// @Param search query string false "Substring search over name, phone, email"
// @Param community_id query int false "Filter by community"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} Page[models.Parishioner]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishioners [get]
func (h *ParishionerHandler) List(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	filter := services.ParishionerFilter{}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if filter.CommunityID, err = queryUint(c, "community_id"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if filter.Active, err = queryBool(c, "active"); err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	parishioners, total, err := services.GetParishioners(h.DB, page, pageSize, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listParishioners")
	}

	return c.Status(fiber.StatusOK).JSON(Page[models.Parishioner]{
		Items:      parishioners,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: utils.TotalPages(total, pageSize),
	})
}

// Get handles GET /api/parishioners/:id
// @Summary Get a parishioner
// @Tags Parishioners
// @Produce json
// @Param id path int true "Parishioner ID"
// @Success 200 {object} models.Parishioner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishioners/{id} [get]
func (h *ParishionerHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	parishioner, err := services.GetParishioner(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "parishioner not found", "getParishioner")
	}
	return c.Status(fiber.StatusOK).JSON(parishioner)
}

// Create handles POST /api/parishioners
// @Summary Create a parishioner
// @Tags Parishioners
// @Accept json
// @Produce json
// @Param parishioner body ParishionerRequest true "New parishioner"
// @Success 201 {object} models.Parishioner
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishioners [post]
func (h *ParishionerHandler) Create(c *fiber.Ctx) error {
	var req ParishionerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, "name is required")
	}
	if req.CommunityID == 0 {
		return utils.ValidationErrorResponse(c, "community_id is required")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	parishioner, err := services.CreateParishioner(h.DB, services.ParishionerInput{
		CommunityID: req.CommunityID,
		Name:        req.Name,
		NationalID:  req.NationalID,
		Phone:       req.Phone,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		Address:     req.Address,
		Active:      active,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err, "parishioner not found", "createParishioner")
	}
	return c.Status(fiber.StatusCreated).JSON(parishioner)
}

// Update handles PATCH /api/parishioners/:id
// @Summary Update a parishioner
// @Tags Parishioners
// @Accept json
// @Produce json
// @Param id path int true "Parishioner ID"
// @Param parishioner body ParishionerUpdateRequest true "Fields to update"
// @Success 200 {object} models.Parishioner
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishioners/{id} [patch]
func (h *ParishionerHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	var req ParishionerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return utils.ValidationErrorResponse(c, "name must not be empty")
	}

	parishioner, err := services.UpdateParishioner(h.DB, id, services.ParishionerUpdate{
		CommunityID: req.CommunityID,
		Name:        req.Name,
		NationalID:  req.NationalID,
		Phone:       req.Phone,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		Address:     req.Address,
		Active:      req.Active,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err, "parishioner not found", "updateParishioner")
	}
	return c.Status(fiber.StatusOK).JSON(parishioner)
}

// Delete handles DELETE /api/parishioners/:id
// @Summary Deactivate a parishioner
// @Description Soft delete: sets active=false, the record is retained
// @Tags Parishioners
// @Param id path int true "Parishioner ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishioners/{id} [delete]
func (h *ParishionerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if err := services.DeleteParishioner(h.DB, id); err != nil {
		return respondServiceError(c, err, "parishioner not found", "deleteParishioner")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
