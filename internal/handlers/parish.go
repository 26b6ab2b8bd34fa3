// parish.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParishHandler handles parish routes
type ParishHandler struct {
	DB *gorm.DB
}

// List handles GET /api/parishes
// @Summary List parishes
// @Tags Parishes
// @Produce json
// @Success 200 {array} models.Parish
// @Security BearerAuth
// @Router /parishes [get]
func (h *ParishHandler) List(c *fiber.Ctx) error {
	parishes, err := services.GetParishes(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listParishes")
	}
	return c.Status(fiber.StatusOK).JSON(parishes)
}

// Get handles GET /api/parishes/:id
// @Summary Get a parish
// @Tags Parishes
// @Produce json
// @Param id path int true "Parish ID"
// @Success 200 {object} models.Parish
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishes/{id} [get]
func (h *ParishHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	parish, err := services.GetParish(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "parish not found", "getParish")
	}
	return c.Status(fiber.StatusOK).JSON(parish)
}

// Create handles POST /api/parishes
// @Summary Create a parish
// @Description Admin only
// @Tags Parishes
// @Accept json
// @Produce json
// @Param parish body ParishRequest true "New parish"
// @Success 201 {object} models.Parish
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishes [post]
func (h *ParishHandler) Create(c *fiber.Ctx) error {
	var req ParishRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, "name is required")
	}
	parish, err := services.CreateParish(h.DB, req.Name)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createParish")
	}
	return c.Status(fiber.StatusCreated).JSON(parish)
}

// Update handles PATCH /api/parishes/:id
// @Summary Update a parish
// @Description Admin only
// @Tags Parishes
// @Accept json
// @Produce json
// @Param id path int true "Parish ID"
// @Param parish body ParishUpdateRequest true "Fields to update"
// @Success 200 {object} models.Parish
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishes/{id} [patch]
func (h *ParishHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	var req ParishUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return utils.ValidationErrorResponse(c, "name must not be empty")
	}
	parish, err := services.UpdateParish(h.DB, id, services.ParishUpdate{Name: req.Name})
	if err != nil {
		return respondServiceError(c, err, "parish not found", "updateParish")
	}
	return c.Status(fiber.StatusOK).JSON(parish)
}

// Delete handles DELETE /api/parishes/:id
// @Summary Delete a parish
// @Description Admin only. Deletion is blocked while the parish owns communities
// @Tags Parishes
// @Param id path int true "Parish ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /parishes/{id} [delete]
func (h *ParishHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if err := services.DeleteParish(h.DB, id); err != nil {
		return respondServiceError(c, err, "parish not found", "deleteParish")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
