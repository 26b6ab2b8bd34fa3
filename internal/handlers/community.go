// community.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommunityHandler handles community routes
type CommunityHandler struct {
	DB *gorm.DB
}

// List handles GET /api/communities?parish_id=...
// @Summary List communities
// @Tags Communities
// @Produce json
// @Param parish_id query int false "Filter by parish"
// @Success 200 {array} models.Community
// @Security BearerAuth
// @Router /communities [get]
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	parishID, err := queryUint(c, "parish_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	communities, err := services.GetCommunities(h.DB, parishID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listCommunities")
	}
	return c.Status(fiber.StatusOK).JSON(communities)
}

// Get handles GET /api/communities/:id
// @Summary Get a community
// @Tags Communities
// @Produce json
// @Param id path int true "Community ID"
// @Success 200 {object} models.Community
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /communities/{id} [get]
func (h *CommunityHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	community, err := services.GetCommunity(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "community not found", "getCommunity")
	}
	return c.Status(fiber.StatusOK).JSON(community)
}

// Create handles POST /api/communities
// @Summary Create a community
// @Tags Communities
// @Accept json
// @Produce json
// @Param community body CommunityRequest true "New community"
// @Success 201 {object} models.Community
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /communities [post]
func (h *CommunityHandler) Create(c *fiber.Ctx) error {
	var req CommunityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, "name is required")
	}
	if req.ParishID == 0 {
		return utils.ValidationErrorResponse(c, "parish_id is required")
	}
	community, err := services.CreateCommunity(h.DB, services.CommunityInput{
		ParishID: req.ParishID,
		Name:     req.Name,
	})
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createCommunity")
	}
	return c.Status(fiber.StatusCreated).JSON(community)
}

// Update handles PATCH /api/communities/:id
// @Summary Update a community
// @Tags Communities
// @Accept json
// @Produce json
// @Param id path int true "Community ID"
// @Param community body CommunityUpdateRequest true "Fields to update"
// @Success 200 {object} models.Community
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /communities/{id} [patch]
func (h *CommunityHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	var req CommunityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return utils.ValidationErrorResponse(c, "name must not be empty")
	}
	community, err := services.UpdateCommunity(h.DB, id, services.CommunityUpdate{
		ParishID: req.ParishID,
		Name:     req.Name,
	})
	if err != nil {
		return respondServiceError(c, err, "community not found", "updateCommunity")
	}
	return c.Status(fiber.StatusOK).JSON(community)
}

// Delete handles DELETE /api/communities/:id
// @Summary Delete a community
// @Description Admin only. Deletion is blocked while parishioners belong to the community
// @Tags Communities
// @Param id path int true "Community ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /communities/{id} [delete]
func (h *CommunityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	if err := services.DeleteCommunity(h.DB, id); err != nil {
		return respondServiceError(c, err, "community not found", "deleteCommunity")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
