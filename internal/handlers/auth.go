// auth.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/middleware"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles authentication routes
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Login handles POST /api/auth/login
// @Summary Authenticate a user
// @Description Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ValidationErrorResponse(c, "email and password are required")
	}

	user, err := services.AuthenticateUser(h.DB, req.Email, req.Password)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "login")
	}
	if user == nil {
		return utils.ErrorResponse(c, "incorrect email or password", fiber.StatusUnauthorized, "authentication")
	}
	if !user.Active {
		return utils.ValidationErrorResponse(c, "user is inactive")
	}

	token, err := services.CreateAccessToken(h.Cfg, user)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "login")
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register handles POST /api/auth/register (admin only)
// @Summary Register a new user
// @Description Create a new operator or admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrorResponse(c, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.ValidationErrorResponse(c, "name, email and password are required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleOperator
	}
	if role != models.RoleAdmin && role != models.RoleOperator {
		return utils.ValidationErrorResponse(c, "invalid role")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user, err := services.CreateUser(h.DB, services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Active:   active,
	})
	if err != nil {
		return respondServiceError(c, err, "user not found", "register")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(middleware.CurrentUser(c))
}
