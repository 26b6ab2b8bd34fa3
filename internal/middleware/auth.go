package middleware

import (
	"strings"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userLocalKey is the context key the authenticated user is stored under.
const userLocalKey = "user"

// RequireAuth validates the bearer token, loads the user, and rejects
// inactive accounts. The user is stored in the request context for handlers.
func RequireAuth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authenticate(c, cfg, db)
		if err != nil {
			return err
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RequireAdmin is RequireAuth plus an ADMIN role check.
func RequireAdmin(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authenticate(c, cfg, db)
		if err != nil {
			return err
		}
		if user.Role != models.RoleAdmin {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "only administrators may perform this operation",
				Type:    "authorization",
			}
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

// authenticate resolves the Authorization header to an active user.
func authenticate(c *fiber.Ctx, cfg *config.Config, db *gorm.DB) (*models.User, error) {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "missing bearer token",
			Type:    "authentication",
		}
	}

	claims, err := services.ParseAccessToken(cfg, token)
	if err != nil {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "could not validate credentials",
			Type:    "authentication",
		}
	}

	var user models.User
	if err := db.Where("email = ?", claims.Subject).First(&user).Error; err != nil {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "could not validate credentials",
			Type:    "authentication",
		}
	}
	if !user.Active {
		return nil, &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "user is inactive",
			Type:    "authentication",
		}
	}
	return &user, nil
}
