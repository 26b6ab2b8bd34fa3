// common.go
//
// Ecclesia parish tithe and membership management service.

package handlers

import (
	"errors"
	"strconv"

	"github.com/ecclesiabr/ecclesia/internal/models"
	"github.com/ecclesiabr/ecclesia/internal/types"
	"github.com/ecclesiabr/ecclesia/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, types.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// parsePagination reads page and page_size query parameters, applying
// defaults and bounds. Malformed and out-of-bounds values are client errors,
// not clamped or defaulted.
func parsePagination(c *fiber.Ctx) (int, int, error) {
	page, err := queryIntDefault(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, types.NewValidationError("page must be >= 1")
	}
	pageSize, err := queryIntDefault(c, "page_size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, types.NewValidationError("page_size must be between 1 and 100")
	}
	return page, pageSize, nil
}

// queryIntDefault reads an optional integer query parameter, rejecting
// non-numeric values instead of falling back to the default.
func queryIntDefault(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewValidationError("invalid " + key)
	}
	return value, nil
}

// queryUint reads an optional positive integer query parameter.
func queryUint(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, types.NewValidationError("invalid " + key)
	}
	v := uint(value)
	return &v, nil
}

// queryBool reads an optional boolean query parameter.
func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, types.NewValidationError("invalid " + key)
	}
	return &value, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(c *fiber.Ctx, key string) (*models.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, types.NewValidationError("invalid " + key + ": expected YYYY-MM-DD")
	}
	return &date, nil
}

// requireQueryDate reads a mandatory YYYY-MM-DD query parameter.
func requireQueryDate(c *fiber.Ctx, key string) (models.Date, error) {
	date, err := queryDate(c, key)
	if err != nil {
		return models.Date{}, err
	}
	if date == nil {
		return models.Date{}, types.NewValidationError(key + " is required")
	}
	return *date, nil
}

// respondServiceError maps service failures onto the response envelope:
// CustomError keeps its own status, a missing record becomes 404, anything
// else is a server fault.
func respondServiceError(c *fiber.Ctx, err error, notFoundMessage, errorType string) error {
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		return utils.ErrorResponse(c, customErr.Message, customErr.Code, customErr.Type)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
