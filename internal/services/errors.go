package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// uniqueViolationMarkers covers the error text each supported dialect emits
// for a unique constraint failure.
var uniqueViolationMarkers = []string{
	"UNIQUE constraint failed", // sqlite
	"Duplicate entry",          // mysql/mariadb
	"duplicate key value",      // postgres
	"Violation of UNIQUE KEY",  // sqlserver
}

// isUniqueViolation reports whether err is a unique-constraint failure on any
// of the supported dialects.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
