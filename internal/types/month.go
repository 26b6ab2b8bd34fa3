package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateReferenceMonth checks the literal YYYY-MM pattern used to tag a
// contribution with the period it logically covers: a 4-digit year, a dash,
// and a 2-digit month in [01, 12]. The empty string is not valid; callers
// skip validation entirely when the field is absent.
func ValidateReferenceMonth(s string) error {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return fmt.Errorf("reference_month must be in YYYY-MM format")
	}
	// Atoi would accept a sign here, so require digits explicitly.
	for _, r := range parts[0] + parts[1] {
		if r < '0' || r > '9' {
			return fmt.Errorf("reference_month must contain a valid year and month")
		}
	}
	month, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 {
		return fmt.Errorf("reference_month month must be between 01 and 12")
	}
	return nil
}
