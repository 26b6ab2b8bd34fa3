package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateFormat is the wire format for calendar dates (ISO-8601, date only).
const DateFormat = "2006-01-02"

// Date is a wrapper around gorm.io/datatypes.Date that serializes as a plain
// YYYY-MM-DD string instead of a full RFC3339 timestamp.
type Date struct {
	datatypes.Date
}

// NewDate builds a Date from a time.Time, dropping the time-of-day part.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return NewDate(t), nil
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// Value promotes the embedded Date's Value method
func (d Date) Value() (driver.Value, error) {
	return d.Date.Value()
}

// Scan promotes the embedded Date's Scan method
func (d *Date) Scan(value interface{}) error {
	return d.Date.Scan(value)
}

// MarshalJSON renders the date as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time().Format(DateFormat))
}

// UnmarshalJSON accepts a "YYYY-MM-DD" string
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
