package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONFormat(t *testing.T) {
	d := NewDate(time.Date(2025, time.April, 6, 15, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Time-of-day is dropped; only the calendar date travels
	if string(raw) != `"2025-04-06"` {
		t.Errorf("marshaled = %s, want \"2025-04-06\"", raw)
	}

	var parsed Date
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !parsed.Time().Equal(time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("round trip = %v, want 2025-04-06", parsed.Time())
	}
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	for _, raw := range []string{`"06/04/2025"`, `"2025-4-6"`, `"not a date"`, `42`} {
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", raw)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1975-06-10")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Time().Year() != 1975 || d.Time().Month() != time.June || d.Time().Day() != 10 {
		t.Errorf("parsed = %v, want 1975-06-10", d.Time())
	}

	if _, err := ParseDate("1975-13-01"); err == nil {
		t.Error("ParseDate accepted month 13")
	}
}
