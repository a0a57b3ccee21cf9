package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a stay date from a payload or query string. Plain dates
// ("2006-01-02") and RFC3339 timestamps are accepted.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date value is empty")
	}

	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected %s or RFC3339", value, dateLayout)
}

// ParseOptionalDate is ParseDate for optional parameters: empty input yields
// a nil time without error.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
