package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts the "YYYY-MM-DD" form the date picker sends, falling
// back to full RFC 3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
}
