package shared

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses the calendar-date format the API accepts, YYYY-MM-DD.
// Empty input parses to the zero time so optional fields pass through.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a YYYY-MM-DD date: %w", err)
	}
	return parsed, nil
}
