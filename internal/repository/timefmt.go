package repository

import (
	"fmt"
	"time"
)

// timeLayout is the fixed format used for shows.start_time. It sorts
// lexicographically in chronological order, which the upcoming-count
// queries rely on when comparing the column against a formatted instant.
const timeLayout = "2006-01-02 15:04:05"

// formatTime renders an instant into the stored column format (UTC).
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime converts a stored start_time back into a time.Time. A value
// that does not parse poisons the whole read: the caller propagates the
// error instead of rendering a partial page.
func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored start time %q: %w", value, err)
	}
	return t.UTC(), nil
}
