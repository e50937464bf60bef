// Package form binds submitted form fields to per-entity structs and
// validates them field by field. Each entity has an explicit mapping
// function instead of reflective population, so a renamed field fails
// loudly rather than silently dropping input. Create and edit paths run
// the same validators.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// StartTimeLayout is the format show start times are submitted in.
const StartTimeLayout = "2006-01-02 15:04:05"

// Errors collects human-readable validation messages for one
// submission. An empty collection means the input is acceptable.
type Errors []string

// Has reports whether any validation message was recorded.
func (e Errors) Has() bool { return len(e) > 0 }

func requiredString(e Errors, field, value string, max int) Errors {
	if value == "" {
		return append(e, fmt.Sprintf("%s is required", field))
	}
	return boundedString(e, field, value, max)
}

func boundedString(e Errors, field, value string, max int) Errors {
	if len(value) > max {
		return append(e, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return e
}

// checkbox interprets an HTML checkbox value: present and non-"false"
// means checked, absent means unchecked.
func checkbox(values url.Values, key string) bool {
	v := values.Get(key)
	return v != "" && v != "false" && v != "0"
}

func parseID(e Errors, field, value string) (int64, Errors) {
	if value == "" {
		return 0, append(e, fmt.Sprintf("%s is required", field))
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, append(e, fmt.Sprintf("%s must be a positive integer", field))
	}
	return id, e
}

func parseStartTime(e Errors, value string) (time.Time, Errors) {
	if value == "" {
		return time.Time{}, append(e, "start_time is required")
	}
	t, err := time.Parse(StartTimeLayout, value)
	if err != nil {
		return time.Time{}, append(e, fmt.Sprintf("start_time must match %s", StartTimeLayout))
	}
	return t.UTC(), e
}
