package primitive

import (
	"fmt"
	"time"
)

// iso8601Layouts enumerates the timezone-aware ISO-8601 layouts this
// engine accepts, covering the 'Z', '+HH:MM', '+HHMM', and '+HH' offset
// forms spec.md §4.1 calls out for DATETIME.
var iso8601Layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05.999999999-07",
}

// parseISO8601 parses a timezone-aware ISO-8601 datetime string.
func parseISO8601(s string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a timezone-aware ISO-8601 datetime", s)
}

// ParseDatetime exposes parseISO8601 for callers outside this package
// (assertion timestamp checks need the parsed value, not just a bool).
func ParseDatetime(s string) (time.Time, error) {
	return parseISO8601(s)
}
