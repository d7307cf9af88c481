package cli

import (
	"fmt"
	"time"
)

// Datetime layouts accepted on the command line.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDatetime parses a --at/--from/--to flag value as naive local time.
// An empty value yields the zero time, which the library resolves to
// "now". Malformed values (Feb 30, hour 25, ...) are rejected by the
// strict layouts rather than normalized.
func parseDatetime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q (expected \"2006-01-02 15:04\")", value)
}

// formatDatetime renders a result datetime for text output.
func formatDatetime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
