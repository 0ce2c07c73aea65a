package handlers

import (
	"fmt"
	"strconv"
	"time"
)

// timeLayouts are the accepted formats for the from/to query parameters.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return uint(id), nil
}

// parseUTCTime parses a timestamp and reinterprets its wall-clock reading
// as UTC, regardless of any timezone marker in the input.
func parseUTCTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%q is not a valid timestamp", raw)
}
