package graph

import (
	"fmt"
	"strings"
	"time"
)

// outlookTimeFormat is the zone-less layout the provider expects in request bodies.
const outlookTimeFormat = "2006-01-02T15:04:05"

// ParseDateTime parses a provider timestamp as a UTC instant. Provider values
// usually carry no zone suffix ("2024-01-01T15:00:00.0000000"); such values are
// anchored to UTC by appending "Z", never interpreted in local time.
func ParseDateTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("graph: empty date time")
	}

	if !hasZone(v) {
		v += "Z"
	}

	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("graph: parse date time %q: %w", value, err)
	}

	return t.UTC(), nil
}

func hasZone(v string) bool {
	if strings.HasSuffix(v, "Z") || strings.HasSuffix(v, "z") {
		return true
	}
	// an offset like +02:00 or -05:00 after the time part
	sep := strings.Index(v, "T")
	return sep >= 0 && strings.LastIndexAny(v, "+-") > sep
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format(outlookTimeFormat)
}
