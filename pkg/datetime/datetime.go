// Package datetime handles the dateTime fields of OCPP payloads.
//
// OCPP serializes timestamps as ISO 8601 / RFC 3339 strings. Charge
// points in the field are loose about the details: some send fractional
// seconds, some send a numeric zone offset instead of Z, and some omit
// the zone entirely. Parse accepts all of those. Format always produces
// the canonical form the central system should emit: UTC with
// millisecond precision and a Z suffix.
//
// Usage:
//
//	payload := map[string]any{"currentTime": datetime.Now()}
//
//	t, err := datetime.Parse("2023-01-01T12:00:00+02:00")
package datetime

import (
	"fmt"
	"time"
)

// Layout is the canonical wire form of an OCPP dateTime: UTC,
// millisecond precision, Z suffix.
const Layout = "2006-01-02T15:04:05.000Z"

// parse layouts tried in order, most common first
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// Now returns the current time in the canonical wire form.
func Now() string {
	return FormatTime(time.Now())
}

// FormatTime renders t in the canonical wire form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse reads an OCPP dateTime string. Strings without a zone are taken
// as UTC. The zero time is returned with an error when s matches no
// accepted layout.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		// Zone-less layouts parse as UTC.
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateTime %q", s)
}
