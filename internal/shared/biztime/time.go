// Package biztime centralizes time handling. All storage and transport use
// UTC; anything shown to a person is formatted at the edge.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time in any timezone to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatAPITime formats a UTC timestamp for API responses using RFC3339.
func FormatAPITime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
