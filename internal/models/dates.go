package models

import (
	"strings"
	"time"
)

// Layouts accepted for client-supplied date strings. Mirrors the set of
// ISO-8601 shapes the rest of the system has historically written and
// read: full timestamps with or without fractional seconds and offset,
// space-separated variants, minute precision, and bare dates.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reports whether s is a syntactically valid ISO-8601 date or
// date-time. A trailing "Z" is accepted as the UTC designator.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// CompareDates orders two stored date strings lexically, like the
// document store does when filtering and sorting on them. Lexical order
// matches chronological order only while all stored values share one
// zero-padded format and timezone; nothing enforces that, so a true
// chronological comparison would have to replace this one function.
func CompareDates(a, b string) int {
	return strings.Compare(a, b)
}

// Now returns the current UTC time in the format server-written
// timestamps use: naive ISO-8601 with microseconds. Zero-padded so that
// CompareDates stays coherent for every value the server writes.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000")
}
