// Package derive holds the pure presentation-derivation layer: functions that
// turn raw stored or fetched data into view-ready shapes (tech stack
// breakdowns, highlights, calendar grids, task summaries). Nothing here does
// I/O or keeps state; callers pass "today" explicitly so a whole aggregation
// pass sees one consistent clock reading.
package derive

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay parses a bare "YYYY-MM-DD" string.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayLayout, strings.TrimSpace(value))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
