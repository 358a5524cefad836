package models

import (
	"math"
	"strings"
	"time"
)

// deadlineFormats are tried in order after RFC3339. Catalog data is almost
// always plain ISO dates, but discovered records occasionally carry US or
// long-form dates.
var deadlineFormats = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/2006",
}

// ParseDeadline parses a deadline string. Date-only values resolve to
// midnight UTC, so a deadline N calendar days away counts as N remaining
// days. Returns false for anything unparseable; callers decide what an
// unknown deadline means.
func ParseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, format := range deadlineFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns whole days from now until the deadline, rounding partial
// days up. Negative means the deadline has passed.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
