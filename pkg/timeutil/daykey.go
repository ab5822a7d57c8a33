// Package timeutil handles calendar day keys and report windows. Day keys
// always go through an explicit *time.Location so bucketing stays
// deterministic regardless of the host timezone.
package timeutil

import (
	"fmt"
	"time"
)

// LayoutDay is the YYYY-MM-DD day-key layout used as the join key across all
// per-day record types.
const LayoutDay = "2006-01-02"

// DayKey truncates t to its calendar date in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(LayoutDay)
}

// ParseDayKey parses a YYYY-MM-DD key back into a midnight time in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutDay, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse day key %q: %w", key, err)
	}
	return t, nil
}

// DaysAgo returns the day key n calendar days before t in loc.
func DaysAgo(t time.Time, n int, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).AddDate(0, 0, -n).Format(LayoutDay)
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}
