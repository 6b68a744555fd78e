// Package availability turns raw time slots into the dates and hour options a
// customer can pick when booking a listing, and owns the booking selection
// state machine. Everything here is pure: "now" comes from an injected Clock
// and a nil time zone degrades to "nothing selectable" instead of an error.
package availability

import (
	"fmt"
	"time"
)

// Clock supplies the reference "now" for every calculation that needs today.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// LoadZone resolves an IANA zone name. Empty or unknown names return nil,
// which every function in this package treats as "no data yet".
func LoadZone(name string) *time.Location {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	return addDays(t, loc, 0)
}

// addDays returns midnight n calendar days after t's day in loc, or the zero
// time when loc is nil. time.Date normalises the overflowing day, so month
// and year ends are handled.
func addDays(t time.Time, loc *time.Location, n int) time.Time {
	if loc == nil {
		return time.Time{}
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, loc)
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	return addMonths(t, loc, 0)
}

func addMonths(t time.Time, loc *time.Location, n int) time.Time {
	if loc == nil {
		return time.Time{}
	}
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, loc)
}

// monthIDLayout is the cache key format shared with the time-slot cache.
const monthIDLayout = "2006-01"

// MonthID formats t's month in loc as "2006-01".
func MonthID(t time.Time, loc *time.Location) string {
	if loc == nil {
		return ""
	}
	return t.In(loc).Format(monthIDLayout)
}

// ParseMonthID parses "2006-01" into the first day of that month in loc.
func ParseMonthID(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, fmt.Errorf("parse month %q: no time zone", s)
	}
	t, err := time.ParseInLocation(monthIDLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return t, nil
}
