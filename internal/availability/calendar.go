package availability

import "time"

// Direction is a month navigation step in the date picker.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Calendar is the date picker's state: the month currently displayed and the
// booking fields picked so far. The UI owns the instance; the functions in
// this package own every transition.
type Calendar struct {
	CurrentMonth time.Time `json:"currentMonth"`
	Selection    Selection `json:"selection"`
}

// NewCalendar opens the picker on today's month with nothing selected.
func NewCalendar(clock Clock, loc *time.Location) Calendar {
	return Calendar{CurrentMonth: StartOfMonth(clock.Now(), loc)}
}

// CanNavigateNext reports whether the month after month may be shown: its
// first day must not be after the end of the booking window.
func CanNavigateNext(month, today time.Time, loc *time.Location, maxLookaheadDays int) bool {
	if loc == nil {
		return false
	}
	next := addMonths(month, loc, 1)
	return !next.After(EndOfBookingWindow(today, loc, maxLookaheadDays))
}

// CanNavigatePrev reports whether the month before month may be shown. The
// picker never goes back past today's month.
func CanNavigatePrev(month, today time.Time, loc *time.Location) bool {
	if loc == nil {
		return false
	}
	prev := addMonths(month, loc, -1)
	return !prev.Before(StartOfMonth(today, loc))
}

// Navigate moves the cursor one month in dir. A disallowed move returns the
// calendar unchanged and false.
func (c Calendar) Navigate(dir Direction, clock Clock, loc *time.Location, maxLookaheadDays int) (Calendar, bool) {
	today := clock.Now()
	switch dir {
	case DirectionNext:
		if !CanNavigateNext(c.CurrentMonth, today, loc, maxLookaheadDays) {
			return c, false
		}
		c.CurrentMonth = addMonths(c.CurrentMonth, loc, 1)
	case DirectionPrev:
		if !CanNavigatePrev(c.CurrentMonth, today, loc) {
			return c, false
		}
		c.CurrentMonth = addMonths(c.CurrentMonth, loc, -1)
	default:
		return c, false
	}
	return c, true
}

// Reset returns the cursor to today's month. The picker does this when it is
// closed or when the start date is cleared.
func (c Calendar) Reset(clock Clock, loc *time.Location) Calendar {
	c.CurrentMonth = StartOfMonth(clock.Now(), loc)
	return c
}
