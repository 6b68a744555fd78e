package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// HourOption is one selectable start or end time: a whole hour boundary and
// its "15:04" label in the listing's time zone.
type HourOption struct {
	Label   string    `json:"label"`
	Instant time.Time `json:"instant"`
}

// TimeSlotsForDay yields the slots whose [Start, End) overlaps the calendar
// day of day in loc. The sequence is empty when day is zero or loc is nil.
func TimeSlotsForDay(slots []domain.TimeSlot, day time.Time, loc *time.Location) iter.Seq[domain.TimeSlot] {
	return func(yield func(domain.TimeSlot) bool) {
		if day.IsZero() || loc == nil {
			return
		}
		dayStart := StartOfDay(day, loc)
		nextDay := addDays(day, loc, 1)
		for _, s := range slots {
			if !s.End.After(s.Start) {
				continue
			}
			if s.Start.Before(nextDay) && s.End.After(dayStart) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// AvailableHours yields the whole hour boundaries a booking may start or end
// at on day. Each slot is clamped to [start of day, start of next day) so a
// slot spanning several days never contributes hours of another day. Hours
// are yielded in ascending order without duplicates.
func AvailableHours(day time.Time, daySlots iter.Seq[domain.TimeSlot], loc *time.Location) iter.Seq[HourOption] {
	return func(yield func(HourOption) bool) {
		if day.IsZero() || loc == nil || daySlots == nil {
			return
		}
		dayStart := StartOfDay(day, loc)
		nextDay := addDays(day, loc, 1)

		var hours []time.Time
		for s := range daySlots {
			start := laterOf(s.Start, dayStart)
			end := earlierOf(s.End, nextDay)
			for h := ceilHour(start, loc); h.Before(end); h = h.Add(time.Hour) {
				hours = append(hours, h)
			}
		}
		// Overlapping slots produce the same boundary more than once.
		slices.SortFunc(hours, time.Time.Compare)
		hours = slices.CompactFunc(hours, time.Time.Equal)

		for _, h := range hours {
			if !yield(HourOption{Label: h.In(loc).Format("15:04"), Instant: h.In(loc)}) {
				return
			}
		}
	}
}

// IsOutsideSelectableRange reports whether day must be disabled in the end
// date picker: every day up to and including the reference start date's day
// is outside the range, as is any day when data is missing.
func IsOutsideSelectableRange(day, referenceStart time.Time, loc *time.Location) bool {
	if day.IsZero() || referenceStart.IsZero() || loc == nil {
		return true
	}
	return !StartOfDay(day, loc).After(StartOfDay(referenceStart, loc))
}

// EndOfBookingWindow returns the start of the last bookable day:
// maxLookaheadDays-1 days after today in loc.
func EndOfBookingWindow(today time.Time, loc *time.Location, maxLookaheadDays int) time.Time {
	return addDays(today, loc, maxLookaheadDays-1)
}

// BookingWindow returns the bookable period [from, to) that starts at
// today's midnight and ends after the last bookable day.
func BookingWindow(today time.Time, loc *time.Location, maxLookaheadDays int) (from, to time.Time) {
	return StartOfDay(today, loc), addDays(today, loc, maxLookaheadDays)
}

// MonthRange returns [first day of month, first day of the next month) in loc.
func MonthRange(month time.Time, loc *time.Location) (from, to time.Time) {
	return StartOfMonth(month, loc), addMonths(month, loc, 1)
}

// ceilHour rounds t up to the next whole hour of loc's wall clock.
// Zones with half-hour offsets round on local hours, not UTC hours.
func ceilHour(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	h := time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, loc)
	if h.Before(lt) {
		h = h.Add(time.Hour)
	}
	return h
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
