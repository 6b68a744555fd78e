package availability

import (
	"fmt"
	"time"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// Selection is the booking form's date/time state. Fields are picked in a
// strict order (start date, start time, end date, end time) and changing a
// field always clears every field after it. DisplayStart and DisplayEnd are
// derived, never entered.
type Selection struct {
	StartDate    *time.Time `json:"startDate"`
	StartTime    *time.Time `json:"startTime"`
	EndDate      *time.Time `json:"endDate"`
	EndTime      *time.Time `json:"endTime"`
	DisplayStart *time.Time `json:"displayStart"`
	DisplayEnd   *time.Time `json:"displayEnd"`
}

// SelectionState names how far along the four-field selection is.
type SelectionState string

const (
	StateIdle         SelectionState = "idle"
	StateStartDateSet SelectionState = "startDateSet"
	StateStartTimeSet SelectionState = "startTimeSet"
	StateEndDateSet   SelectionState = "endDateSet"
	StateComplete     SelectionState = "complete"
)

// State reports how many leading fields are set.
func (s Selection) State() SelectionState {
	switch {
	case s.StartDate == nil:
		return StateIdle
	case s.StartTime == nil:
		return StateStartDateSet
	case s.EndDate == nil:
		return StateStartTimeSet
	case s.EndTime == nil:
		return StateEndDateSet
	default:
		return StateComplete
	}
}

// DisabledFields mirrors the disabled flags of the booking form inputs.
type DisabledFields struct {
	StartTime bool `json:"startTime"`
	EndDate   bool `json:"endDate"`
	EndTime   bool `json:"endTime"`
}

// Disabled derives which inputs cannot be edited yet.
func (s Selection) Disabled() DisabledFields {
	return DisabledFields{
		StartTime: s.StartDate == nil,
		EndDate:   s.StartDate == nil || s.StartTime == nil,
		EndTime:   s.StartDate == nil || s.StartTime == nil || s.EndDate == nil,
	}
}

// ReadyForLineItems reports whether the selection is complete enough to ask
// the transaction backend for a price estimate.
func (s Selection) ReadyForLineItems(loc *time.Location) bool {
	if s.State() != StateComplete || s.DisplayStart == nil || s.DisplayEnd == nil || loc == nil {
		return false
	}
	return !StartOfDay(*s.StartDate, loc).Equal(StartOfDay(*s.EndDate, loc))
}

// EventKind is a user action on the booking form.
type EventKind string

const (
	PickStartDate  EventKind = "pick_start_date"
	PickStartTime  EventKind = "pick_start_time"
	PickEndDate    EventKind = "pick_end_date"
	PickEndTime    EventKind = "pick_end_time"
	ClearStartDate EventKind = "clear_start_date"
	ClearEndDate   EventKind = "clear_end_date"
)

// Event is one form action. A nil Value on a pick clears that field.
type Event struct {
	Kind  EventKind  `json:"kind"`
	Value *time.Time `json:"value"`
}

// Reduce applies ev to s. Picking a field that is still disabled, or an end
// date that does not follow the start date, returns domain.ErrValidation and
// s unchanged. When start and time options are picked, the display instants
// are the picked day at the picked option's hour in loc.
func Reduce(s Selection, ev Event, loc *time.Location) (Selection, error) {
	if ev.Value == nil {
		switch ev.Kind {
		case PickStartDate, ClearStartDate:
			return Selection{}, nil
		case PickStartTime:
			return s.clearFromStartTime(), nil
		case PickEndDate, ClearEndDate:
			return s.clearFromEndDate(), nil
		case PickEndTime:
			s.EndTime, s.DisplayEnd = nil, nil
			return s, nil
		}
		return s, fmt.Errorf("%w: unknown booking event %q", domain.ErrValidation, ev.Kind)
	}

	if loc == nil {
		return s, fmt.Errorf("%w: listing time zone is not available", domain.ErrValidation)
	}
	v := *ev.Value
	disabled := s.Disabled()

	switch ev.Kind {
	case PickStartDate:
		day := StartOfDay(v, loc)
		return Selection{StartDate: &day}, nil

	case PickStartTime:
		if disabled.StartTime {
			return s, fmt.Errorf("%w: start time is disabled until a start date is picked", domain.ErrValidation)
		}
		next := s.clearFromStartTime()
		display := atHour(*s.StartDate, v, loc)
		next.StartTime, next.DisplayStart = &v, &display
		return next, nil

	case PickEndDate:
		if disabled.EndDate {
			return s, fmt.Errorf("%w: end date is disabled until a start time is picked", domain.ErrValidation)
		}
		if IsOutsideSelectableRange(v, *s.StartDate, loc) {
			return s, fmt.Errorf("%w: end date must be after the start date", domain.ErrValidation)
		}
		next := s.clearFromEndDate()
		day := StartOfDay(v, loc)
		next.EndDate = &day
		return next, nil

	case PickEndTime:
		if disabled.EndTime {
			return s, fmt.Errorf("%w: end time is disabled until an end date is picked", domain.ErrValidation)
		}
		display := atHour(*s.EndDate, v, loc)
		s.EndTime, s.DisplayEnd = &v, &display
		return s, nil

	case ClearStartDate:
		return Selection{}, nil

	case ClearEndDate:
		return s.clearFromEndDate(), nil
	}
	return s, fmt.Errorf("%w: unknown booking event %q", domain.ErrValidation, ev.Kind)
}

func (s Selection) clearFromStartTime() Selection {
	return Selection{StartDate: s.StartDate}
}

func (s Selection) clearFromEndDate() Selection {
	return Selection{StartDate: s.StartDate, StartTime: s.StartTime, DisplayStart: s.DisplayStart}
}

// atHour places the wall-clock hour of option on date's calendar day.
func atHour(date, option time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), option.In(loc).Hour(), 0, 0, 0, loc)
}
