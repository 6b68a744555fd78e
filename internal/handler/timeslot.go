package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// CreateTimeSlotRequest is the body of POST /listings/{id}/time-slots.
type CreateTimeSlotRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimeSlotsResponse is the body of GET /listings/{id}/time-slots.
type TimeSlotsResponse struct {
	Month string            `json:"month"`
	Data  []domain.TimeSlot `json:"data"`
}

// HoursResponse is the body of GET /listings/{id}/available-hours.
type HoursResponse struct {
	Day  string                    `json:"day"`
	Data []availability.HourOption `json:"data"`
}

// CalendarResponse is the body of GET /listings/{id}/calendar.
type CalendarResponse struct {
	Month    string                `json:"month"`
	Calendar availability.Calendar `json:"calendar"`
	Moved    bool                  `json:"moved"`
	CanNext  bool                  `json:"canNext"`
	CanPrev  bool                  `json:"canPrev"`
	Slots    []domain.TimeSlot     `json:"slots"`
}

// CreateTimeSlot handles POST /listings/{id}/time-slots?tz=.
func (s *Server) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	var req CreateTimeSlotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	slot, err := s.avail.CreateSlot(r.Context(), domain.TimeSlot{ListingID: id, Start: req.Start, End: req.End}, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// GetMonthSlots handles GET /listings/{id}/time-slots?month=&tz=.
func (s *Server) GetMonthSlots(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	month, ok := s.monthParam(w, r, loc)
	if !ok {
		return
	}
	slots, err := s.avail.MonthSlots(r.Context(), id, month, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	writeJSON(w, http.StatusOK, TimeSlotsResponse{Month: availability.MonthID(month, loc), Data: slots})
}

// GetAvailableHours handles GET /listings/{id}/available-hours?day=&tz=.
func (s *Server) GetAvailableHours(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	day, ok := dayParam(w, r, "day", loc)
	if !ok {
		return
	}
	hours, err := s.avail.Hours(r.Context(), id, day, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	writeJSON(w, http.StatusOK, HoursResponse{Day: day.Format(time.DateOnly), Data: hours})
}

// GetCalendar handles GET /listings/{id}/calendar?month=&dir=&tz=.
// Without dir it reports the month as is; with next or prev it moves one
// month when the booking window allows it.
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	month, ok := s.monthParam(w, r, loc)
	if !ok {
		return
	}
	var rawDir *string
	if !queryParam(w, r, "dir", &rawDir) {
		return
	}
	var dir availability.Direction
	if rawDir != nil {
		dir = availability.Direction(*rawDir)
		if dir != "" && dir != availability.DirectionNext && dir != availability.DirectionPrev {
			writeJSON(w, http.StatusUnprocessableEntity,
				validationBody(fmt.Errorf("%w: dir must be next or prev", domain.ErrValidation)))
			return
		}
	}

	view, err := s.avail.Navigate(r.Context(), id, availability.Calendar{CurrentMonth: month}, dir, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	slots := view.Slots
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	writeJSON(w, http.StatusOK, CalendarResponse{
		Month:    availability.MonthID(view.Calendar.CurrentMonth, loc),
		Calendar: view.Calendar,
		Moved:    view.Moved,
		CanNext:  view.CanNext,
		CanPrev:  view.CanPrev,
		Slots:    slots,
	})
}
