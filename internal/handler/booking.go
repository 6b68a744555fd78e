package handler

import (
	"net/http"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
)

// BookingSelectionRequest is the body of POST /booking-selection.
type BookingSelectionRequest struct {
	Selection availability.Selection `json:"selection"`
	Event     availability.Event     `json:"event"`
}

// BookingSelectionResponse is the booking form state after an event.
type BookingSelectionResponse struct {
	Selection         availability.Selection      `json:"selection"`
	State             availability.SelectionState `json:"state"`
	Disabled          availability.DisabledFields `json:"disabled"`
	ReadyForLineItems bool                        `json:"readyForLineItems"`
}

// PostBookingSelection handles POST /booking-selection?tz=.
// It applies one form event to the posted selection and returns the result
// with the derived form flags.
func (s *Server) PostBookingSelection(w http.ResponseWriter, r *http.Request) {
	loc, ok := zoneParam(w, r)
	if !ok {
		return
	}
	var req BookingSelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	next, err := availability.Reduce(req.Selection, req.Event, loc)
	if err != nil {
		s.writeServiceError(w, r, err, "selection")
		return
	}
	writeJSON(w, http.StatusOK, BookingSelectionResponse{
		Selection:         next,
		State:             next.State(),
		Disabled:          next.Disabled(),
		ReadyForLineItems: next.ReadyForLineItems(loc),
	})
}
