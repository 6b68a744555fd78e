// Package handler implements the HTTP handlers of the rental marketplace API.
// All handlers are methods on Server. They are split into resource files
// (listing.go, timeslot.go, wizard.go, ...) and registered by Routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/service"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

// ListingServicer is the listing read side the handlers depend on.
// Interfaces live here, in the consumer package, so tests can inject mocks.
type ListingServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	List(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error)
}

// AvailabilityServicer serves time slots and hour options.
type AvailabilityServicer interface {
	MonthSlots(ctx context.Context, listingID uuid.UUID, month time.Time, loc *time.Location) ([]domain.TimeSlot, error)
	Hours(ctx context.Context, listingID uuid.UUID, day time.Time, loc *time.Location) ([]availability.HourOption, error)
	Navigate(ctx context.Context, listingID uuid.UUID, cal availability.Calendar, dir availability.Direction, loc *time.Location) (service.MonthView, error)
	CreateSlot(ctx context.Context, slot domain.TimeSlot, loc *time.Location) (domain.TimeSlot, error)
}

// Exporter flattens a listing's availability.
type Exporter interface {
	Export(ctx context.Context, listingID uuid.UUID, loc *time.Location) ([]domain.SlotExportRow, error)
}

// StepCompleter saves wizard tabs.
type StepCompleter interface {
	CompleteStep(ctx context.Context, req wizard.Request, nav wizard.Navigator) (wizard.Result, error)
}

// Deps are the collaborators of a Server. Nil services leave their routes
// answering 501.
type Deps struct {
	Listings     ListingServicer
	Availability AvailabilityServicer
	Export       Exporter
	Wizard       StepCompleter
	Clock        availability.Clock
	Logger       *slog.Logger

	// Currency is the marketplace currency listings must be priced in.
	Currency string
}

// Server holds the dependencies shared by every handler.
type Server struct {
	listings ListingServicer
	avail    AvailabilityServicer
	export   Exporter
	wizard   StepCompleter
	clock    availability.Clock
	log      *slog.Logger
	currency string
}

// NewServer constructs the Server. A nil clock uses the system clock and a
// nil logger uses slog.Default().
func NewServer(d Deps) *Server {
	s := &Server{
		listings: d.Listings,
		avail:    d.Availability,
		export:   d.Export,
		wizard:   d.Wizard,
		clock:    d.Clock,
		log:      d.Logger,
		currency: d.Currency,
	}
	if s.clock == nil {
		s.clock = availability.SystemClock{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// NewHealthHandler returns a Server without services, for health checks only.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/listings", func(r chi.Router) {
		r.Use(s.require(s.listings != nil))
		r.Get("/", s.ListListings)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetListing)
			r.Group(func(r chi.Router) {
				r.Use(s.require(s.avail != nil))
				r.Post("/time-slots", s.CreateTimeSlot)
				r.Get("/time-slots", s.GetMonthSlots)
				r.Get("/available-hours", s.GetAvailableHours)
				r.Get("/calendar", s.GetCalendar)
			})
			r.With(s.require(s.export != nil)).Get("/time-slots/export", s.ExportTimeSlots)
		})
	})

	r.Post("/booking-selection", s.PostBookingSelection)

	r.Route("/wizard", func(r chi.Router) {
		r.With(s.require(s.wizard != nil)).Post("/complete", s.CompleteWizardStep)
		r.Get("/submit-label", s.GetSubmitLabel)
		r.Get("/config", s.GetWizardConfig)
	})

	r.Get("/transactions/heading", s.GetTransactionHeading)
}

// NewRouter returns a chi router with every route registered.
func (s *Server) NewRouter() chi.Router {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// require answers 501 for routes whose service was not wired.
func (s *Server) require(wired bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if wired {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotImplemented, errorBody("not_implemented", "endpoint is not configured"))
		})
	}
}
