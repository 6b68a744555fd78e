package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/cache"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/repo"
)

// DefaultBookingWindowDays is how far ahead a listing can be booked.
const DefaultBookingWindowDays = 90

// AvailabilityService is the time-slot collaborator of the booking form.
// It serves slots per calendar month through a cache and turns them into
// hour options.
type AvailabilityService struct {
	slots   repo.TimeSlotRepo
	cache   cache.TimeSlotCache
	clock   availability.Clock
	maxDays int
	log     *slog.Logger
}

// NewAvailabilityService wires the service. A non-positive maxDays falls back
// to DefaultBookingWindowDays and a nil logger to slog.Default().
func NewAvailabilityService(
	slots repo.TimeSlotRepo,
	c cache.TimeSlotCache,
	clock availability.Clock,
	maxDays int,
	log *slog.Logger,
) *AvailabilityService {
	if maxDays <= 0 {
		maxDays = DefaultBookingWindowDays
	}
	if log == nil {
		log = slog.Default()
	}
	return &AvailabilityService{slots: slots, cache: c, clock: clock, maxDays: maxDays, log: log}
}

// MaxDays returns the booking window length in days.
func (s *AvailabilityService) MaxDays() int { return s.maxDays }

// MonthSlots returns the slots of listingID that overlap both month and the
// booking window. A cached month is served without touching the repo. When
// the fetch fails nothing is cached, so the next request retries.
func (s *AvailabilityService) MonthSlots(ctx context.Context, listingID uuid.UUID, month time.Time, loc *time.Location) ([]domain.TimeSlot, error) {
	if loc == nil {
		return []domain.TimeSlot{}, nil
	}
	key := s.monthKey(listingID, month, loc)

	cached, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "time slot cache read failed", "key", key.String(), "error", err)
	case ok:
		return cached, nil
	}

	slots, err := s.fetchMonth(ctx, listingID, month, loc)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.MonthSlots: %w", err)
	}
	if err := s.cache.Set(ctx, key, slots); err != nil {
		s.log.WarnContext(ctx, "time slot cache write failed", "key", key.String(), "error", err)
	}
	return slots, nil
}

// fetchMonth queries the overlap of month and the booking window.
func (s *AvailabilityService) fetchMonth(ctx context.Context, listingID uuid.UUID, month time.Time, loc *time.Location) ([]domain.TimeSlot, error) {
	monthFrom, monthTo := availability.MonthRange(month, loc)
	windowFrom, windowTo := availability.BookingWindow(s.clock.Now(), loc, s.maxDays)

	from := monthFrom
	if windowFrom.After(from) {
		from = windowFrom
	}
	to := monthTo
	if windowTo.Before(to) {
		to = windowTo
	}
	if !from.Before(to) {
		return []domain.TimeSlot{}, nil
	}
	return s.slots.ListBetween(ctx, listingID, from, to)
}

// Hours returns the start time options of day for listingID.
func (s *AvailabilityService) Hours(ctx context.Context, listingID uuid.UUID, day time.Time, loc *time.Location) ([]availability.HourOption, error) {
	if loc == nil || day.IsZero() {
		return []availability.HourOption{}, nil
	}
	slots, err := s.MonthSlots(ctx, listingID, day, loc)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.Hours: %w", err)
	}
	hours := slices.Collect(availability.AvailableHours(day, availability.TimeSlotsForDay(slots, day, loc), loc))
	if hours == nil {
		hours = []availability.HourOption{}
	}
	return hours, nil
}

// MonthView is a calendar cursor position with the slots it displays.
type MonthView struct {
	Calendar availability.Calendar `json:"calendar"`
	Moved    bool                  `json:"moved"`
	CanNext  bool                  `json:"canNext"`
	CanPrev  bool                  `json:"canPrev"`
	Slots    []domain.TimeSlot     `json:"slots"`
}

// Navigate moves cal one month in dir and loads the slots of the month it lands
// on. After a successful move the month beyond it in the same direction is
// prefetched when it is still inside the booking window; a failed prefetch
// is only logged.
func (s *AvailabilityService) Navigate(ctx context.Context, listingID uuid.UUID, cal availability.Calendar, dir availability.Direction, loc *time.Location) (MonthView, error) {
	if loc == nil {
		return MonthView{}, fmt.Errorf("service.AvailabilityService.Navigate: %w: unknown time zone", domain.ErrValidation)
	}
	if cal.CurrentMonth.IsZero() {
		cal = availability.NewCalendar(s.clock, loc)
	}
	moved, ok := cal.Navigate(dir, s.clock, loc, s.maxDays)

	slots, err := s.MonthSlots(ctx, listingID, moved.CurrentMonth, loc)
	if err != nil {
		return MonthView{}, fmt.Errorf("service.AvailabilityService.Navigate: %w", err)
	}

	view := MonthView{
		Calendar: moved,
		Moved:    ok,
		CanNext:  availability.CanNavigateNext(moved.CurrentMonth, s.clock.Now(), loc, s.maxDays),
		CanPrev:  availability.CanNavigatePrev(moved.CurrentMonth, s.clock.Now(), loc),
		Slots:    slots,
	}
	if ok {
		s.prefetch(ctx, listingID, moved, dir, loc)
	}
	return view, nil
}

func (s *AvailabilityService) prefetch(ctx context.Context, listingID uuid.UUID, cal availability.Calendar, dir availability.Direction, loc *time.Location) {
	ahead, ok := cal.Navigate(dir, s.clock, loc, s.maxDays)
	if !ok {
		return
	}
	if _, err := s.MonthSlots(ctx, listingID, ahead.CurrentMonth, loc); err != nil {
		s.log.WarnContext(ctx, "time slot prefetch failed",
			"listing_id", listingID, "month", availability.MonthID(ahead.CurrentMonth, loc), "error", err)
	}
}

// CreateSlot stores a new slot and refreshes the cached months it touches in
// loc so readers see it before the cache entries expire.
func (s *AvailabilityService) CreateSlot(ctx context.Context, slot domain.TimeSlot, loc *time.Location) (domain.TimeSlot, error) {
	if slot.Start.IsZero() || slot.End.IsZero() {
		return domain.TimeSlot{}, fmt.Errorf("service.AvailabilityService.CreateSlot: %w: start and end are required", domain.ErrValidation)
	}
	if !slot.End.After(slot.Start) {
		return domain.TimeSlot{}, fmt.Errorf("service.AvailabilityService.CreateSlot: %w: end must be after start", domain.ErrValidation)
	}
	created, err := s.slots.Create(ctx, slot)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("service.AvailabilityService.CreateSlot: %w", err)
	}
	if loc != nil {
		s.refresh(ctx, created, loc)
	}
	return created, nil
}

// refresh overwrites the cache entries of every window month the slot overlaps.
func (s *AvailabilityService) refresh(ctx context.Context, slot domain.TimeSlot, loc *time.Location) {
	_, windowTo := availability.BookingWindow(s.clock.Now(), loc, s.maxDays)
	month := availability.StartOfMonth(slot.Start, loc)
	for month.Before(slot.End) && month.Before(windowTo) {
		slots, err := s.fetchMonth(ctx, slot.ListingID, month, loc)
		if err != nil {
			s.log.WarnContext(ctx, "time slot cache refresh failed",
				"listing_id", slot.ListingID, "month", availability.MonthID(month, loc), "error", err)
			return
		}
		key := s.monthKey(slot.ListingID, month, loc)
		if err := s.cache.Set(ctx, key, slots); err != nil {
			s.log.WarnContext(ctx, "time slot cache write failed", "key", key.String(), "error", err)
		}
		_, month = availability.MonthRange(month, loc)
	}
}

func (s *AvailabilityService) monthKey(listingID uuid.UUID, month time.Time, loc *time.Location) cache.MonthKey {
	return cache.MonthKey{ListingID: listingID, Month: availability.MonthID(month, loc), Zone: loc.String()}
}
