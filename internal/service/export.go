package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// ExportService flattens a listing's bookable slots over the booking window.
type ExportService struct {
	listings *ListingService
	slots    *AvailabilityService
}

// NewExportService constructs an ExportService over the two services.
func NewExportService(listings *ListingService, slots *AvailabilityService) *ExportService {
	return &ExportService{listings: listings, slots: slots}
}

// Export returns one row per slot and day it covers inside the booking
// window, ordered by day then slot start. Days without hour options are
// skipped.
func (s *ExportService) Export(ctx context.Context, listingID uuid.UUID, loc *time.Location) ([]domain.SlotExportRow, error) {
	if loc == nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w: unknown time zone", domain.ErrValidation)
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	now := s.slots.clock.Now()
	from, to := availability.BookingWindow(now, loc, s.slots.maxDays)

	var slots []domain.TimeSlot
	seen := map[uuid.UUID]bool{}
	for month := availability.StartOfMonth(from, loc); month.Before(to); _, month = availability.MonthRange(month, loc) {
		monthSlots, err := s.slots.MonthSlots(ctx, listingID, month, loc)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		for _, sl := range monthSlots {
			if !seen[sl.ID] {
				seen[sl.ID] = true
				slots = append(slots, sl)
			}
		}
	}

	rows := []domain.SlotExportRow{}
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		for sl := range availability.TimeSlotsForDay(slots, day, loc) {
			var labels []string
			for opt := range availability.AvailableHours(day, slices.Values([]domain.TimeSlot{sl}), loc) {
				labels = append(labels, opt.Label)
			}
			if len(labels) == 0 {
				continue
			}
			rows = append(rows, domain.SlotExportRow{
				ListingID:    listing.ID.String(),
				ListingTitle: listing.Title,
				SlotID:       sl.ID.String(),
				Date:         day.Format(time.DateOnly),
				Start:        sl.Start,
				End:          sl.End,
				StartTimes:   labels,
			})
		}
	}
	return rows, nil
}
