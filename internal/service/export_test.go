package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/cache"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/service"
)

func TestExportService_Export(t *testing.T) {
	id := uuid.New()
	// 22:00 on June 11 to 02:00 on June 13 spans three calendar days.
	long := domain.TimeSlot{
		ID: uuid.New(), ListingID: id,
		Start: time.Date(2025, 6, 11, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 13, 2, 0, 0, 0, time.UTC),
	}
	listings := service.NewListingService(&mockListingRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Listing, error) {
			return domain.Listing{ID: id, Title: "Sauna"}, nil
		},
	})
	slots := &mockTimeSlotRepo{
		listBetween: func(context.Context, uuid.UUID, time.Time, time.Time) ([]domain.TimeSlot, error) {
			return []domain.TimeSlot{long}, nil
		},
	}
	avail, _ := newAvailability(t, slots, cache.NewMemory(time.Minute), 30)

	rows, err := service.NewExportService(listings, avail).Export(context.Background(), id, time.UTC)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-06-11", rows[0].Date)
	assert.Equal(t, []string{"22:00", "23:00"}, rows[0].StartTimes)
	assert.Len(t, rows[1].StartTimes, 24)
	assert.Equal(t, []string{"00:00", "01:00"}, rows[2].StartTimes)
	assert.Equal(t, "Sauna", rows[0].ListingTitle)
	assert.Equal(t, long.ID.String(), rows[2].SlotID)
}

func TestExportService_Export_UnknownListing(t *testing.T) {
	listings := service.NewListingService(&mockListingRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Listing, error) {
			return domain.Listing{}, domain.ErrNotFound
		},
	})
	avail, _ := newAvailability(t, &mockTimeSlotRepo{}, cache.NewMemory(time.Minute), 30)

	_, err := service.NewExportService(listings, avail).Export(context.Background(), uuid.New(), time.UTC)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
