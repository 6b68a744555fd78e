package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/cache"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/repo"
)

// mockListingRepo is a hand-written test double for repo.ListingRepo.
// Each method is a function field; set only the ones a test needs.
type mockListingRepo struct {
	create    func(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	update    func(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error)
	setState  func(ctx context.Context, id uuid.UUID, state domain.ListingState) (domain.Listing, error)
	listPaged func(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error)
}

func (m *mockListingRepo) Create(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error) {
	return m.create(ctx, u)
}
func (m *mockListingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	return m.getByID(ctx, id)
}
func (m *mockListingRepo) Update(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error) {
	return m.update(ctx, id, u)
}
func (m *mockListingRepo) SetState(ctx context.Context, id uuid.UUID, state domain.ListingState) (domain.Listing, error) {
	return m.setState(ctx, id, state)
}
func (m *mockListingRepo) ListPaged(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error) {
	return m.listPaged(ctx, f, p)
}

var _ repo.ListingRepo = (*mockListingRepo)(nil)

// mockTimeSlotRepo records every ListBetween call.
type mockTimeSlotRepo struct {
	create      func(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error)
	listBetween func(ctx context.Context, listingID uuid.UUID, from, to time.Time) ([]domain.TimeSlot, error)

	calls [][2]time.Time
}

func (m *mockTimeSlotRepo) Create(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error) {
	return m.create(ctx, slot)
}
func (m *mockTimeSlotRepo) ListBetween(ctx context.Context, listingID uuid.UUID, from, to time.Time) ([]domain.TimeSlot, error) {
	m.calls = append(m.calls, [2]time.Time{from, to})
	return m.listBetween(ctx, listingID, from, to)
}

var _ repo.TimeSlotRepo = (*mockTimeSlotRepo)(nil)

// failingCache errors on every call.
type failingCache struct{ err error }

func (c failingCache) Get(context.Context, cache.MonthKey) ([]domain.TimeSlot, bool, error) {
	return nil, false, c.err
}
func (c failingCache) Set(context.Context, cache.MonthKey, []domain.TimeSlot) error { return c.err }

var _ cache.TimeSlotCache = failingCache{}
