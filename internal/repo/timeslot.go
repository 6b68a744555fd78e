package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// TimeSlotRepo defines the persistence operations for bookable time slots.
type TimeSlotRepo interface {
	// Create stores a slot. Returns domain.ErrNotFound when the listing does
	// not exist.
	Create(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error)

	// ListBetween returns the slots of a listing that overlap [from, to),
	// ordered by start.
	ListBetween(ctx context.Context, listingID uuid.UUID, from, to time.Time) ([]domain.TimeSlot, error)
}

type pgTimeSlotRepo struct {
	db db
}

// NewTimeSlotRepo constructs a TimeSlotRepo backed by the provided db connection.
func NewTimeSlotRepo(db db) TimeSlotRepo {
	return &pgTimeSlotRepo{db: db}
}

// Create inserts a slot row.
func (r *pgTimeSlotRepo) Create(ctx context.Context, slot domain.TimeSlot) (domain.TimeSlot, error) {
	const q = `
		INSERT INTO time_slots (listing_id, start_at, end_at)
		VALUES (@listing_id, @start_at, @end_at)
		RETURNING id, listing_id, start_at, end_at`

	args := pgx.NamedArgs{
		"listing_id": slot.ListingID,
		"start_at":   slot.Start,
		"end_at":     slot.End,
	}

	result, err := scanTimeSlot(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("repo.TimeSlotRepo.Create: %w", err)
	}
	return result, nil
}

// ListBetween uses the half-open overlap test start < to AND end > from.
func (r *pgTimeSlotRepo) ListBetween(ctx context.Context, listingID uuid.UUID, from, to time.Time) ([]domain.TimeSlot, error) {
	const q = `
		SELECT id, listing_id, start_at, end_at
		FROM time_slots
		WHERE listing_id = @listing_id
		  AND start_at < @to
		  AND end_at > @from
		ORDER BY start_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"listing_id": listingID, "from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.TimeSlotRepo.ListBetween: %w", err)
	}
	defer rows.Close()

	slots := []domain.TimeSlot{}
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TimeSlotRepo.ListBetween: scan: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TimeSlotRepo.ListBetween: rows: %w", err)
	}
	return slots, nil
}

func scanTimeSlot(s scanner) (domain.TimeSlot, error) {
	var (
		ts        domain.TimeSlot
		id, owner pgtype.UUID
	)
	if err := s.Scan(&id, &owner, &ts.Start, &ts.End); err != nil {
		return domain.TimeSlot{}, mapError(err)
	}
	ts.ID = uuid.UUID(id.Bytes)
	ts.ListingID = uuid.UUID(owner.Bytes)
	ts.Start = ts.Start.UTC()
	ts.End = ts.End.UTC()
	return ts, nil
}
