// Package cache stores fetched time slots per listing and calendar month so
// month navigation does not hit the database again. Writes overwrite, and
// only successful fetches are ever stored.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// MonthKey identifies the slots of one listing in one calendar month.
// Month is a "2006-01" identifier in the viewer's time zone.
type MonthKey struct {
	ListingID uuid.UUID
	Month     string
	Zone      string
}

func (k MonthKey) String() string {
	return "timeslots:" + k.ListingID.String() + ":" + k.Zone + ":" + k.Month
}

// TimeSlotCache is a month-keyed store of time slots.
type TimeSlotCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key MonthKey) (slots []domain.TimeSlot, ok bool, err error)
	Set(ctx context.Context, key MonthKey, slots []domain.TimeSlot) error
}

// DefaultTTL bounds how stale a cached month can get.
const DefaultTTL = 5 * time.Minute
