package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is an interval [Start, End) during which a listing is bookable.
// Slots are immutable once stored.
type TimeSlot struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listingId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}
