// Package domain contains the core data types for the rental marketplace
// backend. This package has no dependencies on other internal packages and is
// imported by every one of them (availability, wizard, repo, service, handler).
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ListingType selects which wizard steps, fields and defaults apply to a listing.
// The zero value is the marketplace default.
type ListingType string

const (
	ListingTypeDefault   ListingType = ""
	ListingTypeEquipment ListingType = "equipment"
	ListingTypeSauna     ListingType = "sauna"
)

// ParseListingType validates s against the closed set of listing types.
func ParseListingType(s string) (ListingType, error) {
	switch lt := ListingType(s); lt {
	case ListingTypeDefault, ListingTypeEquipment, ListingTypeSauna:
		return lt, nil
	}
	return "", fmt.Errorf("%w: unknown listing type %q", ErrValidation, s)
}

// ListingState is the lifecycle state of a listing. It only moves from draft
// to published through the listing service.
type ListingState string

const (
	ListingStateDraft     ListingState = "draft"
	ListingStatePublished ListingState = "published"
)

// ImageID identifies an uploaded listing image.
// It decodes from either a JSON string or a JSON number.
type ImageID string

// UnmarshalJSON accepts "abc" as well as 42.
func (id *ImageID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ImageID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("image id must be a string or a number: %w", err)
	}
	*id = ImageID(n.String())
	return nil
}

// ImageIDFromInt is a convenience for numeric identifiers.
func ImageIDFromInt(n int) ImageID {
	return ImageID(strconv.Itoa(n))
}

// Money is an amount in minor units (cents) of Currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// AvailabilityEntry is the number of bookable seats on one weekday.
type AvailabilityEntry struct {
	DayOfWeek string `json:"dayOfWeek"`
	Seats     int    `json:"seats"`
}

// AvailabilityPlan is the recurring weekly availability of a listing.
type AvailabilityPlan struct {
	Type    string              `json:"type"`
	Entries []AvailabilityEntry `json:"entries"`
}

// Listing is a rentable item (a piece of equipment, a sauna, ...).
// ID is the zero UUID until the first successful create.
type Listing struct {
	ID               uuid.UUID         `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	State            ListingState      `json:"state"`
	ListingType      ListingType       `json:"listingType"`
	PublicData       map[string]any    `json:"publicData"`
	Images           []ImageID         `json:"images"`
	AvailabilityPlan *AvailabilityPlan `json:"availabilityPlan,omitempty"`
	Price            *Money            `json:"price,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ListingUpdate is the payload sent to the listing collaborator when a wizard
// step is saved. Nil fields are left untouched; PublicData keys are merged
// into the stored public data one level deep.
type ListingUpdate struct {
	ID               *uuid.UUID        `json:"id,omitempty"`
	Title            *string           `json:"title,omitempty"`
	Description      *string           `json:"description,omitempty"`
	ListingType      *ListingType      `json:"listingType,omitempty"`
	PublicData       map[string]any    `json:"publicData,omitempty"`
	Images           []ImageID         `json:"images,omitempty"`
	AvailabilityPlan *AvailabilityPlan `json:"availabilityPlan,omitempty"`
	Price            *Money            `json:"price,omitempty"`
}

// ListingFilter narrows a listing query. Zero values mean "no constraint".
type ListingFilter struct {
	State       *ListingState
	ListingType *ListingType

	// MaxUsingTimeADay restricts publicData.maxUsingTimeADay to [Min, Max].
	MaxUsingTimeADay *IntRange
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int
	Max int
}
