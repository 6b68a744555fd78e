// Package wizard sequences the listing creation and edit flow: which tab comes
// next, when a "new" URI becomes a "draft" URI, how a tab's form values become
// a listing update, and when the listing is published.
//
// Decisions are pure (Decide, NextStep, SubmitButtonKey, Validate). Side
// effects go through the Controller and Executor, which talk to the listing
// collaborator and a Navigator.
package wizard

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// Step is one tab of the wizard.
type Step string

const (
	StepDescription  Step = "description"
	StepFeatures     Step = "features"
	StepCapacity     Step = "capacity"
	StepPolicy       Step = "policy"
	StepLocation     Step = "location"
	StepPricing      Step = "pricing"
	StepAvailability Step = "availability"
	StepPhotos       Step = "photos"
)

// SupportedSteps lists every tab the wizard knows how to render.
var SupportedSteps = []Step{
	StepDescription,
	StepFeatures,
	StepCapacity,
	StepPolicy,
	StepLocation,
	StepPricing,
	StepAvailability,
	StepPhotos,
}

// ParseStep validates s against SupportedSteps.
func ParseStep(s string) (Step, error) {
	if st := Step(s); slices.Contains(SupportedSteps, st) {
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown wizard tab %q", domain.ErrValidation, s)
}

var tabsByListingType = map[domain.ListingType][]Step{
	domain.ListingTypeEquipment: {
		StepDescription, StepLocation, StepPricing, StepAvailability, StepPhotos,
	},
	domain.ListingTypeSauna: {
		StepDescription, StepFeatures, StepCapacity, StepPolicy,
		StepLocation, StepPricing, StepAvailability, StepPhotos,
	},
}

// Tabs returns the marketplace's tab order for a listing type. Unknown and
// default types get the sauna flow.
func Tabs(lt domain.ListingType) []Step {
	tabs, ok := tabsByListingType[lt]
	if !ok {
		tabs = tabsByListingType[domain.ListingTypeSauna]
	}
	return slices.Clone(tabs)
}

// NextStep returns the tab after current. The last tab is its own successor.
// A tab missing from ordered restarts at the first tab.
func NextStep(current Step, ordered []Step) Step {
	if len(ordered) == 0 {
		return current
	}
	i := slices.Index(ordered, current) + 1
	if i < len(ordered) {
		return ordered[i]
	}
	return ordered[len(ordered)-1]
}

// isLastStep reports whether step closes the flow (and triggers publish).
func isLastStep(step Step, ordered []Step) bool {
	return len(ordered) == 0 || ordered[len(ordered)-1] == step
}

// Mode is the URI variant the wizard is rendered under.
type Mode string

const (
	ModeNew   Mode = "new"
	ModeDraft Mode = "draft"
	ModeEdit  Mode = "edit"
)

// ParseMode validates the "type" route parameter.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNew, ModeDraft, ModeEdit:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown wizard mode %q", domain.ErrValidation, s)
}

// IsNewFlow reports whether the listing is still being created.
func (m Mode) IsNewFlow() bool {
	return m == ModeNew || m == ModeDraft
}

// RouteParams are the path parameters of a wizard page.
type RouteParams struct {
	ID          uuid.UUID          `json:"id"`
	Slug        string             `json:"slug"`
	Type        Mode               `json:"type"`
	Tab         Step               `json:"tab"`
	ListingType domain.ListingType `json:"listingType"`
}

// Navigation is a request to the routing layer. Replace swaps the current
// history entry instead of pushing a new one.
type Navigation struct {
	RouteName string      `json:"routeName"`
	Params    RouteParams `json:"params"`
	Replace   bool        `json:"replace"`
}

var routeByListingType = map[domain.ListingType]string{
	domain.ListingTypeEquipment: "EditEquipmentListingPage",
	domain.ListingTypeSauna:     "EditListingPage",
	domain.ListingTypeDefault:   "EditListingPage",
}

// RouteName returns the wizard page route for a listing type.
func RouteName(lt domain.ListingType) string {
	if name, ok := routeByListingType[lt]; ok {
		return name
	}
	return routeByListingType[domain.ListingTypeDefault]
}
