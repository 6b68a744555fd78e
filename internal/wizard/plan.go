package wizard

import "github.com/google/uuid"

// Plan is what should happen after a tab was saved successfully.
// Either Publish is set, or Push (optionally preceded by Replace) is.
type Plan struct {
	Replace   *Navigation `json:"replace,omitempty"`
	Push      *Navigation `json:"push,omitempty"`
	Publish   bool        `json:"publish"`
	ListingID uuid.UUID   `json:"listingId"`
}

// Decide computes the follow-up of saving step for listingID.
//
// On the last tab the listing is published and nothing is navigated. Otherwise
// a "new" URI is first replaced by its "draft" twin, so the back button edits
// the draft instead of creating another listing, and then the next tab is
// pushed under the draft scheme.
func Decide(mode Mode, step Step, steps []Step, params RouteParams, listingID uuid.UUID) Plan {
	if isLastStep(step, steps) {
		return Plan{Publish: true, ListingID: listingID}
	}

	route := RouteName(params.ListingType)
	draft := params
	draft.Type = ModeDraft
	draft.ID = listingID

	var plan Plan
	plan.ListingID = listingID
	if mode == ModeNew {
		current := draft
		current.Tab = step
		plan.Replace = &Navigation{RouteName: route, Params: current, Replace: true}
	}
	next := draft
	next.Tab = NextStep(step, steps)
	plan.Push = &Navigation{RouteName: route, Params: next}
	return plan
}
