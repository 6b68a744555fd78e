package wizard

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// ListingCollaborator persists listings on behalf of the wizard.
type ListingCollaborator interface {
	CreateDraft(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error)
	Update(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error)
	Publish(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)
}

// Publisher is the part of ListingCollaborator the Executor needs.
type Publisher interface {
	Publish(ctx context.Context, id uuid.UUID) (domain.Listing, error)
}

// Navigator performs a route change.
type Navigator interface {
	Navigate(ctx context.Context, nav Navigation) error
}

// Recorder is a Navigator that keeps every navigation in order. The HTTP
// layer hands them back to the client, which owns the actual router.
type Recorder struct {
	Navigations []Navigation
}

// Navigate records nav.
func (r *Recorder) Navigate(_ context.Context, nav Navigation) error {
	r.Navigations = append(r.Navigations, nav)
	return nil
}

// Executor carries out a Plan.
type Executor struct {
	Publisher Publisher
	Navigator Navigator
}

// Execute runs the replace, then the push, or publishes. The first failing
// effect stops the rest.
func (e Executor) Execute(ctx context.Context, plan Plan) error {
	if plan.Publish {
		if _, err := e.Publisher.Publish(ctx, plan.ListingID); err != nil {
			return fmt.Errorf("wizard.Executor.Execute: publish: %w", err)
		}
		return nil
	}
	for _, nav := range []*Navigation{plan.Replace, plan.Push} {
		if nav == nil {
			continue
		}
		if err := e.Navigator.Navigate(ctx, *nav); err != nil {
			return fmt.Errorf("wizard.Executor.Execute: navigate: %w", err)
		}
	}
	return nil
}

// Request is one tab submission.
type Request struct {
	Mode      Mode        `json:"mode"`
	Step      Step        `json:"step"`
	Steps     []Step      `json:"steps"`
	Values    Values      `json:"values"`
	ListingID uuid.UUID   `json:"listingId"`
	Params    RouteParams `json:"params"`
}

// Result is what a completed tab led to.
type Result struct {
	Plan    Plan           `json:"plan"`
	Listing domain.Listing `json:"listing"`
}

// Controller saves wizard tabs through a ListingCollaborator.
type Controller struct {
	listings ListingCollaborator
}

// NewController returns a Controller backed by listings.
func NewController(listings ListingCollaborator) *Controller {
	return &Controller{listings: listings}
}

// CompleteStep saves the values of req.Step and then navigates to the next
// tab or publishes the listing. When saving fails nothing else happens and
// the collaborator error is returned as is. Form rules (Validate) belong to
// the caller; the values are sent as submitted.
func (c *Controller) CompleteStep(ctx context.Context, req Request, nav Navigator) (Result, error) {
	steps := req.Steps
	if len(steps) == 0 {
		steps = Tabs(req.Params.ListingType)
	}
	for _, s := range append(slices.Clone(steps), req.Step) {
		if _, err := ParseStep(string(s)); err != nil {
			return Result{}, fmt.Errorf("wizard.Controller.CompleteStep: %w", err)
		}
	}
	if !slices.Contains(steps, req.Step) {
		return Result{}, fmt.Errorf("wizard.Controller.CompleteStep: %w: tab %q is not part of this flow",
			domain.ErrValidation, req.Step)
	}
	if _, err := ParseMode(string(req.Mode)); err != nil {
		return Result{}, fmt.Errorf("wizard.Controller.CompleteStep: %w", err)
	}
	if req.Mode != ModeNew && req.ListingID == uuid.Nil {
		return Result{}, fmt.Errorf("wizard.Controller.CompleteStep: %w: listing id is required in %s mode",
			domain.ErrValidation, req.Mode)
	}

	payload := req.Values.ToUpdate()
	if req.Step == StepAvailability && payload.AvailabilityPlan == nil {
		plan, err := c.availabilityPlan(ctx, req)
		if err != nil {
			return Result{}, err
		}
		payload.AvailabilityPlan = &plan
	}

	var (
		listing domain.Listing
		err     error
	)
	if req.Mode == ModeNew {
		lt := req.Params.ListingType
		payload.ListingType = &lt
		listing, err = c.listings.CreateDraft(ctx, payload)
	} else {
		id := req.ListingID
		payload.ID = &id
		listing, err = c.listings.Update(ctx, id, payload)
	}
	if err != nil {
		return Result{}, err
	}

	plan := Decide(req.Mode, req.Step, steps, req.Params, listing.ID)
	exec := Executor{Publisher: c.listings, Navigator: nav}
	if err := exec.Execute(ctx, plan); err != nil {
		return Result{Plan: plan, Listing: listing}, err
	}
	return Result{Plan: plan, Listing: listing}, nil
}

// availabilityPlan returns the stored plan of an existing listing, or the
// listing type's default.
func (c *Controller) availabilityPlan(ctx context.Context, req Request) (domain.AvailabilityPlan, error) {
	if req.Mode == ModeNew {
		return DefaultAvailabilityPlan(req.Params.ListingType), nil
	}
	current, err := c.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		return domain.AvailabilityPlan{}, fmt.Errorf("wizard.Controller.CompleteStep: load listing: %w", err)
	}
	if current.AvailabilityPlan != nil {
		return *current.AvailabilityPlan, nil
	}
	return DefaultAvailabilityPlan(req.Params.ListingType), nil
}
