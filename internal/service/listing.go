// Package service contains the business logic of the rental marketplace.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. They depend on repo interfaces, never on SQL.
package service

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/repo"
)

// maxTitleLength matches the description form's limit.
const maxTitleLength = 60

// ListingService is the listing collaborator of the wizard and the search
// backend of the listing pages.
type ListingService struct {
	repo repo.ListingRepo
}

// NewListingService constructs a ListingService backed by r.
func NewListingService(r repo.ListingRepo) *ListingService {
	return &ListingService{repo: r}
}

// CreateDraft stores a new draft. The listing type is mirrored into public
// data, where listing pages and search filters read it.
func (s *ListingService) CreateDraft(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error) {
	if err := validateUpdate(u); err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.CreateDraft: %w", err)
	}
	lt := domain.ListingTypeDefault
	if u.ListingType != nil {
		lt = *u.ListingType
	}
	u.ListingType = &lt
	u.PublicData = maps.Clone(u.PublicData)
	if u.PublicData == nil {
		u.PublicData = map[string]any{}
	}
	u.PublicData["listingType"] = string(lt)

	result, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.CreateDraft: %w", err)
	}
	return result, nil
}

// Update applies a wizard tab's values to an existing listing. An ID carried
// in the payload must match id.
func (s *ListingService) Update(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error) {
	if u.ID != nil && *u.ID != id {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Update: %w: payload id does not match listing", domain.ErrValidation)
	}
	if err := validateUpdate(u); err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Update: %w", err)
	}
	if u.ListingType != nil {
		u.PublicData = maps.Clone(u.PublicData)
		if u.PublicData == nil {
			u.PublicData = map[string]any{}
		}
		u.PublicData["listingType"] = string(*u.ListingType)
	}
	result, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Update: %w", err)
	}
	return result, nil
}

// Publish makes a listing visible. Publishing an already published listing
// is a no-op that returns the listing.
func (s *ListingService) Publish(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Publish: %w", err)
	}
	if current.State == domain.ListingStatePublished {
		return current, nil
	}
	result, err := s.repo.SetState(ctx, id, domain.ListingStatePublished)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.Publish: %w", err)
	}
	return result, nil
}

// GetByID returns a single listing.
func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("service.ListingService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of listings and the total match count. Without an
// explicit state only published listings are returned.
func (s *ListingService) List(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error) {
	if f.State == nil {
		published := domain.ListingStatePublished
		f.State = &published
	}
	if r := f.MaxUsingTimeADay; r != nil && r.Min > r.Max {
		return nil, 0, fmt.Errorf("service.ListingService.List: %w: range minimum is above its maximum", domain.ErrValidation)
	}
	listings, total, err := s.repo.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ListingService.List: %w", err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, total, nil
}

// validateUpdate enforces the rules shared by create and update.
func validateUpdate(u domain.ListingUpdate) error {
	if u.Title != nil {
		if strings.TrimSpace(*u.Title) == "" {
			return fmt.Errorf("%w: title must not be blank", domain.ErrValidation)
		}
		if utf8.RuneCountInString(*u.Title) > maxTitleLength {
			return fmt.Errorf("%w: title must be at most %d characters", domain.ErrValidation, maxTitleLength)
		}
	}
	if u.ListingType != nil {
		if _, err := domain.ParseListingType(string(*u.ListingType)); err != nil {
			return err
		}
	}
	if u.Price != nil && u.Price.Amount < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}
