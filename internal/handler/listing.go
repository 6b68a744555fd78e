package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/query"
	"github.com/pkordes/rental-marketplace/backend/internal/txpanel"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

// PageMeta describes the page returned by a list endpoint.
type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListingFilters echoes the filters applied to a listing search, in their
// query string encoding.
type ListingFilters struct {
	ListingType      *domain.ListingType `json:"listingType,omitempty"`
	MaxUsingTimeADay *string             `json:"pub_maxUsingTimeADay,omitempty"`
}

// ListingsResponse is the body of GET /listings.
type ListingsResponse struct {
	Data    []domain.Listing `json:"data"`
	Meta    PageMeta         `json:"meta"`
	Filters ListingFilters   `json:"filters"`
}

// ListingResponse is the body of GET /listings/{id}. BookingFormErrorKey is
// non-empty when the booking form must be replaced by an inline error.
type ListingResponse struct {
	Listing             domain.Listing   `json:"listing"`
	BookingFormErrorKey string           `json:"bookingFormErrorKey,omitempty"`
	BreakdownDateType   txpanel.DateType `json:"breakdownDateType"`
	EditRoute           string           `json:"editRoute"`
	Tabs                []wizard.Step    `json:"tabs"`
}

// ListListings handles GET /listings?listingType=&pub_maxUsingTimeADay=&page=&perPage=.
func (s *Server) ListListings(w http.ResponseWriter, r *http.Request) {
	var (
		rawType  *string
		rawRange *string
		page     *int
		perPage  *int
	)
	if !queryParam(w, r, "listingType", &rawType) ||
		!queryParam(w, r, "pub_maxUsingTimeADay", &rawRange) ||
		!queryParam(w, r, "page", &page) ||
		!queryParam(w, r, "perPage", &perPage) {
		return
	}

	var f domain.ListingFilter
	if rawType != nil && *rawType != "" {
		lt, err := domain.ParseListingType(*rawType)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		f.ListingType = &lt
	}
	var rng *query.Range
	if rawRange != nil && *rawRange != "" {
		rng = query.ParseRange(*rawRange)
		if rng == nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(
				fmt.Errorf("%w: pub_maxUsingTimeADay must be \"n\" or \"min,max\"", domain.ErrValidation)))
			return
		}
		f.MaxUsingTimeADay = &domain.IntRange{Min: rng.Min, Max: rng.Max}
	}

	p := domain.NewPage(page, perPage)
	listings, total, err := s.listings.List(r.Context(), f, p)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, ListingsResponse{
		Data: listings,
		Meta: PageMeta{
			Page:       p.Number,
			PerPage:    p.Limit,
			Total:      total,
			TotalPages: (total + int64(p.Limit) - 1) / int64(p.Limit),
		},
		Filters: ListingFilters{ListingType: f.ListingType, MaxUsingTimeADay: query.FormatRange(rng)},
	})
}

// GetListing handles GET /listings/{id}.
func (s *Server) GetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	l, err := s.listings.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	writeJSON(w, http.StatusOK, ListingResponse{
		Listing:             l,
		BookingFormErrorKey: availability.CheckBookable(l.Price, s.currency),
		BreakdownDateType:   txpanel.BreakdownDateType(l.ListingType),
		EditRoute:           wizard.RouteName(l.ListingType),
		Tabs:                wizard.Tabs(l.ListingType),
	})
}
