package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/handler"
	"github.com/pkordes/rental-marketplace/backend/internal/txpanel"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

// ---- GET /listings ---------------------------------------------------------

func TestListListings_200_FiltersAndMeta(t *testing.T) {
	fixture := listingFixture()
	var gotFilter domain.ListingFilter
	var gotPage domain.Page
	svc := &mockListingServicer{
		list: func(_ context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error) {
			gotFilter, gotPage = f, p
			return []domain.Listing{fixture}, 25, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet,
		"/listings?listingType=equipment&pub_maxUsingTimeADay=2,8&page=2&perPage=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "25", rec.Header().Get("X-Total-Count"))

	require.NotNil(t, gotFilter.ListingType)
	assert.Equal(t, domain.ListingTypeEquipment, *gotFilter.ListingType)
	assert.Equal(t, &domain.IntRange{Min: 2, Max: 8}, gotFilter.MaxUsingTimeADay)
	assert.Equal(t, domain.Page{Number: 2, Limit: 10}, gotPage)

	resp := decode[handler.ListingsResponse](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, fixture.ID, resp.Data[0].ID)
	assert.Equal(t, handler.PageMeta{Page: 2, PerPage: 10, Total: 25, TotalPages: 3}, resp.Meta)
	require.NotNil(t, resp.Filters.MaxUsingTimeADay)
	assert.Equal(t, "2,8", *resp.Filters.MaxUsingTimeADay)
}

func TestListListings_SingleValueRangeEchoedAsSingleValue(t *testing.T) {
	svc := &mockListingServicer{
		list: func(_ context.Context, f domain.ListingFilter, _ domain.Page) ([]domain.Listing, int64, error) {
			assert.Equal(t, &domain.IntRange{Min: 4, Max: 4}, f.MaxUsingTimeADay)
			return nil, 0, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings?pub_maxUsingTimeADay=4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.ListingsResponse](t, rec)
	require.NotNil(t, resp.Filters.MaxUsingTimeADay)
	assert.Equal(t, "4", *resp.Filters.MaxUsingTimeADay)
	assert.Equal(t, handler.PageMeta{Page: 1, PerPage: domain.DefaultPageLimit}, resp.Meta)
}

func TestListListings_422_MalformedRange(t *testing.T) {
	svc := &mockListingServicer{
		list: func(context.Context, domain.ListingFilter, domain.Page) ([]domain.Listing, int64, error) {
			t.Fatal("List must not be called for a malformed range")
			return nil, 0, nil
		},
	}

	for _, raw := range []string{"abc", "1,2,3", "1,x", "8,2", "+5"} {
		rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings?pub_maxUsingTimeADay="+raw, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, raw)
	}
}

func TestListListings_422_UnknownListingType(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Deps{Listings: &mockListingServicer{}}), http.MethodGet, "/listings?listingType=boat", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "boat")
}

func TestListListings_400_NonNumericPage(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Deps{Listings: &mockListingServicer{}}), http.MethodGet, "/listings?page=two", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListListings_500_ServiceError(t *testing.T) {
	svc := &mockListingServicer{
		list: func(context.Context, domain.ListingFilter, domain.Page) ([]domain.Listing, int64, error) {
			return nil, 0, fmt.Errorf("connection reset")
		},
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "internal_error", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection reset")
}

// ---- GET /listings/{id} ----------------------------------------------------

func TestGetListing_200(t *testing.T) {
	fixture := listingFixture()
	svc := &mockListingServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Listing, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.ListingResponse](t, rec)
	assert.Equal(t, fixture.Title, resp.Listing.Title)
	assert.Empty(t, resp.BookingFormErrorKey)
	assert.Equal(t, txpanel.DateTypeDate, resp.BreakdownDateType)
	assert.Equal(t, "EditListingPage", resp.EditRoute)
	assert.Equal(t, wizard.Tabs(domain.ListingTypeSauna), resp.Tabs)
}

func TestGetListing_BookingFormErrorWhenCurrencyDiffers(t *testing.T) {
	fixture := listingFixture()
	fixture.ListingType = domain.ListingTypeEquipment
	fixture.Price = &domain.Money{Amount: 5000, Currency: "USD"}
	svc := &mockListingServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Listing, error) { return fixture, nil },
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.ListingResponse](t, rec)
	assert.Equal(t, availability.KeyCurrencyInvalid, resp.BookingFormErrorKey)
	assert.Equal(t, txpanel.DateTypeDateTime, resp.BreakdownDateType)
	assert.Equal(t, "EditEquipmentListingPage", resp.EditRoute)
}

func TestGetListing_404(t *testing.T) {
	svc := &mockListingServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Listing, error) {
			return domain.Listing{}, fmt.Errorf("service.ListingService.GetByID: %w", domain.ErrNotFound)
		},
	}

	rec := do(t, newHTTPHandler(handler.Deps{Listings: svc}), http.MethodGet, "/listings/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "listing not found", resp.Error.Message)
}

func TestGetListing_400_InvalidUUID(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Deps{Listings: &mockListingServicer{}}), http.MethodGet, "/listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
