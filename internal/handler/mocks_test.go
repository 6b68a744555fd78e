package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/handler"
	"github.com/pkordes/rental-marketplace/backend/internal/service"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
	"github.com/pkordes/rental-marketplace/backend/testutil"
)

// mockListingServicer is a test double for handler.ListingServicer.
// Set only the method fields your test needs.
type mockListingServicer struct {
	getByID func(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	list    func(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error)
}

func (m *mockListingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	return m.getByID(ctx, id)
}
func (m *mockListingServicer) List(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error) {
	return m.list(ctx, f, p)
}

// mockAvailabilityServicer is a test double for handler.AvailabilityServicer.
type mockAvailabilityServicer struct {
	monthSlots func(ctx context.Context, id uuid.UUID, month time.Time, loc *time.Location) ([]domain.TimeSlot, error)
	hours      func(ctx context.Context, id uuid.UUID, day time.Time, loc *time.Location) ([]availability.HourOption, error)
	navigate   func(ctx context.Context, id uuid.UUID, cal availability.Calendar, dir availability.Direction, loc *time.Location) (service.MonthView, error)
	createSlot func(ctx context.Context, slot domain.TimeSlot, loc *time.Location) (domain.TimeSlot, error)
}

func (m *mockAvailabilityServicer) MonthSlots(ctx context.Context, id uuid.UUID, month time.Time, loc *time.Location) ([]domain.TimeSlot, error) {
	return m.monthSlots(ctx, id, month, loc)
}
func (m *mockAvailabilityServicer) Hours(ctx context.Context, id uuid.UUID, day time.Time, loc *time.Location) ([]availability.HourOption, error) {
	return m.hours(ctx, id, day, loc)
}
func (m *mockAvailabilityServicer) Navigate(ctx context.Context, id uuid.UUID, cal availability.Calendar, dir availability.Direction, loc *time.Location) (service.MonthView, error) {
	return m.navigate(ctx, id, cal, dir, loc)
}
func (m *mockAvailabilityServicer) CreateSlot(ctx context.Context, slot domain.TimeSlot, loc *time.Location) (domain.TimeSlot, error) {
	return m.createSlot(ctx, slot, loc)
}

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	export func(ctx context.Context, id uuid.UUID, loc *time.Location) ([]domain.SlotExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context, id uuid.UUID, loc *time.Location) ([]domain.SlotExportRow, error) {
	return m.export(ctx, id, loc)
}

// mockStepCompleter is a test double for handler.StepCompleter.
type mockStepCompleter struct {
	completeStep func(ctx context.Context, req wizard.Request, nav wizard.Navigator) (wizard.Result, error)
}

func (m *mockStepCompleter) CompleteStep(ctx context.Context, req wizard.Request, nav wizard.Navigator) (wizard.Result, error) {
	return m.completeStep(ctx, req, nav)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.ListingServicer      = (*mockListingServicer)(nil)
	_ handler.AvailabilityServicer = (*mockAvailabilityServicer)(nil)
	_ handler.Exporter             = (*mockExporter)(nil)
	_ handler.StepCompleter        = (*mockStepCompleter)(nil)
)

// ---- helpers ---------------------------------------------------------------

// today is the frozen "now" of every handler test: Tuesday 2025-06-10 12:00 UTC.
var today = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// newHTTPHandler wires a Server with the given deps into a chi router.
// This mirrors how main.go mounts the routes in production.
func newHTTPHandler(d handler.Deps) http.Handler {
	if d.Clock == nil {
		d.Clock = testutil.NewClock(today)
	}
	if d.Currency == "" {
		d.Currency = "EUR"
	}
	return handler.NewServer(d).NewRouter()
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func listingFixture() domain.Listing {
	return domain.Listing{
		ID:          uuid.New(),
		Title:       "Lakeside sauna",
		State:       domain.ListingStatePublished,
		ListingType: domain.ListingTypeSauna,
		PublicData:  map[string]any{"listingType": "sauna"},
		Images:      []domain.ImageID{},
		Price:       &domain.Money{Amount: 5000, Currency: "EUR"},
		CreatedAt:   today,
		UpdatedAt:   today,
	}
}
