package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// pathID binds the {id} path parameter. It writes a 400 and reports false
// when the value is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid listing id"))
		return uuid.Nil, false
	}
	return id, true
}

// queryParam binds an optional form-style query parameter into dst.
func queryParam(w http.ResponseWriter, r *http.Request, name string, dst any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dst); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("invalid query parameter %q", name)))
		return false
	}
	return true
}

// zoneParam resolves the tz query parameter. An absent tz means UTC; an
// unknown zone name is a validation error.
func zoneParam(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	var name *string
	if !queryParam(w, r, "tz", &name) {
		return nil, false
	}
	if name == nil || strings.TrimSpace(*name) == "" {
		return time.UTC, true
	}
	loc := availability.LoadZone(*name)
	if loc == nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			validationBody(fmt.Errorf("%w: unknown time zone %q", domain.ErrValidation, *name)))
		return nil, false
	}
	return loc, true
}

// dayParam binds a required "2006-01-02" date and returns its midnight in loc.
func dayParam(w http.ResponseWriter, r *http.Request, name string, loc *time.Location) (time.Time, bool) {
	var day *openapi_types.Date
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &day)
	if err != nil || day == nil {
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("query parameter %q must be a date (YYYY-MM-DD)", name)))
		return time.Time{}, false
	}
	y, m, d := day.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), true
}

// monthParam binds an optional "2006-01" month. Without one the current
// month in loc is used.
func (s *Server) monthParam(w http.ResponseWriter, r *http.Request, loc *time.Location) (time.Time, bool) {
	var raw *string
	if !queryParam(w, r, "month", &raw) {
		return time.Time{}, false
	}
	if raw == nil || *raw == "" {
		return availability.StartOfMonth(s.clock.Now(), loc), true
	}
	month, err := availability.ParseMonthID(*raw, loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(`query parameter "month" must look like 2006-01`))
		return time.Time{}, false
	}
	return month, true
}
