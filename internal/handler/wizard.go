package handler

import (
	"net/http"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

// CompleteStepResponse is the body of POST /wizard/complete. Navigations are
// the route changes the client must perform, in order.
type CompleteStepResponse struct {
	Plan        wizard.Plan         `json:"plan"`
	Listing     domain.Listing      `json:"listing"`
	Navigations []wizard.Navigation `json:"navigations"`
}

// SubmitLabelResponse is the body of GET /wizard/submit-label.
type SubmitLabelResponse struct {
	Key string `json:"key"`
}

// WizardConfigResponse is the body of GET /wizard/config.
type WizardConfigResponse struct {
	ListingType             domain.ListingType      `json:"listingType"`
	RouteName               string                  `json:"routeName"`
	Tabs                    []wizard.Step           `json:"tabs"`
	Description             wizard.FieldConfig      `json:"description"`
	DefaultAvailabilityPlan domain.AvailabilityPlan `json:"defaultAvailabilityPlan"`
}

// CompleteWizardStep handles POST /wizard/complete.
// It checks the tab's form rules, saves the tab and reports where the wizard
// goes next.
func (s *Server) CompleteWizardStep(w http.ResponseWriter, r *http.Request) {
	var req wizard.Request
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := wizard.Validate(req.Step, req.Params.ListingType, req.Values); err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	rec := &wizard.Recorder{}
	res, err := s.wizard.CompleteStep(r.Context(), req, rec)
	if err != nil {
		s.writeServiceError(w, r, err, "listing")
		return
	}
	navs := rec.Navigations
	if navs == nil {
		navs = []wizard.Navigation{}
	}
	writeJSON(w, http.StatusOK, CompleteStepResponse{Plan: res.Plan, Listing: res.Listing, Navigations: navs})
}

// GetSubmitLabel handles GET /wizard/submit-label?tab=&listingType=&type=.
func (s *Server) GetSubmitLabel(w http.ResponseWriter, r *http.Request) {
	var rawTab, rawType, rawMode *string
	if !queryParam(w, r, "tab", &rawTab) ||
		!queryParam(w, r, "listingType", &rawType) ||
		!queryParam(w, r, "type", &rawMode) {
		return
	}
	if rawTab == nil {
		writeJSON(w, http.StatusBadRequest, requestBody(`query parameter "tab" is required`))
		return
	}
	step, err := wizard.ParseStep(*rawTab)
	if err != nil {
		s.writeServiceError(w, r, err, "tab")
		return
	}
	lt, ok := s.listingTypeParam(w, r, rawType)
	if !ok {
		return
	}
	mode := wizard.ModeNew
	if rawMode != nil {
		if mode, err = wizard.ParseMode(*rawMode); err != nil {
			s.writeServiceError(w, r, err, "mode")
			return
		}
	}
	writeJSON(w, http.StatusOK, SubmitLabelResponse{Key: wizard.SubmitButtonKey(step, lt, mode.IsNewFlow())})
}

// GetWizardConfig handles GET /wizard/config?listingType=.
func (s *Server) GetWizardConfig(w http.ResponseWriter, r *http.Request) {
	var rawType *string
	if !queryParam(w, r, "listingType", &rawType) {
		return
	}
	lt, ok := s.listingTypeParam(w, r, rawType)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, WizardConfigResponse{
		ListingType:             lt,
		RouteName:               wizard.RouteName(lt),
		Tabs:                    wizard.Tabs(lt),
		Description:             wizard.DescriptionFields(lt),
		DefaultAvailabilityPlan: wizard.DefaultAvailabilityPlan(lt),
	})
}

// listingTypeParam validates an optional listing type. Absent means the
// marketplace default.
func (s *Server) listingTypeParam(w http.ResponseWriter, r *http.Request, raw *string) (domain.ListingType, bool) {
	if raw == nil {
		return domain.ListingTypeDefault, true
	}
	lt, err := domain.ParseListingType(*raw)
	if err != nil {
		s.writeServiceError(w, r, err, "listing type")
		return "", false
	}
	return lt, true
}
