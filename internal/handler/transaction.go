package handler

import (
	"net/http"

	"github.com/pkordes/rental-marketplace/backend/internal/txpanel"
)

// TransactionHeadingResponse is the body of GET /transactions/heading.
type TransactionHeadingResponse struct {
	Heading           txpanel.Heading     `json:"heading"`
	BreakdownDateType txpanel.DateType    `json:"breakdownDateType"`
	ListingLink       txpanel.ListingLink `json:"listingLink"`
}

// GetTransactionHeading handles
// GET /transactions/heading?state=&role=&listingType=&listingDeleted=&customerBanned=.
func (s *Server) GetTransactionHeading(w http.ResponseWriter, r *http.Request) {
	var (
		rawState, rawRole, rawType *string
		deleted, banned            *bool
	)
	if !queryParam(w, r, "state", &rawState) ||
		!queryParam(w, r, "role", &rawRole) ||
		!queryParam(w, r, "listingType", &rawType) ||
		!queryParam(w, r, "listingDeleted", &deleted) ||
		!queryParam(w, r, "customerBanned", &banned) {
		return
	}
	if rawState == nil || rawRole == nil {
		writeJSON(w, http.StatusBadRequest, requestBody(`query parameters "state" and "role" are required`))
		return
	}
	role, err := txpanel.ParseRole(*rawRole)
	if err != nil {
		s.writeServiceError(w, r, err, "role")
		return
	}
	lt, ok := s.listingTypeParam(w, r, rawType)
	if !ok {
		return
	}
	opts := txpanel.Options{
		ListingDeleted: deleted != nil && *deleted,
		CustomerBanned: banned != nil && *banned,
	}
	heading, err := txpanel.ResolveHeading(txpanel.State(*rawState), role, opts)
	if err != nil {
		s.writeServiceError(w, r, err, "state")
		return
	}
	writeJSON(w, http.StatusOK, TransactionHeadingResponse{
		Heading:           heading,
		BreakdownDateType: txpanel.BreakdownDateType(lt),
		ListingLink:       txpanel.ListingRoute(lt, opts.ListingDeleted),
	})
}
