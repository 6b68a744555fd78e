package txpanel

import "github.com/pkordes/rental-marketplace/backend/internal/domain"

// DateType tells the booking breakdown how to render booking boundaries.
type DateType string

const (
	DateTypeDate     DateType = "date"
	DateTypeDateTime DateType = "datetime"
)

// BreakdownDateType returns the date granularity of a listing type's booking
// breakdown. Equipment is booked by the hour.
func BreakdownDateType(lt domain.ListingType) DateType {
	if lt == domain.ListingTypeEquipment {
		return DateTypeDateTime
	}
	return DateTypeDate
}

// ListingLink points at the public page of the transaction's listing. When
// the listing has been deleted only LabelKey is set.
type ListingLink struct {
	RouteName string `json:"routeName,omitempty"`
	LabelKey  string `json:"labelKey,omitempty"`
}

// ListingRoute returns the listing page link for lt.
func ListingRoute(lt domain.ListingType, deleted bool) ListingLink {
	switch {
	case deleted:
		return ListingLink{LabelKey: DeletedListingTitleKey}
	case lt == domain.ListingTypeEquipment:
		return ListingLink{RouteName: "EquipmentListingPage"}
	default:
		return ListingLink{RouteName: "ListingPage"}
	}
}
