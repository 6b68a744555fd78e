package wizard

import "github.com/pkordes/rental-marketplace/backend/internal/domain"

// labelPair holds the submit button keys for the create flow and the edit flow.
type labelPair struct {
	newFlow string
	edit    string
}

func pair(name string) labelPair {
	return labelPair{
		newFlow: "EditListingWizard.saveNew" + name,
		edit:    "EditListingWizard.saveEdit" + name,
	}
}

// equipmentPair is used by equipment listings, which show the same wording in
// both flows.
func equipmentPair(name string) labelPair {
	key := "EditListingWizard.saveNew" + name + "Equipment"
	return labelPair{newFlow: key, edit: key}
}

// submitLabels is keyed by tab, then listing type. The default listing type
// row is the fallback for any type without its own row.
var submitLabels = map[Step]map[domain.ListingType]labelPair{
	StepDescription: {
		domain.ListingTypeDefault:   pair("Description"),
		domain.ListingTypeEquipment: equipmentPair("Description"),
	},
	StepFeatures: {domain.ListingTypeDefault: pair("Features")},
	StepCapacity: {domain.ListingTypeDefault: pair("Capacity")},
	StepPolicy:   {domain.ListingTypeDefault: pair("Policies")},
	StepLocation: {
		domain.ListingTypeDefault:   pair("Location"),
		domain.ListingTypeEquipment: equipmentPair("Location"),
	},
	StepPricing: {
		domain.ListingTypeDefault:   pair("Pricing"),
		domain.ListingTypeEquipment: equipmentPair("Pricing"),
	},
	StepAvailability: {
		domain.ListingTypeDefault:   pair("Availability"),
		domain.ListingTypeEquipment: equipmentPair("Availability"),
	},
	StepPhotos: {domain.ListingTypeDefault: pair("Photos")},
}

// SubmitButtonKey returns the translation key of a tab's submit button, or ""
// for an unknown tab.
func SubmitButtonKey(step Step, lt domain.ListingType, isNewFlow bool) string {
	byType, ok := submitLabels[step]
	if !ok {
		return ""
	}
	p, ok := byType[lt]
	if !ok {
		p = byType[domain.ListingTypeDefault]
	}
	if isNewFlow {
		return p.newFlow
	}
	return p.edit
}
