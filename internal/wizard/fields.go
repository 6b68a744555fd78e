package wizard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// TitleMaxLength is the longest listing title accepted by the description tab.
const TitleMaxLength = 60

// Field describes one input of the description tab for a listing type.
// Name is "title", "description", or a publicData key.
type Field struct {
	Name           string `json:"name"`
	LabelKey       string `json:"labelKey"`
	PlaceholderKey string `json:"placeholderKey"`
	RequiredKey    string `json:"requiredKey"`
	Required       bool   `json:"required"`
	MaxLength      int    `json:"maxLength,omitempty"`
}

// FieldConfig is the ordered set of visible description fields.
type FieldConfig struct {
	Fields []Field `json:"fields"`
}

func field(name, prefix string, maxLength int) Field {
	key := "EditListingDescriptionForm." + prefix
	return Field{
		Name:           name,
		LabelKey:       key,
		PlaceholderKey: key + "Placeholder",
		RequiredKey:    key + "Required",
		Required:       true,
		MaxLength:      maxLength,
	}
}

var defaultDescriptionFields = FieldConfig{Fields: []Field{
	field("title", "title", TitleMaxLength),
	field("description", "description", 0),
	{
		Name:           "category",
		LabelKey:       "EditListingDescriptionForm.categoryLabel",
		PlaceholderKey: "EditListingDescriptionForm.categoryPlaceholder",
		RequiredKey:    "EditListingDescriptionForm.categoryRequired",
		Required:       true,
	},
}}

var descriptionFields = map[domain.ListingType]FieldConfig{
	domain.ListingTypeDefault: defaultDescriptionFields,
	domain.ListingTypeSauna:   defaultDescriptionFields,
	domain.ListingTypeEquipment: {Fields: []Field{
		field("title", "equipmentTitle", TitleMaxLength),
		field("description", "equipmentDescription", 0),
		field("equipmentType", "equipmentType", 0),
		field("manufactureYear", "equipmentManufactureYear", 0),
		field("maxUsingTimeADay", "equipmentMaxUsingTimeADay", 0),
	}},
}

// DescriptionFields returns the description tab configuration of lt.
func DescriptionFields(lt domain.ListingType) FieldConfig {
	if cfg, ok := descriptionFields[lt]; ok {
		return cfg
	}
	return defaultDescriptionFields
}

// Validate checks the form values of step before anything is sent to the
// listing collaborator. Only the description tab has field rules.
func Validate(step Step, lt domain.ListingType, v Values) error {
	if step != StepDescription {
		return nil
	}
	var problems []string
	for _, f := range DescriptionFields(lt).Fields {
		value, present := v.lookup(f.Name)
		if f.Required && !present {
			problems = append(problems, f.Name+" is required")
			continue
		}
		if f.MaxLength > 0 && utf8.RuneCountInString(value) > f.MaxLength {
			problems = append(problems, fmt.Sprintf("%s must be at most %d characters", f.Name, f.MaxLength))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// lookup returns the trimmed string form of a field and whether it is filled in.
func (v Values) lookup(name string) (string, bool) {
	var s string
	switch name {
	case "title":
		if v.Title == nil {
			return "", false
		}
		s = *v.Title
	case "description":
		if v.Description == nil {
			return "", false
		}
		s = *v.Description
	default:
		raw, ok := v.PublicData[name]
		if !ok || raw == nil {
			return "", false
		}
		s = fmt.Sprint(raw)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// DefaultAvailabilityPlan is the weekly plan saved when a listing has none.
// Equipment starts fully blocked and is opened through exceptions; other
// listings start with one seat every day.
func DefaultAvailabilityPlan(lt domain.ListingType) domain.AvailabilityPlan {
	seats := 1
	if lt == domain.ListingTypeEquipment {
		seats = 0
	}
	plan := domain.AvailabilityPlan{Type: "availability-plan/day"}
	for _, d := range weekdays {
		plan.Entries = append(plan.Entries, domain.AvailabilityEntry{DayOfWeek: d, Seats: seats})
	}
	return plan
}
