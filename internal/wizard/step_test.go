package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

func TestNextStep(t *testing.T) {
	ordered := []wizard.Step{wizard.StepDescription, wizard.StepPricing, wizard.StepPhotos}

	tests := []struct {
		name    string
		current wizard.Step
		want    wizard.Step
	}{
		{"first to second", wizard.StepDescription, wizard.StepPricing},
		{"middle to last", wizard.StepPricing, wizard.StepPhotos},
		{"last is its own successor", wizard.StepPhotos, wizard.StepPhotos},
		{"unknown restarts at first", wizard.StepPolicy, wizard.StepDescription},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wizard.NextStep(tc.current, ordered))
		})
	}
}

func TestNextStep_EmptyList(t *testing.T) {
	assert.Equal(t, wizard.StepPricing, wizard.NextStep(wizard.StepPricing, nil))
}

func TestTabs(t *testing.T) {
	assert.Equal(t, []wizard.Step{
		wizard.StepDescription, wizard.StepLocation, wizard.StepPricing,
		wizard.StepAvailability, wizard.StepPhotos,
	}, wizard.Tabs(domain.ListingTypeEquipment))

	assert.Len(t, wizard.Tabs(domain.ListingTypeSauna), 8)
	assert.Equal(t, wizard.Tabs(domain.ListingTypeSauna), wizard.Tabs(domain.ListingTypeDefault))
}

func TestTabs_ReturnsCopy(t *testing.T) {
	tabs := wizard.Tabs(domain.ListingTypeEquipment)
	tabs[0] = wizard.StepPhotos

	assert.Equal(t, wizard.StepDescription, wizard.Tabs(domain.ListingTypeEquipment)[0])
}

func TestParseStep(t *testing.T) {
	st, err := wizard.ParseStep("photos")
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPhotos, st)

	_, err = wizard.ParseStep("gallery")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"new", "draft", "edit"} {
		m, err := wizard.ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, wizard.Mode(s), m)
	}
	_, err := wizard.ParseMode("copy")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.True(t, wizard.ModeNew.IsNewFlow())
	assert.True(t, wizard.ModeDraft.IsNewFlow())
	assert.False(t, wizard.ModeEdit.IsNewFlow())
}

func TestRouteName(t *testing.T) {
	assert.Equal(t, "EditEquipmentListingPage", wizard.RouteName(domain.ListingTypeEquipment))
	assert.Equal(t, "EditListingPage", wizard.RouteName(domain.ListingTypeSauna))
	assert.Equal(t, "EditListingPage", wizard.RouteName(domain.ListingTypeDefault))
	assert.Equal(t, "EditListingPage", wizard.RouteName("boat"))
}
