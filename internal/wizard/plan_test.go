package wizard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
	"github.com/pkordes/rental-marketplace/backend/internal/wizard"
)

var twoSteps = []wizard.Step{wizard.StepDescription, wizard.StepPhotos}

func TestDecide_NewMode_ReplacesThenPushes(t *testing.T) {
	id := uuid.New()
	params := wizard.RouteParams{
		Slug: "draft", Type: wizard.ModeNew, Tab: wizard.StepDescription,
		ListingType: domain.ListingTypeEquipment,
	}

	plan := wizard.Decide(wizard.ModeNew, wizard.StepDescription, twoSteps, params, id)

	assert.False(t, plan.Publish)
	require.NotNil(t, plan.Replace)
	assert.True(t, plan.Replace.Replace)
	assert.Equal(t, "EditEquipmentListingPage", plan.Replace.RouteName)
	assert.Equal(t, wizard.ModeDraft, plan.Replace.Params.Type)
	assert.Equal(t, wizard.StepDescription, plan.Replace.Params.Tab)
	assert.Equal(t, id, plan.Replace.Params.ID)
	assert.Equal(t, "draft", plan.Replace.Params.Slug)

	require.NotNil(t, plan.Push)
	assert.False(t, plan.Push.Replace)
	assert.Equal(t, wizard.ModeDraft, plan.Push.Params.Type)
	assert.Equal(t, wizard.StepPhotos, plan.Push.Params.Tab)
	assert.Equal(t, id, plan.Push.Params.ID)
}

func TestDecide_DraftMode_OnlyPushes(t *testing.T) {
	id := uuid.New()
	params := wizard.RouteParams{ID: id, Slug: "sauna", Type: wizard.ModeDraft, Tab: wizard.StepDescription}

	plan := wizard.Decide(wizard.ModeDraft, wizard.StepDescription, twoSteps, params, id)

	assert.Nil(t, plan.Replace)
	require.NotNil(t, plan.Push)
	assert.Equal(t, "EditListingPage", plan.Push.RouteName)
	assert.Equal(t, wizard.StepPhotos, plan.Push.Params.Tab)
}

func TestDecide_LastStep_AlwaysPublishes(t *testing.T) {
	id := uuid.New()
	for _, mode := range []wizard.Mode{wizard.ModeNew, wizard.ModeDraft, wizard.ModeEdit} {
		t.Run(string(mode), func(t *testing.T) {
			plan := wizard.Decide(mode, wizard.StepPhotos, twoSteps, wizard.RouteParams{Type: mode}, id)

			assert.True(t, plan.Publish)
			assert.Equal(t, id, plan.ListingID)
			assert.Nil(t, plan.Replace)
			assert.Nil(t, plan.Push)
		})
	}
}
