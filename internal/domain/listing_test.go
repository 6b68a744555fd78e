package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

func TestParseListingType(t *testing.T) {
	for _, s := range []string{"", "equipment", "sauna"} {
		lt, err := domain.ParseListingType(s)
		require.NoError(t, err)
		assert.Equal(t, domain.ListingType(s), lt)
	}

	_, err := domain.ParseListingType("boat")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestImageID_UnmarshalJSON(t *testing.T) {
	var ids []domain.ImageID
	require.NoError(t, json.Unmarshal([]byte(`[1, "abc", 42]`), &ids))
	assert.Equal(t, []domain.ImageID{"1", "abc", "42"}, ids)

	var bad domain.ImageID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &bad))
}
