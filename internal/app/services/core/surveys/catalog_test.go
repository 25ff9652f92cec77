package surveys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListSurveys(t *testing.T) {
	catalog := NewDefaultCatalog()

	summaries := catalog.ListSurveys()
	require.Len(t, summaries, 1)
	assert.Equal(t, "liver_short_v1", summaries[0].ID)
	assert.NotEmpty(t, summaries[0].Title)
	assert.NotEmpty(t, summaries[0].Description)
}

func TestCatalogGetDefinition(t *testing.T) {
	catalog := NewDefaultCatalog()

	definition, err := catalog.GetDefinition("liver_short_v1")
	require.NoError(t, err)
	assert.Len(t, definition.Questions, 16)
	assert.Len(t, definition.Dimensions, 4)
	assert.Len(t, definition.PairedRules, 2)
}

func TestCatalogGetDefinitionExactMatchOnly(t *testing.T) {
	catalog := NewDefaultCatalog()

	_, err := catalog.GetDefinition("LIVER_SHORT_V1")
	assert.ErrorIs(t, err, ErrSurveyNotFound)

	_, err = catalog.GetDefinition("liver_short")
	assert.ErrorIs(t, err, ErrSurveyNotFound)

	_, err = catalog.GetDefinition("")
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestCatalogRegistrationOrderPreserved(t *testing.T) {
	first := &SurveyDefinition{ID: "a_v1", Title: "A"}
	second := &SurveyDefinition{ID: "b_v1", Title: "B"}
	catalog := NewCatalog(first, second)

	summaries := catalog.ListSurveys()
	require.Len(t, summaries, 2)
	assert.Equal(t, "a_v1", summaries[0].ID)
	assert.Equal(t, "b_v1", summaries[1].ID)
}
