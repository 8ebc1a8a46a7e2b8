package knowledge

import (
	"strings"
	"testing"

	"legalease-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ka := Lookup("arrest_rights")
	require.NotNil(t, ka)
	assert.Equal(t, "Arrest & Police Rights", ka.Category)
	assert.Equal(t, models.UrgencyHigh, ka.Urgency)
	assert.True(t, ka.HasConstitutionalRefs)

	assert.Nil(t, Lookup(CategoryGeneral))
	assert.Nil(t, Lookup("no_such_category"))
	assert.Nil(t, Lookup(""))
}

func TestCriminalLawAnswerCoversFIR(t *testing.T) {
	ka := Lookup("criminal_law")
	require.NotNil(t, ka)

	assert.Equal(t, models.UrgencyHigh, ka.Urgency)
	assert.Contains(t, ka.Answer, "First Information Report")

	var hasConcept bool
	for _, src := range ka.Sources {
		if src.Type == models.SourceTypeLegalConcept {
			hasConcept = true
		}
	}
	assert.True(t, hasConcept, "expected a legal_concept source")
}

func TestEveryCategoryIsComplete(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	seen := make(map[string]bool)
	for _, cat := range cats {
		assert.NotEmpty(t, cat.ID)
		assert.False(t, seen[cat.ID], "duplicate category id %s", cat.ID)
		seen[cat.ID] = true

		assert.NotEmpty(t, cat.Keywords, "category %s has no keywords", cat.ID)
		assert.NotEmpty(t, cat.Category, "category %s has no display name", cat.ID)
		assert.NotEmpty(t, cat.Answer, "category %s has no answer", cat.ID)
		assert.NotEmpty(t, cat.Sources, "category %s has no sources", cat.ID)
		assert.Contains(t, []models.Urgency{
			models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh,
		}, cat.Urgency, "category %s has invalid urgency", cat.ID)

		for _, kw := range cat.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw,
				"keyword %q in %s must be lowercase", kw, cat.ID)
		}
	}
}

func TestArrestRightsIsFirstCategory(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "arrest_rights", cats[0].ID)
}
