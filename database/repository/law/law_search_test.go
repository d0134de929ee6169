package lawRepo

import (
	"testing"

	"samvidhansetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lawIDs(laws []models.Law) []string {
	ids := make([]string, 0, len(laws))
	for _, l := range laws {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestFilterLawsEmptyQueryReturnsAll(t *testing.T) {
	laws := SeedLaws()

	got := FilterLaws(laws, "", models.LanguageEnglish)
	assert.Len(t, got, len(laws))

	got = FilterLaws(laws, "   ", models.LanguageEnglish)
	assert.Len(t, got, len(laws), "whitespace-only query should behave like an empty one")
}

func TestFilterLawsMatchesTitleAndExplanation(t *testing.T) {
	laws := SeedLaws()

	// "theft" hits law-2 by title and keyword, and law-8 whose explanation
	// mentions identity theft. List order must be preserved.
	got := FilterLaws(laws, "theft", models.LanguageEnglish)
	assert.Equal(t, []string{"law-2", "law-8"}, lawIDs(got))
}

func TestFilterLawsIsCaseInsensitive(t *testing.T) {
	laws := SeedLaws()

	lower := FilterLaws(laws, "theft", models.LanguageEnglish)
	upper := FilterLaws(laws, "THEFT", models.LanguageEnglish)
	assert.Equal(t, lawIDs(lower), lawIDs(upper))
}

func TestFilterLawsMatchesArticleReference(t *testing.T) {
	laws := SeedLaws()

	got := FilterLaws(laws, "Article 21", models.LanguageEnglish)
	require.Len(t, got, 1)
	assert.Equal(t, "law-6", got[0].ID)
}

func TestFilterLawsMatchesCategory(t *testing.T) {
	laws := SeedLaws()

	got := FilterLaws(laws, "cyber", models.LanguageEnglish)
	require.Len(t, got, 1)
	assert.Equal(t, "law-8", got[0].ID)
}

func TestFilterLawsMatchesKeywords(t *testing.T) {
	laws := SeedLaws()

	// Both law-1 and law-6 carry the "fundamental rights" keyword.
	got := FilterLaws(laws, "fundamental rights", models.LanguageEnglish)
	assert.Equal(t, []string{"law-1", "law-6"}, lawIDs(got))
}

func TestFilterLawsHindiFields(t *testing.T) {
	laws := SeedLaws()

	// With Hindi selected the Hindi title and explanation are searched.
	got := FilterLaws(laws, "चोरी", models.LanguageHindi)
	assert.Equal(t, []string{"law-2", "law-8"}, lawIDs(got))

	// The same query against the English fields finds nothing.
	got = FilterLaws(laws, "चोरी", models.LanguageEnglish)
	assert.Empty(t, got)
}

func TestFilterLawsNoMatches(t *testing.T) {
	laws := SeedLaws()

	got := FilterLaws(laws, "maritime salvage", models.LanguageEnglish)
	assert.Empty(t, got)
}

func TestSeedLawsReturnsACopy(t *testing.T) {
	first := SeedLaws()
	first[0].Title = "mutated"

	second := SeedLaws()
	assert.Equal(t, "Right to Equality", second[0].Title)
}
