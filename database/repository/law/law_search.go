// File: database/repository/law/law_search.go
package lawRepo

import (
	"context"
	"strings"

	"samvidhansetu/models"
)

// Search filters the full list with a linear substring scan. The dataset is
// small and kept in insertion order, so no text index or ranking is involved:
// result order equals list order.
func (r *MongoLawRepo) Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error) {
	laws, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLaws(laws, query, lang), nil
}

// FilterLaws applies the search contract to an already-loaded list: an empty
// or whitespace query returns the list unchanged; otherwise a law matches when
// the lowercased query is a substring of its language-selected title,
// explanation or article/section reference, of the category, or of any keyword.
func FilterLaws(laws []models.Law, query string, lang models.Language) []models.Law {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return laws
	}

	var matched []models.Law
	for _, law := range laws {
		if lawMatches(law, q, lang) {
			matched = append(matched, law)
		}
	}
	return matched
}

func lawMatches(law models.Law, lowerQuery string, lang models.Language) bool {
	if strings.Contains(strings.ToLower(law.TitleIn(lang)), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(law.ExplanationIn(lang)), lowerQuery) {
		return true
	}
	// The category has a single stored form, evaluated regardless of language.
	if strings.Contains(strings.ToLower(law.Category), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(law.ArticleOrSectionIn(lang)), lowerQuery) {
		return true
	}
	for _, kw := range law.Keywords {
		if strings.Contains(strings.ToLower(kw), lowerQuery) {
			return true
		}
	}
	return false
}
