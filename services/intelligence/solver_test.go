package ai

import (
	"context"
	"fmt"
	"testing"

	lawRepo "samvidhansetu/database/repository/law"
	"samvidhansetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLawService serves a fixed law list and can fail specific queries.
type stubLawService struct {
	laws   []models.Law
	failOn map[string]bool
}

func (s *stubLawService) GetAll(ctx context.Context) ([]models.Law, error) {
	return s.laws, nil
}

func (s *stubLawService) GetByID(ctx context.Context, id string) (*models.Law, error) {
	for i := range s.laws {
		if s.laws[i].ID == id {
			l := s.laws[i]
			return &l, nil
		}
	}
	return nil, lawRepo.ErrLawNotFound
}

func (s *stubLawService) Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error) {
	if s.failOn[query] {
		return nil, fmt.Errorf("search backend unavailable")
	}
	return lawRepo.FilterLaws(s.laws, query, lang), nil
}

func (s *stubLawService) Categories() []string { return nil }

func (s *stubLawService) Add(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error) {
	return nil, nil, nil
}

func (s *stubLawService) Update(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error) {
	return nil, nil, nil
}

func (s *stubLawService) Delete(ctx context.Context, id, actorID string) (bool, *models.SessionProfile, error) {
	return false, nil, nil
}

func TestLawsForKeywordsDeduplicates(t *testing.T) {
	svc := &stubLawService{laws: lawRepo.SeedLaws()}

	// "theft" and "movable property" both hit law-2; "equality" hits law-1.
	// Each law appears once, in first-seen order.
	found, err := lawsForKeywords(context.Background(), svc, []string{"theft", "movable property", "equality"})
	require.NoError(t, err)

	ids := make([]string, 0, len(found))
	for _, l := range found {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"law-2", "law-8", "law-1"}, ids)
}

func TestLawsForKeywordsSkipsFailedLookups(t *testing.T) {
	svc := &stubLawService{
		laws:   lawRepo.SeedLaws(),
		failOn: map[string]bool{"equality": true},
	}

	found, err := lawsForKeywords(context.Background(), svc, []string{"equality", "wages"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "law-9", found[0].ID)
}

func TestLawsForKeywordsNoMatches(t *testing.T) {
	svc := &stubLawService{laws: lawRepo.SeedLaws()}

	found, err := lawsForKeywords(context.Background(), svc, []string{"maritime salvage"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestParseKeywords(t *testing.T) {
	keywords, err := parseKeywords(`["theft", "criminal law", "police complaint"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"theft", "criminal law", "police complaint"}, keywords)
}

func TestParseKeywordsDropsEmptyEntries(t *testing.T) {
	keywords, err := parseKeywords(`["theft", "  ", ""]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"theft"}, keywords)
}

func TestParseKeywordsRejectsEmptyList(t *testing.T) {
	_, err := parseKeywords(`[]`)
	assert.Error(t, err)
}

func TestParseKeywordsRejectsInvalidJSON(t *testing.T) {
	_, err := parseKeywords(`not json`)
	assert.Error(t, err)
}

func TestParseKeywordsCapsAtSeven(t *testing.T) {
	keywords, err := parseKeywords(`["a","b","c","d","e","f","g","h","i"]`)
	require.NoError(t, err)
	assert.Len(t, keywords, 7)
}
