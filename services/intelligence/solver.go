// File: services/intelligence/solver.go
package ai

import (
	"context"

	"samvidhansetu/models"
	lawSvc "samvidhansetu/services/law"
	"samvidhansetu/utils"

	"go.uber.org/zap"
)

// Solve runs the full problem-solver flow: extract the legal concepts behind
// the problem, look each one up in the law database, then explain the matches
// in context. Keyword lookups run against the English fields since the
// extracted concepts are English; the explanation is produced in the
// requested language.
func (s *DefaultAIService) Solve(ctx context.Context, problem string, lang models.Language) (*models.SolveResult, error) {
	keywords, err := s.ExtractKeywords(ctx, problem)
	if err != nil {
		return nil, err
	}

	found, err := lawsForKeywords(ctx, s.laws, keywords)
	if err != nil {
		return nil, err
	}

	explanation, err := s.Explain(ctx, problem, found, lang)
	if err != nil {
		return nil, err
	}

	return &models.SolveResult{
		Keywords:    keywords,
		Laws:        found,
		Explanation: explanation,
	}, nil
}

// lawsForKeywords searches the database once per keyword and deduplicates the
// hits by id, preserving first-seen order. A failed lookup for one keyword is
// logged and skipped rather than failing the whole flow.
func lawsForKeywords(ctx context.Context, laws lawSvc.LawService, keywords []string) ([]models.Law, error) {
	seen := make(map[string]bool)
	var found []models.Law
	for _, kw := range keywords {
		matches, err := laws.Search(ctx, kw, models.LanguageEnglish)
		if err != nil {
			utils.GetLogger().Warn("solver: keyword search failed", zap.String("keyword", kw), zap.Error(err))
			continue
		}
		for _, l := range matches {
			if seen[l.ID] {
				continue
			}
			seen[l.ID] = true
			found = append(found, l)
		}
	}
	return found, nil
}
