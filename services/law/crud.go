package law

import (
	"context"
	"fmt"

	"samvidhansetu/models"
	"samvidhansetu/utils"

	"go.uber.org/zap"
)

// GetAll retrieves every law in insertion order.
func (s *DefaultLawService) GetAll(ctx context.Context) ([]models.Law, error) {
	return s.Repo.GetAll(ctx)
}

// GetByID retrieves a single law.
func (s *DefaultLawService) GetByID(ctx context.Context, id string) (*models.Law, error) {
	return s.Repo.GetByID(ctx, id)
}

// Search filters laws by a substring query over the language-selected fields.
func (s *DefaultLawService) Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error) {
	return s.Repo.Search(ctx, query, lang)
}

// Categories lists the fixed category set offered by the admin panel.
func (s *DefaultLawService) Categories() []string {
	out := make([]string, len(models.LawCategories))
	copy(out, models.LawCategories)
	return out
}

// Add creates a new law record, then notifies the acting account.
func (s *DefaultLawService) Add(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error) {
	if input.Title == "" || input.Explanation == "" || input.Category == "" {
		return nil, nil, fmt.Errorf("title, explanation and category are required")
	}

	law := input
	if err := s.Repo.Create(ctx, &law); err != nil {
		return nil, nil, err
	}

	session := s.notify(ctx, actorID, fmt.Sprintf("New law added: %s (%s)", law.Title, law.Category))
	return &law, session, nil
}

// Update replaces an existing law's fields, refreshes its timestamp, then
// notifies the acting account.
func (s *DefaultLawService) Update(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error) {
	law := input
	if err := s.Repo.Update(ctx, &law); err != nil {
		return nil, nil, err
	}

	session := s.notify(ctx, actorID, fmt.Sprintf("Law updated: %s (%s)", law.Title, law.Category))
	return &law, session, nil
}

// Delete removes a law record, then notifies the acting account. Deleting an
// unknown id reports false without a notification.
func (s *DefaultLawService) Delete(ctx context.Context, id, actorID string) (bool, *models.SessionProfile, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return false, nil, err
	}
	if !removed {
		return false, nil, nil
	}

	session := s.notify(ctx, actorID, fmt.Sprintf("Law deleted with ID: %s", id))
	return true, session, nil
}

// notify delivers a notification to the acting account. Notification delivery
// never fails the law mutation it follows; failures are logged and swallowed.
func (s *DefaultLawService) notify(ctx context.Context, actorID, text string) *models.SessionProfile {
	if actorID == "" {
		return nil
	}
	session, err := s.Auth.AppendNotification(ctx, actorID, text)
	if err != nil {
		utils.GetLogger().Warn("law: failed to deliver notification",
			zap.String("actorID", actorID), zap.Error(err))
		return nil
	}
	return session
}
