package auth

import (
	"context"
	"errors"

	accountRepo "samvidhansetu/database/repository/account"
	"samvidhansetu/models"
	"samvidhansetu/utils"

	"go.uber.org/zap"
)

// AppendNotification prepends the text to the account's stored notification
// list so the newest entry comes first. When that account also holds the
// active session, the session projection is refreshed to match and returned;
// in every other case the result is nil.
func (s *DefaultAuthService) AppendNotification(ctx context.Context, userID, text string) (*models.SessionProfile, error) {
	account, err := s.Repo.PushNotification(ctx, userID, text)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}

	session, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("AppendNotification: session lookup failed", zap.String("userID", userID), zap.Error(err))
		return nil, nil
	}
	if session == nil {
		return nil, nil
	}

	session.Notifications = account.Notifications
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetProfile returns the account's public projection from the store of record.
func (s *DefaultAuthService) GetProfile(ctx context.Context, userID string) (*models.SessionProfile, error) {
	account, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := account.Profile()
	return &profile, nil
}

// GetAllAccounts lists every registered account for the admin panel.
func (s *DefaultAuthService) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	return s.Repo.GetAll(ctx)
}
