package auth

import (
	"context"
	"fmt"

	"samvidhansetu/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn verifies the username/password pair and opens a session. Both an
// unknown username and a wrong password yield ErrInvalidCredentials; callers
// never learn which half failed.
func (s *DefaultAuthService) SignIn(ctx context.Context, username, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, account.Profile())
}
