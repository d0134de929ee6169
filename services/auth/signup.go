package auth

import (
	"context"
	"fmt"

	"samvidhansetu/models"
	"samvidhansetu/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp validates the registration details, enforces username and email
// uniqueness, hashes the password and opens a session for the new account.
func (s *DefaultAuthService) SignUp(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	byName, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("SignUp: username lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if byName != nil {
		return nil, ErrAccountExists
	}
	byEmail, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("SignUp: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if byEmail != nil {
		return nil, ErrAccountExists
	}

	// The very first account ever registered administers the law database.
	count, err := s.Repo.Count(ctx)
	if err != nil {
		utils.GetLogger().Error("SignUp: account count failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	account := models.Account{
		ID:            "user-" + uuid.New().String(),
		Username:      username,
		Email:         email,
		PasswordHash:  string(hashed),
		Role:          role,
		Notifications: []string{WelcomeNotification},
	}

	if err := s.Repo.Create(ctx, &account); err != nil {
		utils.GetLogger().Error("SignUp: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.openSession(ctx, account.Profile())
}
