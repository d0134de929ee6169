package auth

import (
	"context"

	accountRepo "samvidhansetu/database/repository/account"
	"samvidhansetu/models"
)

// AuthService defines business logic for accounts and sessions. The acting
// account is always identified explicitly by the caller; the service never
// reads "the current user" from ambient state.
type AuthService interface {
	// SignUp registers a new account. The first account ever registered is
	// granted the admin role; every later one is a regular user. Returns
	// ErrAccountExists when the username or email is already taken.
	SignUp(ctx context.Context, username, email, password string) (*AuthResponse, error)
	// SignIn verifies credentials and opens a session. Returns
	// ErrInvalidCredentials on any mismatch.
	SignIn(ctx context.Context, username, password string) (*AuthResponse, error)
	// SignOut closes the account's session. Idempotent.
	SignOut(ctx context.Context, userID string) error
	// CurrentSession returns the active session projection, or nil when the
	// account has no session.
	CurrentSession(ctx context.Context, userID string) (*models.SessionProfile, error)
	// GetProfile returns the account's public projection from the store of
	// record, regardless of session state.
	GetProfile(ctx context.Context, userID string) (*models.SessionProfile, error)
	// AppendNotification prepends a notification to the account's stored
	// list. When that account also has an active session, the session
	// projection is refreshed to match and returned; otherwise nil.
	AppendNotification(ctx context.Context, userID, text string) (*models.SessionProfile, error)
	// GetAllAccounts lists every registered account (admin surface).
	GetAllAccounts(ctx context.Context) ([]models.Account, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo     accountRepo.AccountRepository
	Sessions SessionStore
}

// AuthResponse carries the session token together with the account's public
// projection after a successful signup or login.
type AuthResponse struct {
	Token string                `json:"token"`
	User  models.SessionProfile `json:"user"`
}

// WelcomeNotification seeds every new account's notification list.
const WelcomeNotification = "Welcome to Samvidhan Setu!"
