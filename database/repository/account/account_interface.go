package accountRepo

import (
	"context"
	"errors"

	"samvidhansetu/models"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines methods for account data access. Accounts are
// created and mutated but never deleted.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID, or ErrAccountNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByUsername retrieves an account by its exact username, or nil when
	// absent.
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	// GetByEmail retrieves an account by its exact email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// GetAll retrieves every account in registration order.
	GetAll(ctx context.Context) ([]models.Account, error)
	// Create inserts a new account record.
	Create(ctx context.Context, account *models.Account) error
	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int64, error)
	// PushNotification prepends a notification to the account's list so the
	// newest entry comes first, and returns the updated account.
	PushNotification(ctx context.Context, id, text string) (*models.Account, error)
}
