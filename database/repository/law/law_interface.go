package lawRepo

import (
	"context"
	"errors"

	"samvidhansetu/models"
)

// ErrLawNotFound is returned when an id does not match any stored law.
var ErrLawNotFound = errors.New("law not found")

// LawRepository defines methods for law data access.
type LawRepository interface {
	// GetAll retrieves every law in insertion order.
	GetAll(ctx context.Context) ([]models.Law, error)
	// GetByID retrieves a law by its unique ID, or ErrLawNotFound.
	GetByID(ctx context.Context, id string) (*models.Law, error)
	// Search filters laws by a case-insensitive substring over the
	// language-selected text fields and keywords. An empty or whitespace
	// query returns everything.
	Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error)
	// Create inserts a new law record, assigning its id and timestamps.
	Create(ctx context.Context, law *models.Law) error
	// Update replaces the fields of an existing law and refreshes its
	// UpdatedAt. The id is immutable.
	Update(ctx context.Context, law *models.Law) error
	// Delete removes a law record by its ID. Reports whether a record was
	// actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	// Count returns the number of stored laws.
	Count(ctx context.Context) (int64, error)
	// EnsureSeed populates the collection with the built-in dataset when it
	// is empty.
	EnsureSeed(ctx context.Context) error
}
