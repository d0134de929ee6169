package law

import (
	"context"

	lawRepo "samvidhansetu/database/repository/law"
	"samvidhansetu/models"
	"samvidhansetu/services/auth"
)

// LawService defines business logic for browsing and administering the law
// database. Mutating operations take the acting account's ID so the matching
// notification lands on that account; they return the refreshed session
// projection (nil when the actor has no active session) alongside the law.
type LawService interface {
	// GetAll retrieves every law in insertion order.
	GetAll(ctx context.Context) ([]models.Law, error)
	// GetByID retrieves a single law, or lawRepo.ErrLawNotFound.
	GetByID(ctx context.Context, id string) (*models.Law, error)
	// Search filters laws by a substring query over the language-selected
	// fields. An empty query returns everything.
	Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error)
	// Categories lists the fixed category set offered by the admin panel.
	Categories() []string
	// Add creates a new law and notifies the acting account.
	Add(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error)
	// Update replaces an existing law's fields and notifies the acting
	// account. Returns lawRepo.ErrLawNotFound for an unknown id.
	Update(ctx context.Context, input models.Law, actorID string) (*models.Law, *models.SessionProfile, error)
	// Delete removes a law and notifies the acting account. The bool reports
	// whether a record was removed.
	Delete(ctx context.Context, id, actorID string) (bool, *models.SessionProfile, error)
}

// DefaultLawService is the production implementation.
type DefaultLawService struct {
	Repo lawRepo.LawRepository
	Auth auth.AuthService
}
