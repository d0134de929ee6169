package admin

import "samvidhansetu/models"

// AdminService exposes the site's versioned legal documentation.
type AdminService interface {
	// GetLegalSections returns all legal documents in both languages.
	GetLegalSections() []models.LegalSection
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct{}
