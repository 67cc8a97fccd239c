package catalog

import "github.com/Souvikgooooo/ThrivePro/models"

// CreateInput carries the fields for a new catalog entry.
type CreateInput struct {
	ProviderID  string
	Name        string
	Price       float64
	Description string
}

// CatalogService manages the services a provider offers.
type CatalogService interface {
	// Create adds an entry to the provider's catalog.
	Create(in CreateInput) (*models.Service, error)
	// ListForProvider returns a provider's catalog entries, newest first.
	ListForProvider(providerID string) ([]models.Service, error)
}
