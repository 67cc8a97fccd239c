package serviceRepo

import "github.com/Souvikgooooo/ThrivePro/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// Create inserts a new catalog entry.
	Create(svc *models.Service) error
	// GetByID retrieves a catalog entry by its unique ID. Returns (nil, nil) if absent.
	GetByID(id string) (*models.Service, error)
	// GetByProvider retrieves all catalog entries offered by a provider, newest first.
	GetByProvider(providerID string) ([]models.Service, error)
	// GetByNameAndProvider retrieves the catalog entry matching the (name, provider)
	// pair used at booking time. Returns (nil, nil) if absent.
	GetByNameAndProvider(name, providerID string) (*models.Service, error)
}
