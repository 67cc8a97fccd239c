package catalog

import (
	"fmt"
	"strings"

	serviceRepo "github.com/Souvikgooooo/ThrivePro/database/repository/service"
	"github.com/Souvikgooooo/ThrivePro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError covers missing or malformed catalog input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// DefaultCatalogService is the production CatalogService implementation.
type DefaultCatalogService struct {
	Repo   serviceRepo.ServiceRepository
	Logger *zap.Logger
}

// Create adds an entry to the provider's catalog. Names are assumed unique
// per provider; a duplicate name would shadow the older entry at booking time.
func (s *DefaultCatalogService) Create(in CreateInput) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ValidationError{Message: "service name is required"}
	}
	if in.Price <= 0 {
		return nil, ValidationError{Message: "price must be greater than zero"}
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		ProviderID:  in.ProviderID,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create catalog entry: %w", err)
	}

	s.Logger.Info("catalog entry created",
		zap.String("serviceID", svc.ID), zap.String("providerID", svc.ProviderID))
	return svc, nil
}

// ListForProvider returns a provider's catalog entries, newest first.
func (s *DefaultCatalogService) ListForProvider(providerID string) ([]models.Service, error) {
	services, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog for provider %s: %w", providerID, err)
	}
	return services, nil
}
