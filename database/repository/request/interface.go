package requestRepo

import "github.com/Souvikgooooo/ThrivePro/models"

// RequestRepository defines methods for service request data access.
type RequestRepository interface {
	// Create inserts a new request record.
	Create(req *models.ServiceRequest) error
	// GetByID retrieves a request by its unique ID. Returns (nil, nil) if absent.
	GetByID(id string) (*models.ServiceRequest, error)
	// GetByProvider retrieves all requests assigned to a provider, newest first.
	GetByProvider(providerID string) ([]models.ServiceRequest, error)
	// GetByCustomer retrieves all requests created by a customer, newest first.
	GetByCustomer(customerID string) ([]models.ServiceRequest, error)
	// UpdateStatus persists a new status and returns the updated record.
	UpdateStatus(id string, status models.Status) (*models.ServiceRequest, error)
	// SetPaymentIntent stores the payment intent identifier on the record.
	SetPaymentIntent(id, intentID string) error
}
