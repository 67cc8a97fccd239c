package request

import "github.com/Souvikgooooo/ThrivePro/models"

// CreateInput carries the customer-supplied fields for a new service request.
// TimeSlot is the raw client value; Create parses and validates it.
type CreateInput struct {
	CustomerID      string
	ProviderID      string
	ServiceName     string
	CustomerAddress string
	NearestPoint    string
	TimeSlot        string
}

// RequestService orchestrates lookup, ownership checks, transition validation
// and persistence for service requests.
type RequestService interface {
	// Create books a new request with status pending.
	Create(in CreateInput) (*models.ServiceRequest, error)
	// ListForProvider returns the provider's requests, newest first, with
	// customer and service summaries attached.
	ListForProvider(providerID string) ([]models.ServiceRequest, error)
	// ListForCustomer returns the customer's requests, newest first, with
	// provider and service summaries attached.
	ListForCustomer(customerID string) ([]models.ServiceRequest, error)
	// UpdateStatus applies a provider-requested status transition.
	UpdateStatus(requestID string, newStatus models.Status, actingProviderID string) (*models.ServiceRequest, error)
	// ConfirmPayment applies the completed -> PaymentCompleted transition on
	// behalf of the paying customer once payment has been verified.
	ConfirmPayment(requestID, customerID string) (*models.ServiceRequest, error)
}
