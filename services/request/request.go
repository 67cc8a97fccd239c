package request

import (
	"fmt"
	"strings"
	"time"

	requestRepo "github.com/Souvikgooooo/ThrivePro/database/repository/request"
	serviceRepo "github.com/Souvikgooooo/ThrivePro/database/repository/service"
	userRepo "github.com/Souvikgooooo/ThrivePro/database/repository/user"
	"github.com/Souvikgooooo/ThrivePro/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultRequestService is the production RequestService implementation.
type DefaultRequestService struct {
	Repo     requestRepo.RequestRepository
	Users    userRepo.UserRepository
	Services serviceRepo.ServiceRepository
	Logger   *zap.Logger
}

// Create validates the booking input, snapshots the service name and price,
// and persists a new request with status pending.
func (s *DefaultRequestService) Create(in CreateInput) (*models.ServiceRequest, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, ValidationError{Message: "customer id is required"}
	}
	if strings.TrimSpace(in.ProviderID) == "" || strings.TrimSpace(in.ServiceName) == "" {
		return nil, ValidationError{Message: "providerId and serviceName are required"}
	}
	if strings.TrimSpace(in.CustomerAddress) == "" {
		return nil, ValidationError{Message: "customerAddress is required"}
	}

	provider, err := s.Users.GetByID(in.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}
	if provider == nil || provider.Role != models.RoleProvider {
		return nil, NotFoundError{Message: "provider not found"}
	}

	// Services are looked up by (name, provider); names are assumed unique
	// per provider.
	svc, err := s.Services.GetByNameAndProvider(in.ServiceName, in.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil {
		return nil, NotFoundError{Message: "service not found for this provider"}
	}

	slot, err := time.Parse(time.RFC3339, in.TimeSlot)
	if err != nil {
		return nil, ValidationError{Message: "time_slot must be a valid RFC3339 timestamp"}
	}
	// Enforced at creation only; the slot is not re-validated on later updates.
	if !slot.After(time.Now()) {
		return nil, ValidationError{Message: "time_slot must be in the future"}
	}

	req := &models.ServiceRequest{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		ProviderID:      in.ProviderID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServicePrice:    svc.Price,
		CustomerAddress: in.CustomerAddress,
		NearestPoint:    in.NearestPoint,
		TimeSlot:        slot,
		Status:          models.StatusPending,
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, fmt.Errorf("failed to persist service request: %w", err)
	}

	s.Logger.Info("service request created",
		zap.String("requestID", req.ID),
		zap.String("customerID", req.CustomerID),
		zap.String("providerID", req.ProviderID),
	)
	return req, nil
}

// ListForProvider returns the provider's requests, newest first.
func (s *DefaultRequestService) ListForProvider(providerID string) ([]models.ServiceRequest, error) {
	requests, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for provider %s: %w", providerID, err)
	}
	s.attachSummaries(requests, true)
	return requests, nil
}

// ListForCustomer returns the customer's requests, newest first.
func (s *DefaultRequestService) ListForCustomer(customerID string) ([]models.ServiceRequest, error) {
	requests, err := s.Repo.GetByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for customer %s: %w", customerID, err)
	}
	s.attachSummaries(requests, false)
	return requests, nil
}

// attachSummaries decorates listings with counterpart and service summaries.
// The service summary is built from the snapshot fields, never from the live
// catalog entry.
func (s *DefaultRequestService) attachSummaries(requests []models.ServiceRequest, forProvider bool) {
	summaries := make(map[string]*models.UserSummary)
	proj := bson.M{"id": 1, "name": 1, "phone_number": 1}

	for i := range requests {
		req := &requests[i]
		req.Service = &models.ServiceSummary{Name: req.ServiceName, Price: req.ServicePrice}

		counterpartID := req.CustomerID
		if !forProvider {
			counterpartID = req.ProviderID
		}
		summary, ok := summaries[counterpartID]
		if !ok {
			user, err := s.Users.GetByIDWithProjection(counterpartID, proj)
			if err != nil || user == nil {
				s.Logger.Warn("failed to attach user summary",
					zap.String("userID", counterpartID), zap.Error(err))
				continue
			}
			summary = user.Summary()
			summaries[counterpartID] = summary
		}
		if forProvider {
			req.Customer = summary
		} else {
			req.Provider = summary
		}
	}
}

// UpdateStatus applies a provider-requested transition. Checks run in order:
// existence, ownership, provider-settable subset, transition table.
func (s *DefaultRequestService) UpdateStatus(requestID string, newStatus models.Status, actingProviderID string) (*models.ServiceRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req == nil {
		return nil, NotFoundError{Message: "service request not found"}
	}

	if req.ProviderID != actingProviderID {
		return nil, ForbiddenError{Message: "you are not assigned to this request"}
	}

	if !newStatus.ProviderSettable() {
		return nil, ValidationError{Message: fmt.Sprintf("status %q cannot be set by a provider", newStatus)}
	}
	if !req.Status.CanTransitionTo(newStatus) {
		return nil, ValidationError{
			Message: fmt.Sprintf("cannot change status from %q to %q", req.Status, newStatus),
		}
	}

	updated, err := s.Repo.UpdateStatus(requestID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to persist status of request %s: %w", requestID, err)
	}
	if updated == nil {
		return nil, NotFoundError{Message: "service request not found"}
	}

	s.Logger.Info("service request status updated",
		zap.String("requestID", requestID),
		zap.String("from", req.Status.String()),
		zap.String("to", newStatus.String()),
	)
	return updated, nil
}

// ConfirmPayment applies completed -> PaymentCompleted for the paying customer.
func (s *DefaultRequestService) ConfirmPayment(requestID, customerID string) (*models.ServiceRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req == nil {
		return nil, NotFoundError{Message: "service request not found"}
	}

	if req.CustomerID != customerID {
		return nil, ForbiddenError{Message: "this request does not belong to you"}
	}

	if !req.Status.CanTransitionTo(models.StatusPaymentCompleted) {
		return nil, ValidationError{
			Message: fmt.Sprintf("cannot confirm payment while status is %q", req.Status),
		}
	}

	updated, err := s.Repo.UpdateStatus(requestID, models.StatusPaymentCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to persist payment completion for request %s: %w", requestID, err)
	}
	if updated == nil {
		return nil, NotFoundError{Message: "service request not found"}
	}

	s.Logger.Info("payment completed for service request", zap.String("requestID", requestID))
	return updated, nil
}
