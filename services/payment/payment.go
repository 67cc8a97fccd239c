package payment

import (
	"fmt"
	"math"

	requestRepo "github.com/Souvikgooooo/ThrivePro/database/repository/request"
	"github.com/Souvikgooooo/ThrivePro/models"
	requestSvc "github.com/Souvikgooooo/ThrivePro/services/request"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentClient abstracts the Stripe payment intent API.
type IntentClient interface {
	Create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string) (*stripe.PaymentIntent, error)
}

// StripeIntentClient calls the live Stripe API.
type StripeIntentClient struct{}

func (StripeIntentClient) Create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

func (StripeIntentClient) Get(id string) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, nil)
}

// PaymentService reconciles payment for completed service requests.
type PaymentService interface {
	// CreateIntent creates (or returns the existing) payment intent for a
	// completed request.
	CreateIntent(requestID, customerID string) (*models.PaymentIntentInfo, error)
	// Confirm verifies the intent succeeded and moves the request to
	// PaymentCompleted.
	Confirm(requestID, customerID string) (*models.ServiceRequest, error)
}

// DefaultPaymentService is the production PaymentService implementation.
type DefaultPaymentService struct {
	Repo     requestRepo.RequestRepository
	Requests requestSvc.RequestService
	Intents  IntentClient
	Currency string
	Logger   *zap.Logger
}

// CreateIntent creates a payment intent for a completed request. Repeat calls
// return the intent already attached to the request.
func (s *DefaultPaymentService) CreateIntent(requestID, customerID string) (*models.PaymentIntentInfo, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req == nil {
		return nil, requestSvc.NotFoundError{Message: "service request not found"}
	}
	if req.CustomerID != customerID {
		return nil, requestSvc.ForbiddenError{Message: "this request does not belong to you"}
	}
	if req.Status != models.StatusCompleted {
		return nil, requestSvc.ValidationError{
			Message: fmt.Sprintf("payment is only due once the request is completed, current status is %q", req.Status),
		}
	}

	amount := int64(math.Round(req.ServicePrice * 100))

	if req.PaymentIntentID != "" {
		intent, err := s.Intents.Get(req.PaymentIntentID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch existing payment intent: %w", err)
		}
		return s.intentInfo(req, intent, amount), nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.Currency),
	}
	params.AddMetadata("request_id", req.ID)
	params.AddMetadata("customer_id", req.CustomerID)

	intent, err := s.Intents.Create(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	if err := s.Repo.SetPaymentIntent(req.ID, intent.ID); err != nil {
		return nil, err
	}

	s.Logger.Info("payment intent created",
		zap.String("requestID", req.ID), zap.String("intentID", intent.ID))
	return s.intentInfo(req, intent, amount), nil
}

func (s *DefaultPaymentService) intentInfo(req *models.ServiceRequest, intent *stripe.PaymentIntent, amount int64) *models.PaymentIntentInfo {
	return &models.PaymentIntentInfo{
		RequestID:    req.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     s.Currency,
		Price:        req.ServicePrice,
	}
}

// Confirm verifies the intent succeeded and applies completed -> PaymentCompleted.
func (s *DefaultPaymentService) Confirm(requestID, customerID string) (*models.ServiceRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	if req == nil {
		return nil, requestSvc.NotFoundError{Message: "service request not found"}
	}
	if req.CustomerID != customerID {
		return nil, requestSvc.ForbiddenError{Message: "this request does not belong to you"}
	}
	if req.PaymentIntentID == "" {
		return nil, requestSvc.ValidationError{Message: "no payment intent exists for this request"}
	}

	intent, err := s.Intents.Get(req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, requestSvc.ValidationError{
			Message: fmt.Sprintf("payment has not succeeded yet, intent status is %q", intent.Status),
		}
	}

	// The transition itself stays behind the request service so the table
	// remains the single source of truth.
	return s.Requests.ConfirmPayment(requestID, customerID)
}
