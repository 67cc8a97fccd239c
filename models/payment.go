package models

// PaymentIntentInfo is the client-facing view of a Stripe payment intent
// created for a completed service request.
type PaymentIntentInfo struct {
	RequestID    string  `json:"requestId"`
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       int64   `json:"amount"` // smallest currency unit
	Currency     string  `json:"currency"`
	Price        float64 `json:"price"`
}
