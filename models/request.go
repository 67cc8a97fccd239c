package models

import "time"

// ServiceRequest is the booking record tracked through its status lifecycle.
// ServiceName and ServicePrice are snapshots captured when the request is
// created; they are never recomputed from the live catalog entry, so later
// edits to the service do not affect historical requests.
type ServiceRequest struct {
	ID              string    `bson:"id" json:"id"`
	CustomerID      string    `bson:"customer_id" json:"customerId"`
	ProviderID      string    `bson:"provider_id" json:"providerId"`
	ServiceID       string    `bson:"service_id" json:"serviceId"`
	ServiceName     string    `bson:"service_name" json:"serviceName"`
	ServicePrice    float64   `bson:"service_price" json:"servicePrice"`
	CustomerAddress string    `bson:"customer_address" json:"customerAddress"`
	NearestPoint    string    `bson:"nearest_point,omitempty" json:"nearestPoint,omitempty"`
	TimeSlot        time.Time `bson:"time_slot" json:"time_slot"`
	Status          Status    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`

	// Attached at read time for dashboard listings, never persisted.
	Customer *UserSummary    `bson:"-" json:"customer,omitempty"`
	Provider *UserSummary    `bson:"-" json:"provider,omitempty"`
	Service  *ServiceSummary `bson:"-" json:"service,omitempty"`
}
