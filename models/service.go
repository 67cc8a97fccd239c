package models

import "time"

// Service is a catalog entry offered by a provider. Requests reference it at
// booking time by (name, provider); the name is assumed unique per provider.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"providerId"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ServiceSummary is the denormalized view attached to request listings.
type ServiceSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
