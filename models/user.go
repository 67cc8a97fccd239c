package models

import "time"

// Roles a user account can carry.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// User represents a platform account, customer or provider.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber"`
	Role         string    `bson:"role" json:"role"` // "customer" or "provider"
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the denormalized view attached to request listings.
type UserSummary struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	PhoneNumber string `bson:"phone_number" json:"phoneNumber"`
}

// Summary returns the listing view of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, PhoneNumber: u.PhoneNumber}
}
