package user

import "github.com/Souvikgooooo/ThrivePro/models"

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Role        string // "customer" or "provider"
}

// UserService handles account registration and authentication.
type UserService interface {
	// Register creates a new account and returns it with a fresh token.
	Register(in RegisterInput) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a fresh token.
	Authenticate(email, password string) (*models.User, string, error)
	// GetUserByID retrieves an account by id.
	GetUserByID(id string) (*models.User, error)
	// RevokeToken invalidates the account's current token.
	RevokeToken(id string) error
}
