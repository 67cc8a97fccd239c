package userRepo

import (
	"github.com/Souvikgooooo/ThrivePro/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil) if absent.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSetDocument applies a $set update to the user document.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
