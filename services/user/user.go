package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "github.com/Souvikgooooo/ThrivePro/database/repository/user"
	"github.com/Souvikgooooo/ThrivePro/models"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultUserService is the production UserService implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Register creates a new account and returns it with a fresh token.
func (s *DefaultUserService) Register(in RegisterInput) (*models.User, string, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, "", ValidationError{Message: "name, email and password are required"}
	}
	if in.Role != models.RoleCustomer && in.Role != models.RoleProvider {
		return nil, "", ValidationError{Message: "role must be either customer or provider"}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", EmailTakenError{Email: in.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		Role:         in.Role,
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}

	s.Logger.Info("account registered",
		zap.String("userID", account.ID), zap.String("role", account.Role))
	return account, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	account, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// issueToken signs a JWT and persists its hash for middleware validation.
func (s *DefaultUserService) issueToken(account *models.User) (string, error) {
	token, err := utils.GenerateToken(account.ID, account.Role, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	account.TokenHash = utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(account.ID, bson.M{"token_hash": account.TokenHash}); err != nil {
		return "", fmt.Errorf("failed to persist token hash: %w", err)
	}
	return token, nil
}

// GetUserByID retrieves an account by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return account, nil
}

// RevokeToken invalidates the account's current token.
func (s *DefaultUserService) RevokeToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
