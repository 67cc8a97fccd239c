package user

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials signals a failed email/password check.
var ErrInvalidCredentials = errors.New("invalid email or password")

// EmailTakenError signals a registration attempt with an email already in use.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string {
	return fmt.Sprintf("an account with email %s already exists", e.Email)
}

// ValidationError covers missing or malformed registration fields.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
