package service

import "errors"

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrNotOwner           = errors.New("not the owner of this resource")
	ErrProfileExists      = errors.New("profile already exists for this user")
)

// ValidationError carries a client-facing message for malformed input.
// Handlers map it to a 400 with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
