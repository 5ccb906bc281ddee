package service

import (
	"errors"
)

var (
	// ErrValidation marks input rejected before reaching the store.
	ErrValidation = errors.New("validation failed")

	// ErrMissingCredential is returned when a request carries no bearer token.
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCredential is returned for any token that fails verification.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrWrongCredentials is returned by Login for an unknown username or a
	// wrong password alike.
	ErrWrongCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries a client-facing message for rejected input.
// It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}
