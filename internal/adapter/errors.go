package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx response. Message is the server's "error" field,
// or the raw body when it is not JSON.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}
