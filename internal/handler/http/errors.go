// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but carries no token after the scheme.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Client-facing messages.
const (
	msgNoAuthorizationHeader = "No authorization header"
	msgNoTokenProvided       = "No token provided"
	msgInvalidToken          = "Invalid token"
	msgInvalidCredentials    = "Invalid credentials"
	msgRegistrationFailed    = "Registration failed"
	msgUserNotFound          = "User not found"
	msgNoteNotFound          = "Note not found"
	msgNoteNotFoundInTrash   = "Note not found in trash"
	msgSomethingBroke        = "Something broke!"
	msgServerError           = "Server error"
	msgNotFound              = "Not found"

	msgUserRegistered = "User registered"
	msgNoteTrashed    = "Note moved to trash"
	msgNoteRestored   = "Note restored"
	msgNotePurged     = "Note permanently deleted"
)
