// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the notes REST API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// its HTTP/JSON implementation. Non-2xx responses are mapped by
// mapHTTPError to the sentinel values in errors.go so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ServerAdapter defines communication with the notes server. The bearer
// token obtained by Login is attached to every authenticated call.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the new user id.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Profile returns the username and email of the authenticated user.
	Profile(ctx context.Context) (models.Profile, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, req models.NoteRequest) (models.Note, error)

	// TrashNote moves a note to the trash.
	TrashNote(ctx context.Context, noteID string) error
	// RestoreNote takes a note out of the trash.
	RestoreNote(ctx context.Context, noteID string) error
	// PurgeNote permanently removes a trashed note.
	PurgeNote(ctx context.Context, noteID string) error
}
