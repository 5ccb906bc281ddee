package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// TokenService issues and verifies signed session tokens carrying a user id.
type TokenService interface {
	// Issue returns a signed token for userID.
	Issue(ctx context.Context, userID string) (models.Token, error)
	// Verify returns the user id carried by tokenString. Every failure
	// (malformed, unsigned, mis-signed, expired) is reported as
	// [ErrInvalidCredential].
	Verify(ctx context.Context, tokenString string) (string, error)
}

// AuthService implements account registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	Profile(ctx context.Context, userID string) (models.Profile, error)
}

// NoteService implements the note lifecycle. Every operation is scoped to
// ownerID; notes of other users are reported as not found.
type NoteService interface {
	Create(ctx context.Context, ownerID string, req models.NoteRequest) (models.Note, error)
	List(ctx context.Context, ownerID string) ([]models.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (models.Note, error)
	Update(ctx context.Context, ownerID, noteID string, req models.NoteRequest) (models.Note, error)
	Trash(ctx context.Context, ownerID, noteID string) error
	Restore(ctx context.Context, ownerID, noteID string) error
	Purge(ctx context.Context, ownerID, noteID string) error
}

// PasswordHasher hashes passwords and checks them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// IDGenerator produces opaque record identifiers.
type IDGenerator interface {
	Generate() string
}
