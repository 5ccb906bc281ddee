package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// UserRepository persists user accounts. Passwords reach this layer already
// hashed; the repository never inspects them.
type UserRepository interface {
	// CreateUser stores a new account. Returns [ErrUsernameTaken] when the
	// username is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists notes. Every method is scoped by owner id, and a
// note owned by someone else is reported as [ErrNoteNotFound].
type NoteRepository interface {
	// Insert stores a new note as given (id and timestamps are assigned by the caller).
	Insert(ctx context.Context, note models.Note) (models.Note, error)
	// FindAllActive returns the owner's notes that are not in the trash, in insertion order.
	FindAllActive(ctx context.Context, ownerID string) ([]models.Note, error)
	// FindOne returns the note regardless of its trash state.
	FindOne(ctx context.Context, ownerID, noteID string) (models.Note, error)
	// UpdateFields atomically applies update to the note if it exists, is
	// owned by ownerID and is in the given state. Returns the updated note.
	UpdateFields(ctx context.Context, ownerID, noteID string, state models.NoteState, update models.NoteUpdate) (models.Note, error)
	// Remove deletes the note. With requireDeleted set, only a trashed note is removed.
	Remove(ctx context.Context, ownerID, noteID string, requireDeleted bool) error
}
