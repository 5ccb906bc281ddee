package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const noteFieldsRequired = "Title and content are required"

// noteService implements [NoteService] on top of a [store.NoteRepository].
//
// State checks are never done in Go code: each transition hands its
// required source state to the repository, which applies it atomically.
type noteService struct {
	notes     store.NoteRepository
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewNoteService constructs a [NoteService].
func NewNoteService(notes store.NoteRepository, ids IDGenerator, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		notes:     notes,
		ids:       ids,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:    logger,
	}
}

// Create stores a new active note. Title and content must not be blank.
func (s *noteService) Create(ctx context.Context, ownerID string, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.checkFields(ctx, req); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:        s.ids.Generate(),
		UserID:    ownerID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: s.now(),
		Deleted:   false,
	}

	created, err := s.notes.Insert(ctx, note)
	if err != nil {
		log.Err(err).Str("user_id", ownerID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// List returns the owner's notes that are not in the trash.
func (s *noteService) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := s.notes.FindAllActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// Get returns the owner's note whether or not it is in the trash.
func (s *noteService) Get(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	note, err := s.notes.FindOne(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("getting note failed: %w", err)
	}

	return note, nil
}

// Update replaces title and content of an active note and stamps updatedAt.
func (s *noteService) Update(ctx context.Context, ownerID, noteID string, req models.NoteRequest) (models.Note, error) {
	if err := s.checkFields(ctx, req); err != nil {
		return models.Note{}, err
	}

	now := s.now()
	updated, err := s.notes.UpdateFields(ctx, ownerID, noteID, updateRequires, models.NoteUpdate{
		Title:     &req.Title,
		Content:   &req.Content,
		UpdatedAt: &now,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("updating note failed: %w", err)
	}

	return updated, nil
}

// Trash moves the note to the trash and stamps deletedAt.
func (s *noteService) Trash(ctx context.Context, ownerID, noteID string) error {
	deleted := true
	now := s.now()

	_, err := s.notes.UpdateFields(ctx, ownerID, noteID, trashRequires, models.NoteUpdate{
		Deleted:   &deleted,
		DeletedAt: &now,
	})
	if err != nil {
		return fmt.Errorf("trashing note failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("note_id", noteID).Msg("note moved to trash")
	return nil
}

// Restore takes a trashed note out of the trash and clears deletedAt.
func (s *noteService) Restore(ctx context.Context, ownerID, noteID string) error {
	deleted := false

	_, err := s.notes.UpdateFields(ctx, ownerID, noteID, restoreRequires, models.NoteUpdate{
		Deleted:        &deleted,
		ClearDeletedAt: true,
	})
	if err != nil {
		return fmt.Errorf("restoring note failed: %w", err)
	}

	return nil
}

// Purge permanently removes a trashed note.
func (s *noteService) Purge(ctx context.Context, ownerID, noteID string) error {
	if err := s.notes.Remove(ctx, ownerID, noteID, purgeRequiresTrashed); err != nil {
		return fmt.Errorf("purging note failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("note_id", noteID).Msg("note permanently deleted")
	return nil
}

// checkFields rejects a title or content that is empty after trimming.
// The values themselves are stored as given.
func (s *noteService) checkFields(ctx context.Context, req models.NoteRequest) error {
	trimmed := models.NoteRequest{
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
	}

	return validate(ctx, s.validator, trimmed, noteFieldsRequired)
}
