// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
//
// Every statement carries both the note id and the owner id in its WHERE
// clause. State-dependent changes are expressed as a single UPDATE or DELETE
// whose predicate includes the expected trash flag, so a concurrent writer
// can never interleave between the check and the write.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		updatedAt sql.NullTime
		deletedAt sql.NullTime
	)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&updatedAt,
		&note.Deleted,
		&deletedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.UpdatedAt = nullTimePtr(updatedAt)
	note.DeletedAt = nullTimePtr(deletedAt)

	return note, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Insert stores a new note. The note must already carry its id and
// creation timestamp.
func (n *noteRepository) Insert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Insert").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Insert").
			Bool("transient", n.transient(err)).
			Str("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Error().
			Str("func", "noteRepository.Insert").
			Str("user_id", note.UserID).
			Msg("note insert affected no rows")
		return models.Note{}, ErrNoteNotSaved
	}

	return note, nil
}

// FindAllActive returns all notes of the owner that are not in the trash,
// oldest first. Returns an empty slice when there are none.
func (n *noteRepository) FindAllActive(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveNotesQuery(n.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindAllActive").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindAllActive").
			Str("user_id", ownerID).
			Msg("failed to execute query for getting active notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.FindAllActive").
				Str("user_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.FindAllActive").
			Str("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// FindOne returns the owner's note regardless of its trash state, or
// [ErrNoteNotFound].
func (n *noteRepository) FindOne(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(n.builder, ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindOne").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).
			Str("func", "noteRepository.FindOne").
			Str("user_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateFields applies update to the note matching owner, id and state in a
// single statement and returns the row as stored afterwards.
// Returns [ErrNoteNotFound] when nothing matched.
func (n *noteRepository) UpdateFields(ctx context.Context, ownerID, noteID string, state models.NoteState, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder, ownerID, noteID, state, update)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateFields").Msg("failed to build query")
		if errors.Is(err, ErrEmptyUpdate) {
			return models.Note{}, err
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).
			Str("func", "noteRepository.UpdateFields").
			Str("user_id", ownerID).
			Str("note_id", noteID).
			Stringer("state", state).
			Bool("transient", n.transient(err)).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// Remove permanently deletes the owner's note. With requireDeleted set, only
// a trashed note matches. Returns [ErrNoteNotFound] when nothing was removed.
func (n *noteRepository) Remove(ctx context.Context, ownerID, noteID string, requireDeleted bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, ownerID, noteID, requireDeleted)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Remove").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Remove").
			Bool("transient", n.transient(err)).
			Str("user_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Remove").Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
