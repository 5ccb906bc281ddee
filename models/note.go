// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a short text note owned by a single user.
//
// JSON field names follow the document layout the browser client already
// consumes (`_id`, `userId`, ...).
//
// Invariants:
//   - UserID never changes after creation.
//   - Deleted == true iff DeletedAt != nil.
type Note struct {
	// ID is the opaque note identifier assigned at creation.
	ID string `json:"_id"`

	// UserID is the owner of the note.
	UserID string `json:"userId"`

	Title   string `json:"title"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set on every successful update; nil for never-edited notes.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// Deleted marks a note as moved to trash.
	Deleted bool `json:"deleted"`

	// DeletedAt is set together with Deleted and cleared on restore.
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteState is a filter on the trash flag of a note, used by owner-scoped
// store operations to decide which records a mutation may touch.
type NoteState int

const (
	// AnyState matches notes regardless of the trash flag.
	AnyState NoteState = iota
	// ActiveState matches notes that are not in trash.
	ActiveState
	// TrashedState matches notes that are in trash.
	TrashedState
)

// String implements fmt.Stringer.
func (s NoteState) String() string {
	switch s {
	case ActiveState:
		return "active"
	case TrashedState:
		return "trashed"
	default:
		return "any"
	}
}

// NoteUpdate describes a partial update of a single note.
// Only non-nil fields are written.
type NoteUpdate struct {
	Title     *string
	Content   *string
	UpdatedAt *time.Time

	Deleted   *bool
	DeletedAt *time.Time

	// ClearDeletedAt resets deleted_at to NULL. It takes precedence over DeletedAt.
	ClearDeletedAt bool
}

// IsEmpty reports whether the update has nothing to write.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Content == nil &&
		u.UpdatedAt == nil &&
		u.Deleted == nil &&
		u.DeletedAt == nil &&
		!u.ClearDeletedAt
}
