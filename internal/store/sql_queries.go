package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at"}
	noteColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at", "deleted", "deleted_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(models.Note{}.TableName()).
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt, note.Deleted, note.DeletedAt).
		ToSql()
}

func buildSelectActiveNotesQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		Where(stateCondition(models.ActiveState)).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildSelectNoteQuery(b sq.StatementBuilderType, ownerID, noteID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": ownerID}).
		ToSql()
}

// buildUpdateNoteQuery builds a single owner-scoped UPDATE ... RETURNING
// statement. Only the non-nil fields of update are set.
func buildUpdateNoteQuery(b sq.StatementBuilderType, ownerID, noteID string, state models.NoteState, update models.NoteUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	set := make(map[string]any, 6)
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.UpdatedAt != nil {
		set["updated_at"] = *update.UpdatedAt
	}
	if update.Deleted != nil {
		set["deleted"] = *update.Deleted
	}
	if update.DeletedAt != nil {
		set["deleted_at"] = *update.DeletedAt
	}
	if update.ClearDeletedAt {
		set["deleted_at"] = nil
	}

	query := b.Update(models.Note{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": noteID, "user_id": ownerID})

	if cond := stateCondition(state); cond != nil {
		query = query.Where(cond)
	}

	return query.
		Suffix(fmt.Sprintf("RETURNING %s", strings.Join(noteColumns, ", "))).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, ownerID, noteID string, requireDeleted bool) (string, []any, error) {
	query := b.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": ownerID})

	if requireDeleted {
		query = query.Where(stateCondition(models.TrashedState))
	}

	return query.ToSql()
}

// stateCondition translates a note state into a WHERE predicate.
// AnyState yields nil (no filtering).
func stateCondition(state models.NoteState) sq.Sqlizer {
	switch state {
	case models.ActiveState:
		return sq.Eq{"deleted": false}
	case models.TrashedState:
		return sq.Eq{"deleted": true}
	default:
		return nil
	}
}
