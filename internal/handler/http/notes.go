package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, msgNoteNotFound, msgServerError)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	req, ok := decodeNoteRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), ownerID, req)
	if err != nil {
		writeServiceError(w, r, err, msgNoteNotFound, msgServerError)
		return
	}

	logger.FromRequest(r).Debug().Str("note_id", note.ID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, msgNoteNotFound, msgServerError)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	req, ok := decodeNoteRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), ownerID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err, msgNoteNotFound, msgServerError)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// trashNote is a soft delete; the note stays restorable.
func (h *Handler) trashNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Trash(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, msgNoteNotFound, msgServerError)
		return
	}

	utils.WriteMessage(w, msgNoteTrashed, http.StatusOK)
}

func (h *Handler) restoreNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Restore(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, msgNoteNotFoundInTrash, msgServerError)
		return
	}

	utils.WriteMessage(w, msgNoteRestored, http.StatusOK)
}

func (h *Handler) purgeNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Purge(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, msgNoteNotFoundInTrash, msgServerError)
		return
	}

	utils.WriteMessage(w, msgNotePurged, http.StatusOK)
}

// owner returns the authenticated user id. Routes are mounted behind auth,
// so a miss means the middleware was skipped.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := userIDFromRequest(r)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		utils.WriteError(w, msgInvalidToken, http.StatusForbidden)
	}
	return ownerID, ok
}

func decodeNoteRequest(w http.ResponseWriter, r *http.Request) (models.NoteRequest, bool) {
	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}
