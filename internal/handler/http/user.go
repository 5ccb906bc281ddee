package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// profile returns the username and email of the authenticated user.
// Any lookup failure answers 404, as existing clients expect.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteError(w, msgInvalidToken, http.StatusForbidden)
		return
	}

	profile, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		if statusFromError(err) >= http.StatusInternalServerError {
			logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("profile lookup failed")
		}
		utils.WriteError(w, msgUserNotFound, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
