package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	service.ErrValidation: http.StatusBadRequest,

	service.ErrMissingCredential: http.StatusUnauthorized,
	service.ErrInvalidCredential: http.StatusForbidden,
	service.ErrWrongCredentials:  http.StatusUnauthorized,

	store.ErrNoteNotFound: http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	// duplicate registrations surface as a generic failure, as existing clients expect
	store.ErrUsernameTaken: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrNoteNotSaved:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the status mapped from it.
// Client errors carry their own message; server errors get fallback, and a
// not-found gets notFoundMessage.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage, fallback string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var message string
	switch {
	case status == http.StatusNotFound:
		message = notFoundMessage
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		message = fallback
	default:
		message = clientMessage(err)
	}

	if status < http.StatusInternalServerError {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

// clientMessage returns the text of a client error. Validation errors carry
// a message meant for the client; anything else is reported as is.
func clientMessage(err error) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}
