package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// recoverer turns a panic in a downstream handler into a 500 JSON response.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if r.Header.Get("Connection") != "Upgrade" {
				utils.WriteError(w, msgSomethingBroke, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
