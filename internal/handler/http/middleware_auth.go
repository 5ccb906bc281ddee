package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the token,
// verifies it via [service.TokenService.Verify], and on success stores the
// authenticated user's ID in the request context (see [utils.WithUserID])
// before delegating to the next handler.
//
// Rejections:
//   - 401 "No authorization header" when the header is absent.
//   - 401 "No token provided" when the header has no token part.
//   - 403 "Invalid token" for any token that fails verification. The reason
//     is logged but never returned to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, msgNoAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, msgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrMissingCredential) {
				utils.WriteError(w, msgNoTokenProvided, http.StatusUnauthorized)
				return
			}
			log.Debug().Err(err).Msg("token verification failed")
			utils.WriteError(w, msgInvalidToken, http.StatusForbidden)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithUserID(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form
//
//	Authorization: <scheme> <token>
//
// Only the second space-separated part is taken; the scheme itself is not
// checked, matching what existing clients send.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}

// userIDFromRequest returns the id stored by the auth middleware.
func userIDFromRequest(r *http.Request) (string, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
