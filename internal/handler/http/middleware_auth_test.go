package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "scheme and trailing space", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "other scheme still parses second part", header: "Basic dXNlcjpwYXNz", wantToken: "dXNlcjpwYXNz"},
		{name: "extra parts, second part is used", header: "Bearer token extra", wantToken: "token"},
		{name: "no space", header: "BearerToken", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifyFn   func(ctx context.Context, token string) (string, error)
		wantStatus int
		wantBody   string
		wantNext   bool
		wantUserID string
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"No authorization header"}`,
		},
		{
			name:       "header without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"No token provided"}`,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			verifyFn: func(_ context.Context, token string) (string, error) {
				if token != "good" {
					return "", service.ErrInvalidCredential
				}
				return "user-1", nil
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
			wantUserID: "user-1",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer forged",
			verifyFn: func(_ context.Context, _ string) (string, error) {
				return "", fmt.Errorf("signature mismatch: %w", service.ErrInvalidCredential)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "verifier reports missing credential",
			authHeader: "Bearer x",
			verifyFn: func(_ context.Context, _ string) (string, error) {
				return "", service.ErrMissingCredential
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"No token provided"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyFn := tt.verifyFn
			if verifyFn == nil {
				verifyFn = func(_ context.Context, _ string) (string, error) {
					t.Fatal("Verify should not be called")
					return "", nil
				}
			}
			h := newTestHandler(&service.Services{TokenService: &mockTokenService{verifyFn: verifyFn}})

			nextCalled := false
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(&service.Services{TokenService: &mockTokenService{
		verifyFn: func(_ context.Context, _ string) (string, error) { return "user-1", nil },
	}})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context())
	_, ok := utils.GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}
