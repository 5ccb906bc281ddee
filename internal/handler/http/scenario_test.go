package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// newTestAPI returns a resty client for the API served by newTestServerURL.
func newTestAPI(t *testing.T) *resty.Client {
	t.Helper()
	return resty.New().SetBaseURL(newTestServerURL(t) + "/api")
}

// newTestServerURL runs the full router over a real SQLite store.
func newTestServerURL(t *testing.T) string {
	t.Helper()

	log := logger.Nop()
	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey: "test-sign-key",
			TokenIssuer:  "go-notes-keeper-test",
			BcryptCost:   bcrypt.MinCost,
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "notes.db"),
		}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	h := NewHandler(service.NewServices(storages, cfg, log), cfg.Server, log)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv.URL
}

// newAPIClient registers username and returns a client logged in as it.
func newAPIClient(t *testing.T, baseURL, username string) adapter.ServerAdapter {
	t.Helper()
	ctx := context.Background()

	client, err := adapter.NewHTTPServerAdapter(adapter.Config{Address: baseURL})
	require.NoError(t, err)

	userID, err := client.Register(ctx, models.RegisterRequest{Username: username, Email: username + "@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	_, err = client.Login(ctx, models.LoginRequest{Username: username, Password: "secret1"})
	require.NoError(t, err)

	return client
}

func registerAndLogin(t *testing.T, client *resty.Client, username string) string {
	t.Helper()

	var registered models.RegisterResponse
	resp, err := client.R().
		SetBody(models.RegisterRequest{Username: username, Email: username + "@x.com", Password: "secret1"}).
		SetResult(&registered).
		Post("/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	require.Equal(t, "User registered", registered.Message)
	require.NotEmpty(t, registered.UserID)

	var login models.LoginResponse
	resp, err = client.R().
		SetBody(models.LoginRequest{Username: username, Password: "secret1"}).
		SetResult(&login).
		Post("/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.NotEmpty(t, login.Token)

	return login.Token
}

func listNoteIDs(t *testing.T, client *resty.Client, token string) []string {
	t.Helper()

	var notes []models.Note
	resp, err := client.R().SetAuthToken(token).SetResult(&notes).Get("/notes")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestScenario_NoteLifecycle(t *testing.T) {
	client := newTestAPI(t)
	token := registerAndLogin(t, client, "alice")

	var created models.Note
	resp, err := client.R().
		SetAuthToken(token).
		SetBody(models.NoteRequest{Title: "Groceries", Content: "Milk,eggs"}).
		SetResult(&created).
		Post("/notes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Deleted)
	assert.Nil(t, created.UpdatedAt)

	noteID := created.ID
	assert.Contains(t, listNoteIDs(t, client, token), noteID)

	// restore and purge are only valid from the trash
	resp, err = client.R().SetAuthToken(token).Put("/notes/" + noteID + "/restore")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Note not found in trash"}`, resp.String())

	resp, err = client.R().SetAuthToken(token).Delete("/notes/" + noteID + "/permanent")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	var updated models.Note
	resp, err = client.R().
		SetAuthToken(token).
		SetBody(models.NoteRequest{Title: "Groceries", Content: "Milk,eggs,bread"}).
		SetResult(&updated).
		Put("/notes/" + noteID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "Milk,eggs,bread", updated.Content)
	assert.NotNil(t, updated.UpdatedAt)

	resp, err = client.R().SetAuthToken(token).Delete("/notes/" + noteID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"message":"Note moved to trash"}`, resp.String())
	assert.NotContains(t, listNoteIDs(t, client, token), noteID)

	// a trashed note is still readable by id
	var trashed models.Note
	resp, err = client.R().SetAuthToken(token).SetResult(&trashed).Get("/notes/" + noteID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.True(t, trashed.Deleted)
	assert.NotNil(t, trashed.DeletedAt)

	resp, err = client.R().SetAuthToken(token).Put("/notes/" + noteID + "/restore")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"message":"Note restored"}`, resp.String())
	assert.Contains(t, listNoteIDs(t, client, token), noteID)

	resp, err = client.R().SetAuthToken(token).Delete("/notes/" + noteID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().SetAuthToken(token).Delete("/notes/" + noteID + "/permanent")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"message":"Note permanently deleted"}`, resp.String())

	resp, err = client.R().SetAuthToken(token).Get("/notes/" + noteID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestScenario_OwnershipIsolation(t *testing.T) {
	baseURL := newTestServerURL(t)
	ctx := context.Background()

	alice := newAPIClient(t, baseURL, "alice")
	bob := newAPIClient(t, baseURL, "bob")

	note, err := alice.CreateNote(ctx, models.NoteRequest{Title: "Private", Content: "alice only"})
	require.NoError(t, err)

	attempts := map[string]func() error{
		"get": func() error { _, err := bob.GetNote(ctx, note.ID); return err },
		"update": func() error {
			_, err := bob.UpdateNote(ctx, note.ID, models.NoteRequest{Title: "x", Content: "y"})
			return err
		},
		"trash":   func() error { return bob.TrashNote(ctx, note.ID) },
		"restore": func() error { return bob.RestoreNote(ctx, note.ID) },
		"purge":   func() error { return bob.PurgeNote(ctx, note.ID) },
	}
	for name, attempt := range attempts {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, attempt(), adapter.ErrNotFound)
		})
	}

	bobNotes, err := bob.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, bobNotes)

	stillThere, err := alice.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", stillThere.Title)
	assert.False(t, stillThere.Deleted)

	// trashed by the owner, still invisible to others
	require.NoError(t, alice.TrashNote(ctx, note.ID))
	assert.ErrorIs(t, bob.RestoreNote(ctx, note.ID), adapter.ErrNotFound)
	assert.ErrorIs(t, bob.PurgeNote(ctx, note.ID), adapter.ErrNotFound)
	require.NoError(t, alice.RestoreNote(ctx, note.ID))
}

func TestScenario_Rejections(t *testing.T) {
	client := newTestAPI(t)
	token := registerAndLogin(t, client, "alice")

	t.Run("duplicate registration", func(t *testing.T) {
		resp, err := client.R().
			SetBody(models.RegisterRequest{Username: "alice", Email: "other@x.com", Password: "secret2"}).
			Post("/auth/register")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
		assert.JSONEq(t, `{"error":"Registration failed"}`, resp.String())
	})

	t.Run("free-form email is accepted", func(t *testing.T) {
		resp, err := client.R().
			SetBody(models.RegisterRequest{Username: "dave", Email: "dave", Password: "secret1"}).
			Post("/auth/register")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	})

	t.Run("password over 72 characters", func(t *testing.T) {
		resp, err := client.R().
			SetBody(models.RegisterRequest{Username: "erin", Email: "erin@x.com", Password: strings.Repeat("x", 80)}).
			Post("/auth/register")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
		assert.JSONEq(t, `{"error":"password must be at most 72 characters"}`, resp.String())
	})

	t.Run("register missing field", func(t *testing.T) {
		resp, err := client.R().SetBody(map[string]string{"username": "carol"}).Post("/auth/register")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, err := client.R().
			SetBody(models.LoginRequest{Username: "alice", Password: "wrong-one"}).
			Post("/auth/login")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, resp.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, err := client.R().
			SetBody(models.LoginRequest{Username: "nobody", Password: "secret1"}).
			Post("/auth/login")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, resp.String())
	})

	t.Run("empty title", func(t *testing.T) {
		resp, err := client.R().
			SetAuthToken(token).
			SetBody(models.NoteRequest{Title: "", Content: "body"}).
			Post("/notes")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
		assert.JSONEq(t, `{"error":"Title and content are required"}`, resp.String())
	})

	t.Run("no authorization header", func(t *testing.T) {
		resp, err := client.R().Get("/notes")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	})

	t.Run("forged token", func(t *testing.T) {
		resp, err := client.R().SetAuthToken(token + "x").Get("/notes")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode())
		assert.JSONEq(t, `{"error":"Invalid token"}`, resp.String())
	})

	t.Run("profile", func(t *testing.T) {
		var profile models.Profile
		resp, err := client.R().SetAuthToken(token).SetResult(&profile).Get("/user")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, models.Profile{Username: "alice", Email: "alice@x.com"}, profile)
	})
}
