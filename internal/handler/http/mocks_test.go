package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ---- Mock: TokenService ----

type mockTokenService struct {
	issueFn  func(ctx context.Context, userID string) (models.Token, error)
	verifyFn func(ctx context.Context, token string) (string, error)
}

func (m *mockTokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	return m.issueFn(ctx, userID)
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (string, error) {
	return m.verifyFn(ctx, token)
}

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	profileFn  func(ctx context.Context, userID string) (models.Profile, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	return m.profileFn(ctx, userID)
}

// ---- Mock: NoteService ----

type mockNoteService struct {
	createFn  func(ctx context.Context, ownerID string, req models.NoteRequest) (models.Note, error)
	listFn    func(ctx context.Context, ownerID string) ([]models.Note, error)
	getFn     func(ctx context.Context, ownerID, noteID string) (models.Note, error)
	updateFn  func(ctx context.Context, ownerID, noteID string, req models.NoteRequest) (models.Note, error)
	trashFn   func(ctx context.Context, ownerID, noteID string) error
	restoreFn func(ctx context.Context, ownerID, noteID string) error
	purgeFn   func(ctx context.Context, ownerID, noteID string) error
}

func (m *mockNoteService) Create(ctx context.Context, ownerID string, req models.NoteRequest) (models.Note, error) {
	return m.createFn(ctx, ownerID, req)
}

func (m *mockNoteService) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockNoteService) Get(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	return m.getFn(ctx, ownerID, noteID)
}

func (m *mockNoteService) Update(ctx context.Context, ownerID, noteID string, req models.NoteRequest) (models.Note, error) {
	return m.updateFn(ctx, ownerID, noteID, req)
}

func (m *mockNoteService) Trash(ctx context.Context, ownerID, noteID string) error {
	return m.trashFn(ctx, ownerID, noteID)
}

func (m *mockNoteService) Restore(ctx context.Context, ownerID, noteID string) error {
	return m.restoreFn(ctx, ownerID, noteID)
}

func (m *mockNoteService) Purge(ctx context.Context, ownerID, noteID string) error {
	return m.purgeFn(ctx, ownerID, noteID)
}

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withOwner emulates a request that passed the auth middleware.
func withOwner(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}
