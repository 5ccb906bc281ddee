package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Config configures [NewHTTPServerAdapter].
type Config struct {
	// Address is the server base address, with or without scheme
	// (e.g. "localhost:3000" or "https://notes.example.com").
	Address string

	// RequestTimeout bounds every request; zero keeps resty's default.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises cfg.Address and returns an error if it is empty or cannot be
// parsed as a URL.
func NewHTTPServerAdapter(cfg Config) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL+"/api").
		SetHeader("Content-Type", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&registered).
		Post("/auth/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return registered.UserID, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&login).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(login.Token)
	return login.Token, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).SetResult(&profile).Get("/user")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).SetResult(&notes).Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).SetBody(req).SetResult(&note).Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetResult(&note).
		Get("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, req models.NoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetBody(req).
		SetResult(&note).
		Put("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) TrashNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).SetPathParam("id", noteID).Delete("/notes/{id}")
	if err != nil {
		return fmt.Errorf("trash note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RestoreNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).SetPathParam("id", noteID).Put("/notes/{id}/restore")
	if err != nil {
		return fmt.Errorf("restore note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PurgeNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).SetPathParam("id", noteID).Delete("/notes/{id}/permanent")
	if err != nil {
		return fmt.Errorf("purge note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
