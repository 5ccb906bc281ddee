package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Info().Str("username", req.Username).Msg("username already taken")
		}
		writeServiceError(w, r, err, msgUserNotFound, msgRegistrationFailed)
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgUserRegistered,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			log.Debug().Str("username", req.Username).Msg("wrong username or password")
			utils.WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err, msgInvalidCredentials, msgServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
