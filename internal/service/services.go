package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

type Services struct {
	TokenService TokenService
	AuthService  AuthService
	NoteService  NoteService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewRequestValidator()
	tokens := NewTokenService(cfg.App, logger)

	return &Services{
		TokenService: tokens,
		AuthService: NewAuthService(
			storages.UserRepository,
			tokens,
			utils.NewPasswordHasher(cfg.App.BcryptCost),
			ids,
			validator,
			logger,
		),
		NoteService: NewNoteService(storages.NoteRepository, ids, validator, logger),
	}
}
