package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and profile lookup
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues the session token returned by Login.
	tokens TokenService

	hasher PasswordHasher
	// dummyHash is compared against on an unknown username so that both
	// login failures cost one hash comparison.
	dummyHash string

	ids       IDGenerator
	validator validators.Validator

	logger *logger.Logger
}

const dummyPassword = "not-a-real-password"

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokens TokenService,
	hasher PasswordHasher,
	ids IDGenerator,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Err(err).Msg("failed to prepare dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		hasher:         hasher,
		dummyHash:      dummyHash,
		ids:            ids,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - an error matching ErrValidation if a field is missing or malformed.
//   - store.ErrUsernameTaken (wrapped) if the username is already registered.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, req, "All fields are required"); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.User{}, err
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login checks the credentials and returns a session token.
//
// An unknown username and a wrong password both yield ErrWrongCredentials,
// so callers cannot tell which usernames exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, req, "Username and password are required"); err != nil {
		return models.Token{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Compare(a.dummyHash, req.Password)
		log.Debug().Str("username", req.Username).Msg("login with unknown username")
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Compare(foundUser.PasswordHash, req.Password) {
		log.Debug().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	return a.tokens.Issue(ctx, foundUser.UserID)
}

// Profile returns the public profile of the user.
// Returns store.ErrUserNotFound (wrapped) if the account does not exist.
func (a *authService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.Profile{Username: user.Username, Email: user.Email}, nil
}
