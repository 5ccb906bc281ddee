package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// jwtTokenService is the HS256 JWT implementation of [TokenService].
type jwtTokenService struct {
	// signKey is the process-wide HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a token stays valid. Zero issues tokens
	// without an "exp" claim.
	duration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the application config.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &jwtTokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

// Issue signs a token whose subject is userID.
func (s *jwtTokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jwtTokenService.Issue").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature, signing method, issuer and expiry of
// tokenString. The concrete reason of a failure is logged, while the caller
// always receives [ErrInvalidCredential].
func (s *jwtTokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingCredential
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "jwtTokenService.Verify").Msg("token rejected")
		return "", ErrInvalidCredential
	}

	return token.UserID, nil
}
