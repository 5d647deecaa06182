package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the concrete implementation of TokenService.
// Tokens are stateless: nothing is persisted on issue or verify.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// IssueToken signs claims into a JWT that expires after the configured
// duration.
//
// Returns ErrEmptyEmail if claims carry no email, or a wrapped
// ErrTokenCreationFailed if signing fails.
func (s *tokenService) IssueToken(ctx context.Context, claims models.Claims) (models.Token, error) {
	if claims.Email == "" {
		return models.Token{}, ErrEmptyEmail
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, claims, s.now(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueToken").Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates signature, issuer and expiry of tokenString.
// Low-level JWT errors are normalised to ErrTokenIsExpired or
// ErrTokenIsInvalid.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, jwt.WithTimeFunc(s.now))
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, ErrTokenIsExpired
	default:
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.VerifyToken").Msg("token rejected")
		return models.Claims{}, ErrTokenIsInvalid
	}
}
