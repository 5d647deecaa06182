package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ilm-med/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when the issuer,
	// duration, sign key or email is missing.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptyEmailClaim is returned when a verified token carries no email.
	ErrEmptyEmailClaim = errors.New("empty email claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the identity
// claims.
//
// The token includes the following standard claims in addition to the
// identity fields of claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the caller's email
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("ilm-med", claims, time.Now(), 2*time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.Claims, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || claims.Email == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.Email,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// identity claims.
//
// Validation includes:
//   - HS256 signature verification using tokenSignKey
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check; an expired token yields an error that
//     matches jwt.ErrTokenExpired
//   - presence of the email claim
//
// Extra parser options (e.g. jwt.WithTimeFunc) are appended to the defaults.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, opts ...jwt.ParserOption) (models.Claims, error) {
	var claims models.Claims

	parserOpts := append([]jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}, opts...)

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, parserOpts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Claims{}, ErrEmptyEmailClaim
	}

	return claims, nil
}
