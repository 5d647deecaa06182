package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenSvc(now *time.Time) *tokenService {
	svc := NewTokenService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "ilm-med",
		TokenDuration: 2 * time.Hour,
	}, logger.Nop()).(*tokenService)
	svc.now = func() time.Time { return *now }
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenSvc(&now)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, models.Claims{Email: "a@b.com", Name: "A"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	claims, err := svc.VerifyToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "A", claims.Name)
}

func TestTokenService_ExpiresAfterDuration(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenSvc(&now)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, models.Claims{Email: "a@b.com"})
	require.NoError(t, err)

	now = now.Add(2*time.Hour - time.Minute)
	_, err = svc.VerifyToken(ctx, token.SignedString)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.VerifyToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestTokenService_InvalidTokens(t *testing.T) {
	now := time.Now()
	svc := newTestTokenSvc(&now)
	ctx := context.Background()

	other := NewTokenService(config.App{TokenSignKey: "other-key", TokenIssuer: "ilm-med", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.IssueToken(ctx, models.Claims{Email: "a@b.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "abc.def.ghi"},
		{"wrong signature", foreign.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestTokenService_IssueRequiresEmail(t *testing.T) {
	now := time.Now()
	svc := newTestTokenSvc(&now)

	_, err := svc.IssueToken(context.Background(), models.Claims{Name: "no email"})
	assert.ErrorIs(t, err, ErrEmptyEmail)
}
