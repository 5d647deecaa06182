package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/utils"
)

// requireToken is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.TokenService.VerifyToken], and on success stores
// the decoded claims in the request context under [utils.ClaimsCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid ([service.ErrTokenIsInvalid]).
//
// Rejected requests never reach the store.
func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.VerifyToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// requireAdmin lets the request through only when the user behind the
// token's email holds the admin role. It must run after requireToken.
//
// The role is looked up on every request, so a revoked admin loses access
// immediately (or after the cache TTL when the role cache is enabled).
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		isAdmin, err := h.services.UserService.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !isAdmin {
			log.Warn().Str("email", claims.Email).Str("uri", r.RequestURI).Msg("non-admin tried admin route")
			writeError(w, r, ErrForbiddenAccess)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sameIdentity reports whether email equals the email carried by the
// request's token.
func sameIdentity(r *http.Request, email string) bool {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	return ok && claims.Email != "" && claims.Email == email
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts.
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
