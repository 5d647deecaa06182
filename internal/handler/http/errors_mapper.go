package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/service"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/internal/utils"
)

// errorStatuses is checked in order and the first sentinel found in the
// chain wins, so an error wrapping several sentinels maps the same way on
// every call.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},

	{ErrForbiddenAccess, http.StatusForbidden},
	{ErrIdentityMismatch, http.StatusForbidden},

	{errInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrEmptyEmail, http.StatusBadRequest},
	{service.ErrInvalidID, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},
	{service.ErrEmptyUpdate, http.StatusBadRequest},
	{service.ErrInvalidPrice, http.StatusBadRequest},

	{store.ErrUserAlreadyExists, http.StatusConflict},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPaymentFailed, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrDecodingDocument, http.StatusInternalServerError},
	{store.ErrExecutingWrite, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status for err and the sentinel it
// matched, or 500 and nil when err matches none.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with {"message": ...}. Only the matched sentinel's text
// reaches the client; the full error chain is logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	message := http.StatusText(status)
	if target != nil {
		message = target.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
