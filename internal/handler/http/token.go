package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
)

// issueToken signs the posted identity claims into an access token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var claims models.Claims
	if err := decodeJSON(r, &claims, false); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.IssueToken(r.Context(), models.Claims{Email: claims.Email, Name: claims.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, token, http.StatusOK)
}
