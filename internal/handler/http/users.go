package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

// registerUser answers a duplicate email with the "user already exists"
// sentinel and status 200.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user, false); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.UserService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if res.Message != "" {
		logger.FromRequest(r).Debug().Str("email", user.Email).Msg(res.Message)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := decodeJSON(r, &update, false); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.UserService.UpdateProfile(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// checkAdmin answers {"admin": bool} for the caller's own email.
func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !sameIdentity(r, email) {
		writeError(w, r, ErrIdentityMismatch)
		return
	}

	isAdmin, err := h.services.UserService.IsAdmin(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.AdminStatus{Admin: isAdmin}, http.StatusOK)
}

// checkActive answers {"active": bool} for the caller's own email.
func (h *Handler) checkActive(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !sameIdentity(r, email) {
		writeError(w, r, ErrIdentityMismatch)
		return
	}

	isActive, err := h.services.UserService.IsActive(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.ActiveStatus{Active: isActive}, http.StatusOK)
}

func (h *Handler) changeUserRole(w http.ResponseWriter, r *http.Request) {
	var change models.RoleChange
	if err := decodeJSON(r, &change, true); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.UserService.ChangeRole(r.Context(), chi.URLParam(r, "id"), change.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) changeUserStatus(w http.ResponseWriter, r *http.Request) {
	var change models.StatusChange
	if err := decodeJSON(r, &change, true); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.UserService.ChangeStatus(r.Context(), chi.URLParam(r, "id"), change.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
