package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.services.TestService.ListTests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, tests, http.StatusOK)
}

func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.services.TestService.GetTest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, test, http.StatusOK)
}

func (h *Handler) createTest(w http.ResponseWriter, r *http.Request) {
	var test models.DiagnosticTest
	if err := decodeJSON(r, &test, false); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.TestService.CreateTest(r.Context(), test)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) updateTest(w http.ResponseWriter, r *http.Request) {
	var update models.DiagnosticTestUpdate
	if err := decodeJSON(r, &update, false); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.TestService.UpdateTest(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) deleteTest(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.TestService.DeleteTest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
