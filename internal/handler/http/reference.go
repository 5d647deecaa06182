package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
)

func (h *Handler) listDivisions(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ReferenceService.Divisions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) listDistricts(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ReferenceService.Districts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) listPromotions(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ReferenceService.Promotions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) listRecommendations(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ReferenceService.Recommendations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}
