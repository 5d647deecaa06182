package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.services.BannerService.ListBanners(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, banners, http.StatusOK)
}

// activeBanner answers the active banner or null.
func (h *Handler) activeBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.services.BannerService.GetActiveBanner(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, banner, http.StatusOK)
}

func (h *Handler) createBanner(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	if err := decodeJSON(r, &banner, false); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.BannerService.CreateBanner(r.Context(), banner)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) changeBannerStatus(w http.ResponseWriter, r *http.Request) {
	var change models.StatusChange
	if err := decodeJSON(r, &change, true); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.BannerService.ChangeStatus(r.Context(), chi.URLParam(r, "id"), change.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) deactivateBanners(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.BannerService.DeactivateAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) deleteBanner(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.BannerService.DeleteBanner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
