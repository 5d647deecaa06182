package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
)

// createPaymentIntent answers {"clientSecret": ...}; provider failures
// become a 500 with a generic message.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	intent, err := h.services.PaymentService.CreatePaymentIntent(r.Context(), req.Price)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PaymentIntent{ClientSecret: intent.ClientSecret}, http.StatusOK)
}
