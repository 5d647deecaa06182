package http

import (
	"net/http"

	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
)

// createBooking stores a booking for the caller. A missing booking email is
// taken from the token; a foreign one is rejected.
func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := decodeJSON(r, &booking, false); err != nil {
		writeError(w, r, err)
		return
	}

	if booking.Email == "" {
		claims, _ := utils.GetClaimsFromContext(r.Context())
		booking.Email = claims.Email
	}
	if !sameIdentity(r, booking.Email) {
		writeError(w, r, ErrIdentityMismatch)
		return
	}

	res, err := h.services.BookingService.CreateBooking(r.Context(), booking)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// listBookings answers the bookings of ?email=, which must be the caller's.
func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != "" && !sameIdentity(r, email) {
		writeError(w, r, ErrIdentityMismatch)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, bookings, http.StatusOK)
}
