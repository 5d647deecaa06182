package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingService struct {
	bookingRepository store.BookingRepository

	logger *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, logger *logger.Logger) BookingService {
	return &bookingService{bookingRepository: bookingRepository, logger: logger}
}

// CreateBooking stores a booking. The caller is responsible for matching
// booking.Email against the authenticated identity.
func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error) {
	if booking.Email == "" {
		return models.InsertResult{}, ErrEmptyEmail
	}
	booking.ID = primitive.NilObjectID

	res, err := s.bookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.CreateBooking").Str("email", booking.Email).Msg("booking creation failed")
		return models.InsertResult{}, fmt.Errorf("creating booking: %w", err)
	}
	return res, nil
}

func (s *bookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}

	bookings, err := s.bookingRepository.ListBookingsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	return bookings, nil
}
