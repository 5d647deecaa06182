package store

import (
	"context"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingRepository struct {
	logger   *logger.Logger
	bookings *mongo.Collection
}

func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		bookings: db.Collection(bookingsCollection),
		logger:   logger,
	}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error) {
	res, err := r.bookings.InsertOne(ctx, booking)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error inserting booking")
		return models.InsertResult{}, writeError(r.bookings, err)
	}
	return insertResult(res), nil
}

func (r *bookingRepository) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := findAll[models.Booking](ctx, r.bookings, bson.M{"email": email})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.ListBookingsByEmail").Msg("error listing bookings")
		return nil, err
	}
	return bookings, nil
}
