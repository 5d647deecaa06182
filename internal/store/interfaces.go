package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository persists user accounts in the allUsers collection.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns nil without error when the id is unknown.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// CreateUser returns ErrUserAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	UpsertUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.UpdateResult, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	SetUserStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
}

// TestRepository persists the diagnostic test catalog (allTests).
type TestRepository interface {
	ListTests(ctx context.Context) ([]models.DiagnosticTest, error)
	// FindTestByID returns nil without error when the id is unknown.
	FindTestByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticTest, error)
	CreateTest(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error)
	UpsertTest(ctx context.Context, id primitive.ObjectID, update models.DiagnosticTestUpdate) (models.UpdateResult, error)
	DeleteTest(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// BannerRepository persists promotional banners (allBanners).
type BannerRepository interface {
	ListBanners(ctx context.Context) ([]models.Banner, error)
	// FindActiveBanner returns nil without error when no banner is active.
	FindActiveBanner(ctx context.Context) (*models.Banner, error)
	CreateBanner(ctx context.Context, banner models.Banner) (models.InsertResult, error)
	SetBannerStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
	// DeactivateAllBanners sets status "block" on every banner in one update.
	DeactivateAllBanners(ctx context.Context) (models.UpdateResult, error)
	DeleteBanner(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// BookingRepository persists test bookings (allBookings).
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

// ReferenceRepository reads the static lookup lists.
type ReferenceRepository interface {
	ListDivisions(ctx context.Context) ([]models.Division, error)
	ListDistricts(ctx context.Context) ([]models.District, error)
	ListPromotions(ctx context.Context) ([]models.Promotion, error)
	ListRecommendations(ctx context.Context) ([]models.Recommendation, error)
}

// RoleCache keeps recently resolved user roles and statuses keyed by email.
type RoleCache interface {
	// GetUser returns ErrCacheMiss when nothing is cached for the email.
	GetUser(ctx context.Context, email string) (models.User, error)
	// SetUser does not overwrite an existing entry, and a write arriving
	// shortly after Invalidate for the same email is discarded.
	SetUser(ctx context.Context, user models.User, ttl time.Duration) error
	Invalidate(ctx context.Context, email string) error
}
