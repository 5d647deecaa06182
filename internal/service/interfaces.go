package service

import (
	"context"

	"github.com/MKhiriev/ilm-med/models"
)

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	IssueToken(ctx context.Context, claims models.Claims) (models.Token, error)
	// VerifyToken returns ErrTokenIsExpired past the validity window and
	// ErrTokenIsInvalid for any other failure.
	VerifyToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// Register returns the "user already exists" sentinel, not an error, for
	// a duplicate email.
	Register(ctx context.Context, user models.User) (models.InsertResult, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error)
	// IsAdmin and IsActive report false for an unknown email.
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsActive(ctx context.Context, email string) (bool, error)
	ChangeRole(ctx context.Context, id, role string) (models.UpdateResult, error)
	ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error)
}

type TestService interface {
	ListTests(ctx context.Context) ([]models.DiagnosticTest, error)
	GetTest(ctx context.Context, id string) (*models.DiagnosticTest, error)
	CreateTest(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error)
	UpdateTest(ctx context.Context, id string, update models.DiagnosticTestUpdate) (models.UpdateResult, error)
	DeleteTest(ctx context.Context, id string) (models.DeleteResult, error)
}

type BannerService interface {
	ListBanners(ctx context.Context) ([]models.Banner, error)
	GetActiveBanner(ctx context.Context) (*models.Banner, error)
	CreateBanner(ctx context.Context, banner models.Banner) (models.InsertResult, error)
	ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error)
	DeactivateAll(ctx context.Context) (models.UpdateResult, error)
	DeleteBanner(ctx context.Context, id string) (models.DeleteResult, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error)
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
}

type ReferenceService interface {
	Divisions(ctx context.Context) ([]models.Division, error)
	Districts(ctx context.Context) ([]models.District, error)
	Promotions(ctx context.Context) ([]models.Promotion, error)
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}

// PaymentService converts a price to minor currency units and requests a
// payment intent for it.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (models.PaymentIntent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
