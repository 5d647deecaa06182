package http

import (
	"context"

	"github.com/MKhiriev/ilm-med/models"
)

// Function-field fakes. A nil field panics, which fails any test that
// reaches a service it did not expect to be called.

type fakeTokenService struct {
	issue  func(ctx context.Context, claims models.Claims) (models.Token, error)
	verify func(ctx context.Context, token string) (models.Claims, error)
}

func (f *fakeTokenService) IssueToken(ctx context.Context, claims models.Claims) (models.Token, error) {
	return f.issue(ctx, claims)
}

func (f *fakeTokenService) VerifyToken(ctx context.Context, token string) (models.Claims, error) {
	return f.verify(ctx, token)
}

type fakeUserService struct {
	list          func(ctx context.Context) ([]models.User, error)
	register      func(ctx context.Context, user models.User) (models.InsertResult, error)
	get           func(ctx context.Context, id string) (*models.User, error)
	updateProfile func(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error)
	isAdmin       func(ctx context.Context, email string) (bool, error)
	isActive      func(ctx context.Context, email string) (bool, error)
	changeRole    func(ctx context.Context, id, role string) (models.UpdateResult, error)
	changeStatus  func(ctx context.Context, id, status string) (models.UpdateResult, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.list(ctx)
}

func (f *fakeUserService) Register(ctx context.Context, user models.User) (models.InsertResult, error) {
	return f.register(ctx, user)
}

func (f *fakeUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return f.get(ctx, id)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	return f.updateProfile(ctx, id, update)
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.isAdmin(ctx, email)
}

func (f *fakeUserService) IsActive(ctx context.Context, email string) (bool, error) {
	return f.isActive(ctx, email)
}

func (f *fakeUserService) ChangeRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	return f.changeRole(ctx, id, role)
}

func (f *fakeUserService) ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	return f.changeStatus(ctx, id, status)
}

type fakeTestService struct {
	list   func(ctx context.Context) ([]models.DiagnosticTest, error)
	get    func(ctx context.Context, id string) (*models.DiagnosticTest, error)
	create func(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error)
	update func(ctx context.Context, id string, update models.DiagnosticTestUpdate) (models.UpdateResult, error)
	delete func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (f *fakeTestService) ListTests(ctx context.Context) ([]models.DiagnosticTest, error) {
	return f.list(ctx)
}

func (f *fakeTestService) GetTest(ctx context.Context, id string) (*models.DiagnosticTest, error) {
	return f.get(ctx, id)
}

func (f *fakeTestService) CreateTest(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error) {
	return f.create(ctx, test)
}

func (f *fakeTestService) UpdateTest(ctx context.Context, id string, update models.DiagnosticTestUpdate) (models.UpdateResult, error) {
	return f.update(ctx, id, update)
}

func (f *fakeTestService) DeleteTest(ctx context.Context, id string) (models.DeleteResult, error) {
	return f.delete(ctx, id)
}

type fakeBannerService struct {
	list          func(ctx context.Context) ([]models.Banner, error)
	active        func(ctx context.Context) (*models.Banner, error)
	create        func(ctx context.Context, banner models.Banner) (models.InsertResult, error)
	changeStatus  func(ctx context.Context, id, status string) (models.UpdateResult, error)
	deactivateAll func(ctx context.Context) (models.UpdateResult, error)
	delete        func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (f *fakeBannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return f.list(ctx)
}

func (f *fakeBannerService) GetActiveBanner(ctx context.Context) (*models.Banner, error) {
	return f.active(ctx)
}

func (f *fakeBannerService) CreateBanner(ctx context.Context, banner models.Banner) (models.InsertResult, error) {
	return f.create(ctx, banner)
}

func (f *fakeBannerService) ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	return f.changeStatus(ctx, id, status)
}

func (f *fakeBannerService) DeactivateAll(ctx context.Context) (models.UpdateResult, error) {
	return f.deactivateAll(ctx)
}

func (f *fakeBannerService) DeleteBanner(ctx context.Context, id string) (models.DeleteResult, error) {
	return f.delete(ctx, id)
}

type fakeBookingService struct {
	create func(ctx context.Context, booking models.Booking) (models.InsertResult, error)
	list   func(ctx context.Context, email string) ([]models.Booking, error)
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.InsertResult, error) {
	return f.create(ctx, booking)
}

func (f *fakeBookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return f.list(ctx, email)
}

type fakeReferenceService struct{}

func (fakeReferenceService) Divisions(context.Context) ([]models.Division, error) {
	return []models.Division{{Name: "Dhaka"}}, nil
}

func (fakeReferenceService) Districts(context.Context) ([]models.District, error) {
	return []models.District{{DivisionID: "1", Name: "Gazipur"}}, nil
}

func (fakeReferenceService) Promotions(context.Context) ([]models.Promotion, error) {
	return []models.Promotion{}, nil
}

func (fakeReferenceService) Recommendations(context.Context) ([]models.Recommendation, error) {
	return []models.Recommendation{}, nil
}

type fakePaymentService struct {
	create func(ctx context.Context, price float64) (models.PaymentIntent, error)
}

func (f *fakePaymentService) CreatePaymentIntent(ctx context.Context, price float64) (models.PaymentIntent, error) {
	return f.create(ctx, price)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{Version: f.version}
}
