package service

import (
	"github.com/MKhiriev/ilm-med/internal/adapter"
	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
)

type Services struct {
	TokenService     TokenService
	UserService      UserService
	TestService      TestService
	BannerService    BannerService
	BookingService   BookingService
	ReferenceService ReferenceService
	PaymentService   PaymentService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, gateway adapter.PaymentGateway, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		TokenService:     NewTokenService(cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, storages.RoleCache, cfg.Storage.Cache.TTL, logger),
		TestService:      NewTestService(storages.TestRepository, logger),
		BannerService:    NewBannerService(storages.BannerRepository, logger),
		BookingService:   NewBookingService(storages.BookingRepository, logger),
		ReferenceService: NewReferenceService(storages.ReferenceRepository, logger),
		PaymentService:   NewPaymentService(gateway, cfg.Adapter.Payment, logger),
		AppInfoService:   NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
