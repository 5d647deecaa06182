package store

import "github.com/MKhiriev/ilm-med/internal/logger"

// Storages aggregates every repository built over one store handle.
// RoleCache is nil when no cache is configured.
type Storages struct {
	UserRepository      UserRepository
	TestRepository      TestRepository
	BannerRepository    BannerRepository
	BookingRepository   BookingRepository
	ReferenceRepository ReferenceRepository
	RoleCache           RoleCache
}

// NewStorages wires all repositories to db. cache may be nil.
func NewStorages(db *DB, cache RoleCache, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		TestRepository:      NewTestRepository(db, logger),
		BannerRepository:    NewBannerRepository(db, logger),
		BookingRepository:   NewBookingRepository(db, logger),
		ReferenceRepository: NewReferenceRepository(db, logger),
		RoleCache:           cache,
	}
}
