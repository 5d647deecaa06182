package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bannerService struct {
	bannerRepository store.BannerRepository

	logger *logger.Logger
}

func NewBannerService(bannerRepository store.BannerRepository, logger *logger.Logger) BannerService {
	return &bannerService{bannerRepository: bannerRepository, logger: logger}
}

func (s *bannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.bannerRepository.ListBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing banners: %w", err)
	}
	return banners, nil
}

func (s *bannerService) GetActiveBanner(ctx context.Context) (*models.Banner, error) {
	banner, err := s.bannerRepository.FindActiveBanner(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding active banner: %w", err)
	}
	return banner, nil
}

// CreateBanner stores a new banner. A banner without status starts blocked.
func (s *bannerService) CreateBanner(ctx context.Context, banner models.Banner) (models.InsertResult, error) {
	banner.ID = primitive.NilObjectID
	if banner.Status == "" {
		banner.Status = models.BannerStatusBlock
	}
	if !validBannerStatus(banner.Status) {
		return models.InsertResult{}, fmt.Errorf("%w: %q", ErrInvalidStatus, banner.Status)
	}

	res, err := s.bannerRepository.CreateBanner(ctx, banner)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("creating banner: %w", err)
	}
	return res, nil
}

// ChangeStatus sets the status of one banner. An empty status means active.
func (s *bannerService) ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	if status == "" {
		status = models.BannerStatusActive
	}
	if !validBannerStatus(status) {
		return models.UpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	res, err := s.bannerRepository.SetBannerStatus(ctx, oid, status)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("changing banner status: %w", err)
	}
	return res, nil
}

// DeactivateAll blocks every banner in a single update.
func (s *bannerService) DeactivateAll(ctx context.Context) (models.UpdateResult, error) {
	res, err := s.bannerRepository.DeactivateAllBanners(ctx)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("deactivating banners: %w", err)
	}
	return res, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.bannerRepository.DeleteBanner(ctx, oid)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("deleting banner: %w", err)
	}
	return res, nil
}

func validBannerStatus(status string) bool {
	return status == models.BannerStatusActive || status == models.BannerStatusBlock
}
