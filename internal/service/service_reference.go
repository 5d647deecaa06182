package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
)

// referenceService serves the read-only lookup lists.
type referenceService struct {
	referenceRepository store.ReferenceRepository

	logger *logger.Logger
}

func NewReferenceService(referenceRepository store.ReferenceRepository, logger *logger.Logger) ReferenceService {
	return &referenceService{referenceRepository: referenceRepository, logger: logger}
}

func (s *referenceService) Divisions(ctx context.Context) ([]models.Division, error) {
	items, err := s.referenceRepository.ListDivisions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing divisions: %w", err)
	}
	return items, nil
}

func (s *referenceService) Districts(ctx context.Context) ([]models.District, error) {
	items, err := s.referenceRepository.ListDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing districts: %w", err)
	}
	return items, nil
}

func (s *referenceService) Promotions(ctx context.Context) ([]models.Promotion, error) {
	items, err := s.referenceRepository.ListPromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing promotions: %w", err)
	}
	return items, nil
}

func (s *referenceService) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	items, err := s.referenceRepository.ListRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	return items, nil
}
