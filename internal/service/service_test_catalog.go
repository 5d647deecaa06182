package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testService manages the diagnostic test catalog.
type testService struct {
	testRepository store.TestRepository

	logger *logger.Logger
}

func NewTestService(testRepository store.TestRepository, logger *logger.Logger) TestService {
	return &testService{testRepository: testRepository, logger: logger}
}

func (s *testService) ListTests(ctx context.Context) ([]models.DiagnosticTest, error) {
	tests, err := s.testRepository.ListTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tests: %w", err)
	}
	return tests, nil
}

// GetTest returns nil without error for an unknown id.
func (s *testService) GetTest(ctx context.Context, id string) (*models.DiagnosticTest, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	test, err := s.testRepository.FindTestByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("finding test: %w", err)
	}
	return test, nil
}

func (s *testService) CreateTest(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error) {
	test.ID = primitive.NilObjectID

	res, err := s.testRepository.CreateTest(ctx, test)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("creating test: %w", err)
	}
	return res, nil
}

// UpdateTest overwrites only the listed fields. An unknown id creates a new
// test with that id.
func (s *testService) UpdateTest(ctx context.Context, id string, update models.DiagnosticTestUpdate) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if update == (models.DiagnosticTestUpdate{}) {
		return models.UpdateResult{}, ErrEmptyUpdate
	}

	res, err := s.testRepository.UpsertTest(ctx, oid, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("updating test: %w", err)
	}
	return res, nil
}

// DeleteTest reports DeletedCount 0 for an unknown id.
func (s *testService) DeleteTest(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.testRepository.DeleteTest(ctx, oid)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("deleting test: %w", err)
	}
	return res, nil
}
