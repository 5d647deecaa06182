package store

import (
	"context"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testRepository is the MongoDB-backed implementation of [TestRepository]
// over the "allTests" collection.
type testRepository struct {
	logger *logger.Logger
	tests  *mongo.Collection
}

func NewTestRepository(db *DB, logger *logger.Logger) TestRepository {
	logger.Debug().Msg("creating test repository")
	return &testRepository{
		tests:  db.Collection(testsCollection),
		logger: logger,
	}
}

func (r *testRepository) ListTests(ctx context.Context) ([]models.DiagnosticTest, error) {
	tests, err := findAll[models.DiagnosticTest](ctx, r.tests, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.ListTests").Msg("error listing tests")
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) FindTestByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticTest, error) {
	test, err := findOne[models.DiagnosticTest](ctx, r.tests, byID(id))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.FindTestByID").Msg("error finding test")
		return nil, err
	}
	return test, nil
}

func (r *testRepository) CreateTest(ctx context.Context, test models.DiagnosticTest) (models.InsertResult, error) {
	res, err := r.tests.InsertOne(ctx, test)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.CreateTest").Msg("error inserting test")
		return models.InsertResult{}, writeError(r.tests, err)
	}
	return insertResult(res), nil
}

// UpsertTest overwrites only the listed fields of the test; an unknown id
// creates a new document with that id.
func (r *testRepository) UpsertTest(ctx context.Context, id primitive.ObjectID, update models.DiagnosticTestUpdate) (models.UpdateResult, error) {
	res, err := r.tests.UpdateOne(ctx, byID(id), bson.M{"$set": update}, options.Update().SetUpsert(true))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.UpsertTest").Msg("error upserting test")
		return models.UpdateResult{}, writeError(r.tests, err)
	}
	return updateResult(res), nil
}

func (r *testRepository) DeleteTest(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := r.tests.DeleteOne(ctx, byID(id))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.DeleteTest").Msg("error deleting test")
		return models.DeleteResult{}, writeError(r.tests, err)
	}
	return deleteResult(res), nil
}
