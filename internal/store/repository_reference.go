package store

import (
	"context"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// referenceRepository reads the lookup collections that are maintained
// outside of the API.
type referenceRepository struct {
	logger          *logger.Logger
	divisions       *mongo.Collection
	districts       *mongo.Collection
	promotions      *mongo.Collection
	recommendations *mongo.Collection
}

func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		divisions:       db.Collection(divisionsCollection),
		districts:       db.Collection(districtsCollection),
		promotions:      db.Collection(promotionsCollection),
		recommendations: db.Collection(recommendationsCollection),
		logger:          logger,
	}
}

func (r *referenceRepository) ListDivisions(ctx context.Context) ([]models.Division, error) {
	return listReference[models.Division](ctx, r.divisions)
}

func (r *referenceRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	return listReference[models.District](ctx, r.districts)
}

func (r *referenceRepository) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	return listReference[models.Promotion](ctx, r.promotions)
}

func (r *referenceRepository) ListRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	return listReference[models.Recommendation](ctx, r.recommendations)
}

func listReference[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	items, err := findAll[T](ctx, coll, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listReference").Str("collection", coll.Name()).Msg("error listing reference data")
		return nil, err
	}
	return items, nil
}
