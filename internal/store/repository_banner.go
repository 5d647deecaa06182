package store

import (
	"context"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// bannerRepository is the MongoDB-backed implementation of
// [BannerRepository] over the "allBanners" collection.
type bannerRepository struct {
	logger  *logger.Logger
	banners *mongo.Collection
}

func NewBannerRepository(db *DB, logger *logger.Logger) BannerRepository {
	logger.Debug().Msg("creating banner repository")
	return &bannerRepository{
		banners: db.Collection(bannersCollection),
		logger:  logger,
	}
}

func (r *bannerRepository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := findAll[models.Banner](ctx, r.banners, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.ListBanners").Msg("error listing banners")
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) FindActiveBanner(ctx context.Context) (*models.Banner, error) {
	banner, err := findOne[models.Banner](ctx, r.banners, bson.M{"status": models.BannerStatusActive})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.FindActiveBanner").Msg("error finding active banner")
		return nil, err
	}
	return banner, nil
}

func (r *bannerRepository) CreateBanner(ctx context.Context, banner models.Banner) (models.InsertResult, error) {
	res, err := r.banners.InsertOne(ctx, banner)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.CreateBanner").Msg("error inserting banner")
		return models.InsertResult{}, writeError(r.banners, err)
	}
	return insertResult(res), nil
}

func (r *bannerRepository) SetBannerStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	res, err := r.banners.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.SetBannerStatus").Msg("error updating banner")
		return models.UpdateResult{}, writeError(r.banners, err)
	}
	return updateResult(res), nil
}

func (r *bannerRepository) DeactivateAllBanners(ctx context.Context) (models.UpdateResult, error) {
	res, err := r.banners.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"status": models.BannerStatusBlock}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.DeactivateAllBanners").Msg("error deactivating banners")
		return models.UpdateResult{}, writeError(r.banners, err)
	}
	return updateResult(res), nil
}

func (r *bannerRepository) DeleteBanner(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := r.banners.DeleteOne(ctx, byID(id))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannerRepository.DeleteBanner").Msg("error deleting banner")
		return models.DeleteResult{}, writeError(r.banners, err)
	}
	return deleteResult(res), nil
}
