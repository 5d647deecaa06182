package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/mock"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestBannerSvc(t *testing.T) (BannerService, *mock.MockBannerRepository) {
	t.Helper()
	repo := mock.NewMockBannerRepository(gomock.NewController(t))
	return NewBannerService(repo, logger.Nop()), repo
}

func TestBannerService_CreateBanner(t *testing.T) {
	svc, repo := newTestBannerSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateBanner(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Banner) (models.InsertResult, error) {
			assert.Equal(t, models.BannerStatusBlock, b.Status)
			return models.InsertResult{Acknowledged: true}, nil
		},
	)

	_, err := svc.CreateBanner(ctx, models.Banner{Title: "Spring"})
	require.NoError(t, err)

	_, err = svc.CreateBanner(ctx, models.Banner{Title: "Spring", Status: "hidden"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBannerService_ChangeStatus(t *testing.T) {
	svc, repo := newTestBannerSvc(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.EXPECT().SetBannerStatus(ctx, id, models.BannerStatusActive).Return(models.UpdateResult{Acknowledged: true, ModifiedCount: 1}, nil)

	res, err := svc.ChangeStatus(ctx, id.Hex(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	_, err = svc.ChangeStatus(ctx, id.Hex(), "paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.ChangeStatus(ctx, "zz", models.BannerStatusBlock)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestBannerService_DeactivateAll(t *testing.T) {
	svc, repo := newTestBannerSvc(t)
	ctx := context.Background()

	repo.EXPECT().DeactivateAllBanners(ctx).Times(1).Return(models.UpdateResult{Acknowledged: true, MatchedCount: 4, ModifiedCount: 1}, nil)

	res, err := svc.DeactivateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.MatchedCount)
}

func TestBannerService_GetActiveBanner_None(t *testing.T) {
	svc, repo := newTestBannerSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindActiveBanner(ctx).Return(nil, nil)

	banner, err := svc.GetActiveBanner(ctx)
	require.NoError(t, err)
	assert.Nil(t, banner)
}

func TestBannerService_DeleteBanner(t *testing.T) {
	svc, repo := newTestBannerSvc(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.EXPECT().DeleteBanner(ctx, id).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	res, err := svc.DeleteBanner(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}
