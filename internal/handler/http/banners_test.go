package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/ilm-med/internal/service"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bannerID = "652f1b2c9d1e4a0012350001"

func TestListBanners_Public(t *testing.T) {
	svcs := newTestServices()
	svcs.BannerService = &fakeBannerService{
		list: func(context.Context) ([]models.Banner, error) {
			return []models.Banner{{Title: "Spring", Status: "active"}, {Title: "Winter", Status: "block"}}, nil
		},
	}

	rr := do(t, newTestRouter(svcs), http.MethodGet, "/allBanners", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Banner](t, rr), 2)
}

func TestActiveBanner(t *testing.T) {
	tests := []struct {
		name     string
		banner   *models.Banner
		wantNull bool
	}{
		{name: "one active", banner: &models.Banner{Title: "Spring", Status: "active"}},
		{name: "none active", banner: nil, wantNull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.BannerService = &fakeBannerService{
				active: func(context.Context) (*models.Banner, error) { return tt.banner, nil },
			}

			rr := do(t, newTestRouter(svcs), http.MethodGet, "/allBanners/active", "", "")

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantNull {
				assert.Equal(t, "null", rr.Body.String())
				return
			}
			assert.Equal(t, "Spring", decodeBody[models.Banner](t, rr).Title)
		})
	}
}

func TestCreateBanner_Admin(t *testing.T) {
	svcs := newTestServices()
	var got models.Banner
	svcs.BannerService = &fakeBannerService{
		create: func(_ context.Context, b models.Banner) (models.InsertResult, error) {
			got = b
			return models.InsertResult{Acknowledged: true, InsertedID: bannerID}, nil
		},
	}

	rr := do(t, newTestRouter(svcs), http.MethodPost, "/allBanners", "admin-token", `{"title":"Spring","couponCode":"SPRING10","couponRate":10}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "SPRING10", got.CouponCode)
	assert.Equal(t, 10.0, got.CouponRate)
}

func TestChangeBannerStatus_Admin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus string
		wantCode   int
	}{
		{name: "activate", body: `{"status":"active"}`, wantStatus: "active", wantCode: http.StatusOK},
		{name: "empty body", body: "", wantStatus: "", wantCode: http.StatusOK},
		{name: "unknown status", body: `{"status":"paused"}`, wantStatus: "paused", err: service.ErrInvalidStatus, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			var gotStatus string
			svcs.BannerService = &fakeBannerService{
				changeStatus: func(_ context.Context, id, status string) (models.UpdateResult, error) {
					gotStatus = status
					return models.UpdateResult{Acknowledged: true, MatchedCount: 1}, tt.err
				},
			}

			rr := do(t, newTestRouter(svcs), http.MethodPatch, "/allBanners/"+bannerID, "admin-token", tt.body)

			assert.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}

func TestDeactivateBanners_Admin(t *testing.T) {
	svcs := newTestServices()
	svcs.BannerService = &fakeBannerService{
		deactivateAll: func(context.Context) (models.UpdateResult, error) {
			return models.UpdateResult{Acknowledged: true, MatchedCount: 3, ModifiedCount: 1}, nil
		},
	}

	rr := do(t, newTestRouter(svcs), http.MethodPatch, "/deactivatedBanners", "admin-token", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decodeBody[models.UpdateResult](t, rr).ModifiedCount)
}

func TestDeleteBanner_Admin(t *testing.T) {
	svcs := newTestServices()
	svcs.BannerService = &fakeBannerService{
		delete: func(_ context.Context, id string) (models.DeleteResult, error) {
			assert.Equal(t, bannerID, id)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		},
	}

	rr := do(t, newTestRouter(svcs), http.MethodDelete, "/allBanners/"+bannerID, "admin-token", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
