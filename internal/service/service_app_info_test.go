package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_BuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), logger.Nop())

	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ConfigOverridesVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_FillsMissingValues(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", "deadbeef"), logger.Nop())

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "deadbeef", info.Commit)
}

func TestGetBuildInfo_IsStable(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "2.5.1"}, models.AppBuildInfo{}, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, svc.GetBuildInfo(ctx), svc.GetBuildInfo(ctx))
	assert.Equal(t, "2.5.1", svc.GetBuildInfo(ctx).Version)
}
