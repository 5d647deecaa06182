// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",
		"DOTENV": "/path/to/.env",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_VERSION":        "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_ALLOWED_ORIGINS": "https://a.example,https://b.example",

		"STORAGE_DB_URI":             "mongodb://localhost:27017",
		"STORAGE_DB_NAME":            "ilmMedDB",
		"STORAGE_DB_CONNECT_TIMEOUT": "5s",
		"STORAGE_CACHE_ADDRESS":      "localhost:6379",
		"STORAGE_CACHE_DB":           "2",
		"STORAGE_CACHE_TTL":          "1m",

		"ADAPTER_PAYMENT_BASE_URL":        "https://payments.example",
		"ADAPTER_PAYMENT_SECRET_KEY":      "sk_test",
		"ADAPTER_PAYMENT_CURRENCY":        "usd",
		"ADAPTER_PAYMENT_REQUEST_TIMEOUT": "10s",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
	assert.Equal(t, "ilmMedDB", cfg.Storage.DB.Name)
	assert.Equal(t, 5*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.Address)
	assert.Equal(t, 2, cfg.Storage.Cache.DB)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)

	assert.Equal(t, "https://payments.example", cfg.Adapter.Payment.BaseURL)
	assert.Equal(t, "sk_test", cfg.Adapter.Payment.SecretKey)
	assert.Equal(t, "usd", cfg.Adapter.Payment.Currency)
	assert.Equal(t, 10*time.Second, cfg.Adapter.Payment.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "two hours")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_EmptyPath(t *testing.T) {
	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_ExportsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ILMMED_TEST_DOTENV_VAR=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ILMMED_TEST_DOTENV_VAR") })

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-file", os.Getenv("ILMMED_TEST_DOTENV_VAR"))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-file\n"), 0o600))
	t.Setenv("APP_TOKEN_ISSUER", "from-env")

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_ISSUER"))
}
