package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("R2_ENDPOINT_URL", "https://acct.r2.cloudflarestorage.com")
	t.Setenv("R2_ACCESS_KEY_ID", "key-id")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "images")
	t.Setenv("R2_PUBLIC_DOMAIN", "images.example.com")
	t.Setenv("FLUX_API_KEY", "flux-key")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://acct.r2.cloudflarestorage.com", cfg.StorageEndpoint)
	assert.Equal(t, "key-id", cfg.StorageAccessKey)
	assert.Equal(t, "secret", cfg.StorageSecretKey)
	assert.Equal(t, "images", cfg.StorageBucket)
	assert.Equal(t, "images.example.com", cfg.StoragePublicDomain)
	assert.Equal(t, "flux-key", cfg.FluxAPIKey)
}

func TestLoad_MissingRequiredVarsDoNotCrash(t *testing.T) {
	t.Setenv("R2_BUCKET_NAME", "")
	t.Setenv("FLUX_API_KEY", "")

	cfg := Load()

	// Absence is surfaced by the collaborators at first use, not here.
	assert.Empty(t, cfg.StorageBucket)
	assert.Empty(t, cfg.FluxAPIKey)
	assert.Equal(t, "development", cfg.AppEnv)
}
