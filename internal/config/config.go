// Package config loads application configuration from environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration for the service.
//
// The R2/Flux fields carry no defaults and are not validated here: each
// collaborator checks the fields it needs when first used and fails that
// request with a configuration error, so a misconfigured deployment stays
// up and reports what is missing instead of crashing at boot.
type Config struct {
	Port   string
	AppEnv string

	// Object storage (S3-compatible: Cloudflare R2 in production, MinIO locally)
	StorageEndpoint     string // endpoint URL, e.g. "https://<account>.r2.cloudflarestorage.com"
	StorageAccessKey    string
	StorageSecretKey    string
	StorageBucket       string
	StoragePublicDomain string // hostname serving bucket objects publicly, e.g. "images.example.com"

	// Image generation API
	FluxAPIKey string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageEndpoint:     os.Getenv("R2_ENDPOINT_URL"),
		StorageAccessKey:    os.Getenv("R2_ACCESS_KEY_ID"),
		StorageSecretKey:    os.Getenv("R2_SECRET_ACCESS_KEY"),
		StorageBucket:       os.Getenv("R2_BUCKET_NAME"),
		StoragePublicDomain: os.Getenv("R2_PUBLIC_DOMAIN"),

		FluxAPIKey: os.Getenv("FLUX_API_KEY"),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
