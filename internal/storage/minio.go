package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/fluxgen/service/internal/apperr"
	"github.com/fluxgen/service/internal/config"
)

// Uploader decodes base64 image payloads and puts them into the configured
// bucket. The underlying minio client is created lazily on the first upload
// so that missing storage configuration fails that request with a
// configuration error instead of crashing the process at startup. Once
// created, the client is shared by all requests.
type Uploader struct {
	cfg *config.Config
	now func() time.Time

	mu     sync.Mutex
	client ObjectPutter
}

// NewUploader creates an Uploader. It never fails: configuration is
// checked at first use.
func NewUploader(cfg *config.Config) *Uploader {
	return &Uploader{cfg: cfg, now: time.Now}
}

// Save decodes imageData (base64 PNG), uploads it under a timestamped key,
// and returns the public URL the object is served at.
func (u *Uploader) Save(ctx context.Context, imageData string) (string, error) {
	if u.cfg.StorageBucket == "" {
		return "", apperr.Configuration("R2_BUCKET_NAME environment variable not set")
	}
	if u.cfg.StoragePublicDomain == "" {
		return "", apperr.Configuration("R2_PUBLIC_DOMAIN environment variable not set")
	}

	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return "", apperr.Decoding("invalid base64 image data", err)
	}

	client, err := u.putter()
	if err != nil {
		return "", err
	}

	key := objectKey(u.now())
	_, err = client.PutObject(ctx, u.cfg.StorageBucket, key, bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "image/png"})
	if err != nil {
		return "", apperr.Storage("image upload failed", fmt.Errorf("put object %q: %w", key, err))
	}

	return u.publicURL(key), nil
}

// publicURL returns the browser-accessible URL for the given key,
// e.g. "https://images.example.com/generated_image_1756200000.png".
func (u *Uploader) publicURL(key string) string {
	return "https://" + strings.TrimRight(u.cfg.StoragePublicDomain, "/") + "/" + key
}

// putter returns the shared minio client, creating it on first call.
func (u *Uploader) putter() (ObjectPutter, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.client != nil {
		return u.client, nil
	}

	if u.cfg.StorageEndpoint == "" {
		return nil, apperr.Configuration("R2_ENDPOINT_URL environment variable not set")
	}
	if u.cfg.StorageAccessKey == "" || u.cfg.StorageSecretKey == "" {
		return nil, apperr.Configuration("R2 storage credentials not set")
	}

	endpoint, err := url.Parse(u.cfg.StorageEndpoint)
	if err != nil || endpoint.Host == "" {
		return nil, apperr.Configuration("R2_ENDPOINT_URL is not a valid URL")
	}

	client, err := minio.New(endpoint.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(u.cfg.StorageAccessKey, u.cfg.StorageSecretKey, ""),
		Secure: endpoint.Scheme == "https",
	})
	if err != nil {
		return nil, apperr.Storage("object storage client init failed", err)
	}

	log.Info().Str("endpoint", endpoint.Host).Str("bucket", u.cfg.StorageBucket).Msg("storage client ready")
	u.client = client
	return client, nil
}
