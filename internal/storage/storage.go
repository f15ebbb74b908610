// Package storage persists generated images to an S3-compatible object
// store and derives their public URLs. The MinIO client works with any
// S3-compatible provider (Cloudflare R2 in production, MinIO locally).
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// ObjectPutter is the slice of the minio client the uploader needs.
// *minio.Client satisfies it; tests substitute a fake.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader,
		objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// objectKey derives the storage key for an image generated at ts.
// Second granularity: two images generated within the same second collide
// and the later upload overwrites the earlier one. Known limitation of the
// naming scheme, kept because the resulting URLs are part of the contract.
func objectKey(ts time.Time) string {
	return fmt.Sprintf("generated_image_%d.png", ts.Unix())
}
