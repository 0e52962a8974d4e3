package storage

import (
	"context"
	"io"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// BlobStorage defines the interface for object storage operations. Uploaded
// video bytes live behind this interface, keyed by object key.
type BlobStorage interface {
	// Upload writes an object. The metadata record referencing objectKey
	// must only be created after Upload returns without error.
	Upload(ctx context.Context, objectKey string, contentType string, size int64, body io.Reader) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
