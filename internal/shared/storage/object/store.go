package object

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a storage key does not exist.
var ErrNotFound = errors.New("object not found")

// DefaultSignedURLExpiry is the validity window for signed URLs.
const DefaultSignedURLExpiry = time.Hour

// UploadResult describes a stored object.
type UploadResult struct {
	Key string
	URL string
}

// ObjectStore defines the contract for storing and retrieving binary objects.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, key string, contentType string) (UploadResult, error)
	Download(ctx context.Context, key string) ([]byte, error)
	// Delete is idempotent: deleting a missing key succeeds silently.
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
