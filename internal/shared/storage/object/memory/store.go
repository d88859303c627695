package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"briefbot-backend/internal/shared/storage/object"
)

// Store is an in-memory ObjectStore for development and tests.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Upload stores a copy of the payload under the key.
func (s *Store) Upload(ctx context.Context, data []byte, key string, contentType string) (object.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return object.UploadResult{}, err
	}
	_ = contentType

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.data[key] = buf
	s.mu.Unlock()

	url, err := s.SignedURL(ctx, key, object.DefaultSignedURLExpiry)
	if err != nil {
		return object.UploadResult{}, err
	}
	return object.UploadResult{Key: key, URL: url}, nil
}

// Download returns a copy of the stored payload.
func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("download key=%s: %w", key, object.ErrNotFound)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the key if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// SignedURL returns a fake time-limited URL. Only the shape matters in tests.
func (s *Store) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = object.DefaultSignedURLExpiry
	}
	expires := time.Now().UTC().Add(expiry).Unix()
	return fmt.Sprintf("memory://%s?expires=%d", key, expires), nil
}

// Len reports the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var _ object.ObjectStore = (*Store)(nil)
