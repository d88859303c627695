package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"briefbot-backend/internal/ocr"
	"briefbot-backend/internal/shared/cache"
	"briefbot-backend/internal/shared/metrics"
	"briefbot-backend/internal/shared/storage/object"
	"briefbot-backend/internal/shared/telemetry"
	"briefbot-backend/internal/shared/util"
)

const (
	maxFileSize = 10 * 1024 * 1024

	detailCacheTTL = 5 * time.Minute
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Service coordinates document uploads, reads and processing.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	OCR   ocr.Service
	Cache cache.Cache

	SignedURLExpiry time.Duration
}

// UploadInput is a file received from a client.
type UploadInput struct {
	FileName string
	MimeType string
	Data     []byte
}

// Detail is a document with its translations and a fresh download URL.
type Detail struct {
	Document     Document      `json:"document"`
	Translations []Translation `json:"translations"`
	SignedURL    string        `json:"signedUrl,omitempty"`
}

// Upload validates the file, writes it to object storage and records a
// PENDING document. If the record insert fails the stored object is removed
// so no orphan bytes survive a failed upload.
func (s *Service) Upload(ctx context.Context, userID string, in UploadInput) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id is required")
	}
	if err := validateUpload(in); err != nil {
		return Document{}, err
	}

	sanitized, err := util.SanitizeFileName(in.FileName)
	if err != nil {
		return Document{}, &ValidationError{Message: err.Error()}
	}

	now := time.Now()
	doc := Document{
		ID:           uuid.NewString(),
		UserID:       userID,
		OriginalName: in.FileName,
		MimeType:     in.MimeType,
		SizeBytes:    int64(len(in.Data)),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	doc.StorageKey = fmt.Sprintf("%s/%s/%s", userID, doc.ID, sanitized)

	if _, err := s.Store.Upload(ctx, in.Data, doc.StorageKey, in.MimeType); err != nil {
		return Document{}, fmt.Errorf("store upload: %w", err)
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		// Best effort. An orphaned object is worse than a noisy log line.
		if delErr := s.Store.Delete(context.WithoutCancel(ctx), doc.StorageKey); delErr != nil {
			telemetry.Error("upload cleanup failed", map[string]any{
				"documentId": doc.ID,
				"storageKey": doc.StorageKey,
				"error":      delErr.Error(),
			})
		}
		return Document{}, fmt.Errorf("create document: %w", err)
	}

	metrics.IncUpload()
	telemetry.Info("document uploaded", map[string]any{
		"documentId": doc.ID,
		"userId":     userID,
		"mimeType":   doc.MimeType,
		"sizeBytes":  doc.SizeBytes,
	})
	return doc, nil
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns a page of the caller's documents newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Get returns a document detail for its owner. A document owned by someone
// else reads the same as one that does not exist.
func (s *Service) Get(ctx context.Context, userID string, documentID string) (Detail, error) {
	if userID == "" {
		return Detail{}, errors.New("user id is required")
	}

	if detail, ok := s.cachedDetail(ctx, documentID); ok {
		if detail.Document.UserID != userID {
			return Detail{}, ErrNotFound
		}
		return s.withSignedURL(ctx, detail), nil
	}

	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}
	if doc.UserID != userID {
		return Detail{}, ErrNotFound
	}

	translations, err := s.Repo.ListTranslations(ctx, documentID)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{Document: doc, Translations: translations}
	s.storeDetail(ctx, detail)
	return s.withSignedURL(ctx, detail), nil
}

func validateUpload(in UploadInput) error {
	if in.FileName == "" {
		return &ValidationError{Message: "Filename is required"}
	}
	if len(in.Data) == 0 {
		return &ValidationError{Message: "File is empty. Please select a valid file."}
	}
	if len(in.Data) > maxFileSize {
		return &ValidationError{Message: "File size must be less than 10MB"}
	}
	if !allowedMimeTypes[in.MimeType] {
		return &ValidationError{Message: "File type not supported. Please upload a JPEG, PNG, WebP, or PDF file."}
	}
	return nil
}

// withSignedURL attaches a fresh download URL. Stored URLs expire, so they
// are never cached or persisted.
func (s *Service) withSignedURL(ctx context.Context, detail Detail) Detail {
	expiry := s.SignedURLExpiry
	if expiry <= 0 {
		expiry = object.DefaultSignedURLExpiry
	}
	url, err := s.Store.SignedURL(ctx, detail.Document.StorageKey, expiry)
	if err != nil {
		telemetry.Error("signed url failed", map[string]any{
			"documentId": detail.Document.ID,
			"error":      err.Error(),
		})
		return detail
	}
	detail.SignedURL = url
	return detail
}

func detailCacheKey(documentID string) string {
	return "document:detail:" + documentID
}

func (s *Service) cachedDetail(ctx context.Context, documentID string) (Detail, bool) {
	if s.Cache == nil {
		return Detail{}, false
	}
	payload, err := s.Cache.Get(ctx, detailCacheKey(documentID))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			telemetry.Error("detail cache read failed", map[string]any{
				"documentId": documentID,
				"error":      err.Error(),
			})
		}
		return Detail{}, false
	}
	var detail Detail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return Detail{}, false
	}
	return detail, true
}

func (s *Service) storeDetail(ctx context.Context, detail Detail) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(Detail{Document: detail.Document, Translations: detail.Translations})
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, detailCacheKey(detail.Document.ID), payload, detailCacheTTL); err != nil {
		telemetry.Error("detail cache write failed", map[string]any{
			"documentId": detail.Document.ID,
			"error":      err.Error(),
		})
	}
}

// invalidateDetail drops any cached rendering after a status write.
func (s *Service) invalidateDetail(ctx context.Context, documentID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, detailCacheKey(documentID)); err != nil {
		telemetry.Error("detail cache invalidation failed", map[string]any{
			"documentId": documentID,
			"error":      err.Error(),
		})
	}
}
