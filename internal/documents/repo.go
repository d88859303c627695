package documents

import (
	"context"
	"time"
)

// ExtractionUpdate carries the fields persisted when processing completes.
type ExtractionUpdate struct {
	Text         string
	Language     string
	Confidence   float64
	DocumentType string
	Metadata     Metadata
	CompletedAt  time.Time
}

// Repo persists documents and their translations.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	// GetByID fetches regardless of owner; callers enforce ownership.
	GetByID(ctx context.Context, documentID string) (Document, error)
	// ListByUser returns a page of the user's documents newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error)
	// MarkProcessing transitions PENDING to PROCESSING in a single guarded
	// write. It returns false without error when the document was not in
	// PENDING, so exactly one of any concurrent callers wins.
	MarkProcessing(ctx context.Context, documentID string, startedAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, documentID string, update ExtractionUpdate) error
	MarkFailed(ctx context.Context, documentID string, message string, completedAt time.Time) error
	ListTranslations(ctx context.Context, documentID string) ([]Translation, error)
}
