package documents

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo implements Repo in memory for tests and local development.
type MemoryRepo struct {
	mu           sync.Mutex
	docs         map[string]Document
	translations map[string][]Translation
}

// NewMemoryRepo constructs an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		docs:         make(map[string]Document),
		translations: make(map[string][]Translation),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = cloneDocument(doc)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[documentID]
	if !ok {
		return Document{}, ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := []Document{}
	for _, doc := range r.docs {
		if doc.UserID == userID {
			docs = append(docs, cloneDocument(doc))
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if offset > 0 {
		if offset >= len(docs) {
			return []Document{}, nil
		}
		docs = docs[offset:]
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}

// MarkProcessing claims a PENDING document. The check and write share one
// critical section so concurrent claimers cannot both win.
func (r *MemoryRepo) MarkProcessing(ctx context.Context, documentID string, startedAt time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[documentID]
	if !ok || doc.Status != StatusPending {
		return false, nil
	}
	started := startedAt
	doc.Status = StatusProcessing
	doc.ProcessingStartedAt = &started
	doc.UpdatedAt = time.Now()
	r.docs[documentID] = doc
	return true, nil
}

func (r *MemoryRepo) MarkCompleted(ctx context.Context, documentID string, update ExtractionUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[documentID]
	if !ok {
		return ErrNotFound
	}
	text := update.Text
	language := update.Language
	confidence := update.Confidence
	documentType := update.DocumentType
	meta := update.Metadata
	completed := update.CompletedAt
	doc.Status = StatusCompleted
	doc.ExtractedText = &text
	doc.Language = &language
	doc.Confidence = &confidence
	doc.DocumentType = &documentType
	doc.Metadata = &meta
	doc.ErrorMessage = nil
	doc.ProcessingCompletedAt = &completed
	doc.UpdatedAt = time.Now()
	r.docs[documentID] = doc
	return nil
}

func (r *MemoryRepo) MarkFailed(ctx context.Context, documentID string, message string, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[documentID]
	if !ok {
		return ErrNotFound
	}
	msg := message
	completed := completedAt
	doc.Status = StatusFailed
	doc.ErrorMessage = &msg
	doc.ProcessingCompletedAt = &completed
	doc.UpdatedAt = time.Now()
	r.docs[documentID] = doc
	return nil
}

func (r *MemoryRepo) ListTranslations(ctx context.Context, documentID string) ([]Translation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	translations := []Translation{}
	translations = append(translations, r.translations[documentID]...)
	return translations, nil
}

// AddTranslation seeds a stored translation. Used by tests.
func (r *MemoryRepo) AddTranslation(documentID string, t Translation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.translations[documentID] = append(r.translations[documentID], t)
}

func cloneDocument(doc Document) Document {
	out := doc
	if doc.ExtractedText != nil {
		v := *doc.ExtractedText
		out.ExtractedText = &v
	}
	if doc.Language != nil {
		v := *doc.Language
		out.Language = &v
	}
	if doc.Confidence != nil {
		v := *doc.Confidence
		out.Confidence = &v
	}
	if doc.DocumentType != nil {
		v := *doc.DocumentType
		out.DocumentType = &v
	}
	if doc.Metadata != nil {
		v := *doc.Metadata
		out.Metadata = &v
	}
	if doc.ErrorMessage != nil {
		v := *doc.ErrorMessage
		out.ErrorMessage = &v
	}
	if doc.ProcessingStartedAt != nil {
		v := *doc.ProcessingStartedAt
		out.ProcessingStartedAt = &v
	}
	if doc.ProcessingCompletedAt != nil {
		v := *doc.ProcessingCompletedAt
		out.ProcessingCompletedAt = &v
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
