package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `
id, user_id, original_name, mime_type, size_bytes, storage_key, status,
extracted_text, language, confidence, document_type, metadata, error_message,
created_at, updated_at, processing_started_at, processing_completed_at`

// Create inserts a new document in PENDING state.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
	id, user_id, original_name, mime_type, size_bytes, storage_key, status, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.OriginalName,
		doc.MimeType,
		doc.SizeBytes,
		doc.StorageKey,
		doc.Status,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// GetByID returns a document by ID, regardless of owner.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, documentID)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// ListByUser returns a page of the user's documents newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// MarkProcessing claims a PENDING document. The status predicate makes the
// transition atomic; a concurrent claimer sees zero rows affected.
func (r *PGRepo) MarkProcessing(ctx context.Context, documentID string, startedAt time.Time) (bool, error) {
	const query = `
UPDATE documents
SET status = 'PROCESSING',
    processing_started_at = $2,
    updated_at = now()
WHERE id = $1 AND status = 'PENDING'`
	res, err := r.DB.ExecContext(ctx, query, documentID, startedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// MarkCompleted stores the extraction result and moves to COMPLETED.
func (r *PGRepo) MarkCompleted(ctx context.Context, documentID string, update ExtractionUpdate) error {
	const query = `
UPDATE documents
SET status = 'COMPLETED',
    extracted_text = $2,
    language = $3,
    confidence = $4,
    document_type = $5,
    metadata = $6,
    error_message = NULL,
    processing_completed_at = $7,
    updated_at = now()
WHERE id = $1`
	payload, err := json.Marshal(update.Metadata)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		documentID,
		update.Text,
		update.Language,
		update.Confidence,
		update.DocumentType,
		payload,
		update.CompletedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed stores the failure reason and moves to FAILED.
func (r *PGRepo) MarkFailed(ctx context.Context, documentID string, message string, completedAt time.Time) error {
	const query = `
UPDATE documents
SET status = 'FAILED',
    error_message = $2,
    processing_completed_at = $3,
    updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, documentID, message, completedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTranslations returns stored translations for a document.
func (r *PGRepo) ListTranslations(ctx context.Context, documentID string) ([]Translation, error) {
	const query = `
SELECT id, target_language, translated_text
FROM translations
WHERE document_id = $1
ORDER BY target_language`
	rows, err := r.DB.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := []Translation{}
	for rows.Next() {
		var t Translation
		if err := rows.Scan(&t.ID, &t.TargetLanguage, &t.TranslatedText); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var extractedText sql.NullString
	var language sql.NullString
	var confidence sql.NullFloat64
	var documentType sql.NullString
	var metadata sql.NullString
	var errorMessage sql.NullString
	var startedAt sql.NullTime
	var completedAt sql.NullTime
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.OriginalName,
		&doc.MimeType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.Status,
		&extractedText,
		&language,
		&confidence,
		&documentType,
		&metadata,
		&errorMessage,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&startedAt,
		&completedAt,
	)
	if err != nil {
		return Document{}, err
	}
	if extractedText.Valid {
		doc.ExtractedText = &extractedText.String
	}
	if language.Valid {
		doc.Language = &language.String
	}
	if confidence.Valid {
		doc.Confidence = &confidence.Float64
	}
	if documentType.Valid {
		doc.DocumentType = &documentType.String
	}
	if metadata.Valid {
		var meta Metadata
		if err := json.Unmarshal([]byte(metadata.String), &meta); err == nil {
			doc.Metadata = &meta
		}
	}
	if errorMessage.Valid {
		doc.ErrorMessage = &errorMessage.String
	}
	if startedAt.Valid {
		doc.ProcessingStartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		doc.ProcessingCompletedAt = &completedAt.Time
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
