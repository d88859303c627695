package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"briefbot-backend/internal/shared/metrics"
	"briefbot-backend/internal/shared/telemetry"
)

// maxErrorMessageLen bounds the persisted failure reason.
const maxErrorMessageLen = 500

// ProcessOutcome reports how a processing run ended. A run that reaches a
// terminal FAILED state is an outcome, not an error; errors are reserved for
// requests that never started processing.
type ProcessOutcome struct {
	Document Document
	Failed   bool
	Reason   string
}

// Process runs the extraction pipeline for a PENDING document owned by the
// caller and blocks until it reaches COMPLETED or FAILED.
func (s *Service) Process(ctx context.Context, userID string, documentID string) (ProcessOutcome, error) {
	if userID == "" {
		return ProcessOutcome{}, errors.New("user id is required")
	}

	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ProcessOutcome{}, ErrNotFound
		}
		return ProcessOutcome{}, err
	}
	if doc.UserID != userID {
		return ProcessOutcome{}, ErrNotFound
	}
	if doc.Status != StatusPending {
		return ProcessOutcome{}, &InvalidStateError{Status: doc.Status}
	}

	startedAt := time.Now()
	claimed, err := s.Repo.MarkProcessing(ctx, documentID, startedAt)
	if err != nil {
		return ProcessOutcome{}, err
	}
	if !claimed {
		// Lost the claim between the read above and the guarded write.
		current, err := s.Repo.GetByID(ctx, documentID)
		if err != nil {
			return ProcessOutcome{}, &InvalidStateError{Status: StatusProcessing}
		}
		return ProcessOutcome{}, &InvalidStateError{Status: current.Status}
	}
	s.invalidateDetail(ctx, documentID)
	metrics.IncProcessingStarted()
	logStatusTransition(documentID, StatusPending, StatusProcessing)

	data, err := s.Store.Download(ctx, doc.StorageKey)
	if err != nil {
		return s.fail(ctx, doc, startedAt, fmt.Errorf("download document: %w", err))
	}

	result, err := s.OCR.ExtractText(ctx, data, doc.MimeType, doc.OriginalName)
	if err != nil {
		return s.fail(ctx, doc, startedAt, fmt.Errorf("extract text: %w", err))
	}

	completedAt := time.Now()
	update := ExtractionUpdate{
		Text:         result.Text,
		Language:     result.Language,
		Confidence:   result.Confidence,
		DocumentType: result.DocumentType,
		Metadata:     MetadataFromResult(result),
		CompletedAt:  completedAt,
	}
	if err := s.Repo.MarkCompleted(ctx, documentID, update); err != nil {
		return s.fail(ctx, doc, startedAt, fmt.Errorf("persist result: %w", err))
	}
	s.invalidateDetail(ctx, documentID)
	metrics.IncProcessingCompleted()
	metrics.ObserveProcessingDurationMs(float64(completedAt.Sub(startedAt).Milliseconds()))
	logStatusTransition(documentID, StatusProcessing, StatusCompleted)

	completed, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		return ProcessOutcome{}, err
	}
	return ProcessOutcome{Document: completed}, nil
}

// fail records a terminal FAILED state. The write uses a detached context so
// a cancelled request cannot leave the document stuck in PROCESSING.
func (s *Service) fail(ctx context.Context, doc Document, startedAt time.Time, cause error) (ProcessOutcome, error) {
	reason := sanitizeErrorMessage(cause)
	completedAt := time.Now()

	writeCtx := context.WithoutCancel(ctx)
	if err := s.Repo.MarkFailed(writeCtx, doc.ID, reason, completedAt); err != nil {
		telemetry.Error("failed to record processing failure", map[string]any{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
		return ProcessOutcome{}, err
	}
	s.invalidateDetail(writeCtx, doc.ID)
	metrics.IncProcessingFailed()
	metrics.ObserveProcessingDurationMs(float64(completedAt.Sub(startedAt).Milliseconds()))
	logStatusTransition(doc.ID, StatusProcessing, StatusFailed)
	telemetry.Error("document processing failed", map[string]any{
		"documentId": doc.ID,
		"userId":     doc.UserID,
		"error":      reason,
	})

	failed, err := s.Repo.GetByID(writeCtx, doc.ID)
	if err != nil {
		return ProcessOutcome{}, err
	}
	return ProcessOutcome{Document: failed, Failed: true, Reason: reason}, nil
}

// sanitizeErrorMessage collapses an error to a single bounded line so raw
// internals stay short enough to store and render.
func sanitizeErrorMessage(err error) string {
	if err == nil {
		return "processing failed"
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		return "processing failed"
	}
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}
	return msg
}

func logStatusTransition(documentID, from, to string) {
	telemetry.Info("document status transition", map[string]any{
		"documentId":       documentID,
		"statusTransition": fmt.Sprintf("%s->%s", from, to),
	})
}
