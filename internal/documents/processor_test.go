package documents

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"briefbot-backend/internal/ocr"
	"briefbot-backend/internal/shared/cache"
	memorystore "briefbot-backend/internal/shared/storage/object/memory"
)

type stubOCR struct {
	result ocr.Result
	err    error
}

func (s stubOCR) ExtractText(ctx context.Context, data []byte, mimeType string, filename string) (ocr.Result, error) {
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return s.result, nil
}

type failingStore struct {
	*memorystore.Store
	downloadErr error
}

func (f *failingStore) Download(ctx context.Context, key string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.Store.Download(ctx, key)
}

func newTestService(t *testing.T, svc ocr.Service) *Service {
	t.Helper()
	if svc == nil {
		svc = ocr.NewMock(ocr.MockOptions{SkipDelay: true})
	}
	return &Service{
		Repo:  NewMemoryRepo(),
		Store: memorystore.New(),
		OCR:   svc,
		Cache: cache.NewMemory(),
	}
}

func uploadTestFile(t *testing.T, svc *Service, userID, filename, mimeType string) Document {
	t.Helper()
	doc, err := svc.Upload(context.Background(), userID, UploadInput{
		FileName: filename,
		MimeType: mimeType,
		Data:     []byte("scan bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return doc
}

func TestProcessCompletesGermanTaxDocument(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuerrechnung-2024.pdf", "application/pdf")

	outcome, err := svc.Process(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if outcome.Failed {
		t.Fatalf("expected success, got failure: %s", outcome.Reason)
	}

	got := outcome.Document
	if got.Status != StatusCompleted {
		t.Fatalf("expected status %s, got %s", StatusCompleted, got.Status)
	}
	if got.Language == nil || *got.Language != ocr.LanguageGerman {
		t.Fatalf("expected language de, got %v", got.Language)
	}
	if got.DocumentType == nil || *got.DocumentType != ocr.TypeTax {
		t.Fatalf("expected tax document, got %v", got.DocumentType)
	}
	if got.ExtractedText == nil || !strings.Contains(*got.ExtractedText, "Kantonales Steueramt Zürich") {
		t.Fatal("expected extracted text to contain the sender authority")
	}
	if got.Confidence == nil || *got.Confidence <= 0 || *got.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", got.Confidence)
	}
	if got.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if len(got.Metadata.Deadlines) != 2 {
		t.Fatalf("expected 2 deadlines, got %d", len(got.Metadata.Deadlines))
	}
	if got.Metadata.SenderAuthority == nil || got.Metadata.SenderAuthority.Canton != "ZH" {
		t.Fatalf("expected ZH sender authority, got %v", got.Metadata.SenderAuthority)
	}
	if got.ProcessingStartedAt == nil || got.ProcessingCompletedAt == nil {
		t.Fatal("expected processing timestamps")
	}
	if got.ErrorMessage != nil {
		t.Fatalf("expected no error message, got %q", *got.ErrorMessage)
	}
}

func TestProcessMetadataRoundTripsExactly(t *testing.T) {
	result := ocr.Result{
		Text:         "text",
		Language:     ocr.LanguageFrench,
		Confidence:   0.9,
		DocumentType: ocr.TypeInsurance,
		Deadlines: []ocr.Deadline{
			{Description: "Cancellation deadline", Date: "2026-11-30", UrgencyLevel: ocr.UrgencyStandard, ConsequenceHint: "Must notify by November 30"},
		},
		Amounts: []ocr.Amount{
			{Description: "Net Monthly Premium", Amount: "300.50", AmountNumeric: 300.5, Currency: "CHF", PaymentReference: "987654321"},
		},
		References: []ocr.Reference{
			{Type: "invoice", Value: "A-987654321", Description: "Policy number"},
		},
		ActionItems: []ocr.ActionItem{
			{Action: "Pay premium", Deadline: "2026-02-01", Documents: []string{"IBAN: CH81 0900 0000 1234 5678 9"}},
		},
		SenderAuthority: &ocr.SenderAuthority{Level: "private", Name: "CSS Assurance", Canton: "GE"},
	}
	svc := newTestService(t, stubOCR{result: result})
	doc := uploadTestFile(t, svc, "user-1", "scan.jpg", "image/jpeg")

	outcome, err := svc.Process(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := MetadataFromResult(result)
	if !reflect.DeepEqual(*outcome.Document.Metadata, want) {
		t.Fatalf("metadata mismatch:\nwant %+v\ngot  %+v", want, *outcome.Document.Metadata)
	}

	// The serialized form must survive a marshal cycle unchanged.
	first, err := json.Marshal(outcome.Document.Metadata)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Metadata
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	second, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("remarshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("metadata did not round-trip:\n%s\n%s", first, second)
	}
	for _, key := range []string{"deadlines", "amounts", "references", "actionItems", "senderAuthority"} {
		if !strings.Contains(string(first), `"`+key+`"`) {
			t.Fatalf("expected key %q in metadata blob", key)
		}
	}
}

func TestProcessRejectsNonPendingDocument(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	if _, err := svc.Process(context.Background(), "user-1", doc.ID); err != nil {
		t.Fatalf("first Process: %v", err)
	}

	_, err := svc.Process(context.Background(), "user-1", doc.ID)
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if stateErr.Status != StatusCompleted {
		t.Fatalf("expected status %s in error, got %s", StatusCompleted, stateErr.Status)
	}
	if !strings.Contains(stateErr.Error(), "completed") {
		t.Fatalf("expected message to name the current status, got %q", stateErr.Error())
	}
}

func TestProcessConcurrentClaimsHaveOneWinner(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Process(context.Background(), "user-1", doc.ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		default:
			var stateErr *InvalidStateError
			if !errors.As(err, &stateErr) {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}

	final, err := svc.Repo.GetByID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if final.Status != StatusCompleted {
		t.Fatalf("expected final status %s, got %s", StatusCompleted, final.Status)
	}
}

func TestProcessStorageFailureEndsInFailed(t *testing.T) {
	svc := newTestService(t, nil)
	svc.Store = &failingStore{Store: memorystore.New(), downloadErr: errors.New("read timeout\nafter 30s")}
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	outcome, err := svc.Process(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !outcome.Failed {
		t.Fatal("expected failed outcome")
	}
	if outcome.Document.Status != StatusFailed {
		t.Fatalf("expected status %s, got %s", StatusFailed, outcome.Document.Status)
	}
	if outcome.Document.ErrorMessage == nil {
		t.Fatal("expected error message")
	}
	if strings.ContainsAny(*outcome.Document.ErrorMessage, "\n\r") {
		t.Fatalf("expected single-line error message, got %q", *outcome.Document.ErrorMessage)
	}
	if outcome.Document.ProcessingCompletedAt == nil {
		t.Fatal("expected completion timestamp on failure")
	}
}

func TestProcessExtractionFailureEndsInFailed(t *testing.T) {
	svc := newTestService(t, stubOCR{err: errors.New("provider unavailable")})
	doc := uploadTestFile(t, svc, "user-1", "scan.png", "image/png")

	outcome, err := svc.Process(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !outcome.Failed {
		t.Fatal("expected failed outcome")
	}
	if !strings.Contains(outcome.Reason, "provider unavailable") {
		t.Fatalf("expected cause in reason, got %q", outcome.Reason)
	}

	// A failed run is terminal; retrying is a state conflict.
	_, err = svc.Process(context.Background(), "user-1", doc.ID)
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if stateErr.Status != StatusFailed {
		t.Fatalf("expected %s, got %s", StatusFailed, stateErr.Status)
	}
}

func TestProcessOtherUsersDocumentReadsAsMissing(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	_, errOwned := svc.Process(context.Background(), "user-2", doc.ID)
	_, errMissing := svc.Process(context.Background(), "user-2", "no-such-id")

	if !errors.Is(errOwned, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign document, got %v", errOwned)
	}
	if !errors.Is(errMissing, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing document, got %v", errMissing)
	}
	if errOwned.Error() != errMissing.Error() {
		t.Fatalf("expected identical errors, got %q vs %q", errOwned, errMissing)
	}
}

func TestSanitizeErrorMessageBoundsAndFlattens(t *testing.T) {
	long := strings.Repeat("x", 1000)
	msg := sanitizeErrorMessage(errors.New("line one\nline two\t" + long))
	if len(msg) > maxErrorMessageLen {
		t.Fatalf("message too long: %d", len(msg))
	}
	if strings.ContainsAny(msg, "\n\t\r") {
		t.Fatalf("expected flattened message, got %q", msg)
	}
	if sanitizeErrorMessage(nil) != "processing failed" {
		t.Fatal("expected fallback message for nil error")
	}
}
