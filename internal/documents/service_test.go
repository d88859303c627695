package documents

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	memorystore "briefbot-backend/internal/shared/storage/object/memory"
)

func TestUploadCreatesPendingDocument(t *testing.T) {
	svc := newTestService(t, nil)

	doc, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileName: "steuerrechnung 2024.pdf",
		MimeType: "application/pdf",
		Data:     []byte("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if doc.Status != StatusPending {
		t.Fatalf("expected status %s, got %s", StatusPending, doc.Status)
	}
	if doc.OriginalName != "steuerrechnung 2024.pdf" {
		t.Fatalf("expected original name kept verbatim, got %q", doc.OriginalName)
	}
	if doc.SizeBytes != int64(len("pdf bytes")) {
		t.Fatalf("unexpected size: %d", doc.SizeBytes)
	}
	wantPrefix := "user-1/" + doc.ID + "/"
	if !strings.HasPrefix(doc.StorageKey, wantPrefix) {
		t.Fatalf("expected storage key prefix %q, got %q", wantPrefix, doc.StorageKey)
	}
	if strings.Contains(doc.StorageKey, " ") {
		t.Fatalf("expected sanitized storage key, got %q", doc.StorageKey)
	}

	stored, err := svc.Store.Download(context.Background(), doc.StorageKey)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(stored, []byte("pdf bytes")) {
		t.Fatal("stored bytes differ from upload")
	}
}

func TestUploadValidationLeavesNoTrace(t *testing.T) {
	cases := []struct {
		name    string
		input   UploadInput
		wantMsg string
	}{
		{
			name:    "empty file",
			input:   UploadInput{FileName: "a.pdf", MimeType: "application/pdf"},
			wantMsg: "File is empty. Please select a valid file.",
		},
		{
			name: "oversize file",
			input: UploadInput{
				FileName: "big.pdf",
				MimeType: "application/pdf",
				Data:     make([]byte, maxFileSize+1),
			},
			wantMsg: "File size must be less than 10MB",
		},
		{
			name: "unsupported type",
			input: UploadInput{
				FileName: "notes.txt",
				MimeType: "text/plain",
				Data:     []byte("hello"),
			},
			wantMsg: "File type not supported. Please upload a JPEG, PNG, WebP, or PDF file.",
		},
		{
			name:    "missing filename",
			input:   UploadInput{MimeType: "application/pdf", Data: []byte("x")},
			wantMsg: "Filename is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, nil)

			_, err := svc.Upload(context.Background(), "user-1", tc.input)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Message != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, validationErr.Message)
			}

			docs, err := svc.Repo.ListByUser(context.Background(), "user-1", 50, 0)
			if err != nil {
				t.Fatalf("ListByUser: %v", err)
			}
			if len(docs) != 0 {
				t.Fatalf("expected no document rows, got %d", len(docs))
			}
			if n := svc.Store.(*memorystore.Store).Len(); n != 0 {
				t.Fatalf("expected no stored objects, got %d", n)
			}
		})
	}
}

func TestUploadAcceptsExactMaxSize(t *testing.T) {
	svc := newTestService(t, nil)

	doc, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileName: "exact.webp",
		MimeType: "image/webp",
		Data:     make([]byte, maxFileSize),
	})
	if err != nil {
		t.Fatalf("Upload at limit: %v", err)
	}
	if doc.SizeBytes != maxFileSize {
		t.Fatalf("unexpected size %d", doc.SizeBytes)
	}
}

func TestUploadRejectsPathTraversalFilename(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileName: "../../etc/passwd",
		MimeType: "application/pdf",
		Data:     []byte("x"),
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListReturnsOnlyOwnDocumentsNewestFirst(t *testing.T) {
	svc := newTestService(t, nil)
	uploadTestFile(t, svc, "user-1", "first.pdf", "application/pdf")
	uploadTestFile(t, svc, "user-2", "other.pdf", "application/pdf")
	second := uploadTestFile(t, svc, "user-1", "second.pdf", "application/pdf")

	docs, err := svc.List(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	paged, err := svc.List(context.Background(), "user-1", 1, 0)
	if err != nil {
		t.Fatalf("List paged: %v", err)
	}
	if len(paged) != 1 {
		t.Fatalf("expected 1 document with limit=1, got %d", len(paged))
	}
	if docs[0].ID != second.ID && docs[0].CreatedAt.Before(docs[1].CreatedAt) {
		t.Fatal("expected newest first ordering")
	}
	for _, doc := range docs {
		if doc.UserID != "user-1" {
			t.Fatalf("leaked document of %s", doc.UserID)
		}
	}
}

func TestGetReturnsDetailWithFreshSignedURL(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	detail, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Document.ID != doc.ID {
		t.Fatalf("expected document %s, got %s", doc.ID, detail.Document.ID)
	}
	if detail.SignedURL == "" {
		t.Fatal("expected a signed URL")
	}
	if detail.Translations == nil {
		t.Fatal("expected non-nil translations")
	}
}

func TestGetConflatesMissingAndForeignDocuments(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	_, errForeign := svc.Get(context.Background(), "user-2", doc.ID)
	_, errMissing := svc.Get(context.Background(), "user-2", "no-such-id")

	if !errors.Is(errForeign, ErrNotFound) || !errors.Is(errMissing, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for both, got %v and %v", errForeign, errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Fatalf("expected identical errors, got %q vs %q", errForeign, errMissing)
	}
}

func TestGetIncludesStoredTranslations(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")
	svc.Repo.(*MemoryRepo).AddTranslation(doc.ID, Translation{
		ID:             "tr-1",
		TargetLanguage: "en",
		TranslatedText: "Cantonal tax office Zurich",
	})

	detail, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Translations) != 1 || detail.Translations[0].TargetLanguage != "en" {
		t.Fatalf("unexpected translations: %+v", detail.Translations)
	}
}

func TestGetCacheIsInvalidatedByProcessing(t *testing.T) {
	svc := newTestService(t, nil)
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	// Warm the cache with the PENDING rendering.
	before, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if before.Document.Status != StatusPending {
		t.Fatalf("expected %s, got %s", StatusPending, before.Document.Status)
	}

	if _, err := svc.Process(context.Background(), "user-1", doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	after, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Get after process: %v", err)
	}
	if after.Document.Status != StatusCompleted {
		t.Fatalf("expected %s after processing, got %s", StatusCompleted, after.Document.Status)
	}
}

func TestGetWorksWithoutCache(t *testing.T) {
	svc := newTestService(t, nil)
	svc.Cache = nil
	doc := uploadTestFile(t, svc, "user-1", "steuer.pdf", "application/pdf")

	if _, err := svc.Get(context.Background(), "user-1", doc.ID); err != nil {
		t.Fatalf("Get without cache: %v", err)
	}
}
