package memory

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"briefbot-backend/internal/shared/storage/object"
)

func TestUploadDownloadDelete(t *testing.T) {
	store := New()
	ctx := context.Background()

	res, err := store.Upload(ctx, []byte("payload"), "user-1/doc-1/scan.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.Key != "user-1/doc-1/scan.pdf" || res.URL == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	data, err := store.Download(ctx, res.Key)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(data, []byte("payload")) {
		t.Fatal("downloaded bytes differ")
	}

	// Mutating the returned slice must not affect the stored copy.
	data[0] = 'X'
	again, err := store.Download(ctx, res.Key)
	if err != nil {
		t.Fatalf("Download again: %v", err)
	}
	if !bytes.Equal(again, []byte("payload")) {
		t.Fatal("stored bytes were mutated through a returned slice")
	}

	if err := store.Delete(ctx, res.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Download(ctx, res.Key); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := New()
	if err := store.Delete(context.Background(), "never-stored"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
}

func TestSignedURLIncludesExpiry(t *testing.T) {
	store := New()
	url, err := store.SignedURL(context.Background(), "k", 30*time.Minute)
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}
	if !strings.Contains(url, "expires=") {
		t.Fatalf("expected expiry in URL, got %q", url)
	}
}
