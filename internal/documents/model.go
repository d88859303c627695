package documents

import (
	"time"

	"briefbot-backend/internal/ocr"
)

// Processing statuses. A document is in exactly one at any time; COMPLETED
// and FAILED are terminal.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Document represents an uploaded file and its processing state. Extracted
// fields are populated iff status is COMPLETED; ErrorMessage iff FAILED.
type Document struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"userId"`
	OriginalName          string     `json:"originalName"`
	MimeType              string     `json:"mimeType"`
	SizeBytes             int64      `json:"sizeBytes"`
	StorageKey            string     `json:"storageKey"`
	Status                string     `json:"status"`
	ExtractedText         *string    `json:"extractedText,omitempty"`
	Language              *string    `json:"language,omitempty"`
	Confidence            *float64   `json:"confidence,omitempty"`
	DocumentType          *string    `json:"documentType,omitempty"`
	Metadata              *Metadata  `json:"metadata,omitempty"`
	ErrorMessage          *string    `json:"errorMessage,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	ProcessingStartedAt   *time.Time `json:"processingStartedAt,omitempty"`
	ProcessingCompletedAt *time.Time `json:"processingCompletedAt,omitempty"`
}

// Translation holds translated text for a document in one target language.
// No in-scope code path writes translations yet.
type Translation struct {
	ID             string `json:"id"`
	TargetLanguage string `json:"targetLanguage"`
	TranslatedText string `json:"translatedText"`
}

// Metadata is the structured extraction side-result persisted alongside the
// typed columns. Its serialized form must round-trip exactly.
type Metadata struct {
	Deadlines       []ocr.Deadline       `json:"deadlines"`
	Amounts         []ocr.Amount         `json:"amounts"`
	References      []ocr.Reference      `json:"references"`
	ActionItems     []ocr.ActionItem     `json:"actionItems"`
	SenderAuthority *ocr.SenderAuthority `json:"senderAuthority"`
}

// MetadataFromResult flattens the non-text structured fields of an
// extraction result. Lists are never nil so the blob serializes with all
// keys present.
func MetadataFromResult(res ocr.Result) Metadata {
	meta := Metadata{
		Deadlines:       res.Deadlines,
		Amounts:         res.Amounts,
		References:      res.References,
		ActionItems:     res.ActionItems,
		SenderAuthority: res.SenderAuthority,
	}
	if meta.Deadlines == nil {
		meta.Deadlines = []ocr.Deadline{}
	}
	if meta.Amounts == nil {
		meta.Amounts = []ocr.Amount{}
	}
	if meta.References == nil {
		meta.References = []ocr.Reference{}
	}
	if meta.ActionItems == nil {
		meta.ActionItems = []ocr.ActionItem{}
	}
	return meta
}
