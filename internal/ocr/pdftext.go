package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// pdfTextConfidence is reported for plain PDF text extraction, which has no
// recognition uncertainty but may miss scanned pages.
const pdfTextConfidence = 0.95

// PDFText extracts plain text from PDF payloads. It satisfies the same
// contract as the mock but returns no structured fields.
type PDFText struct{}

// NewPDFText constructs a PDF text extraction service.
func NewPDFText() *PDFText {
	return &PDFText{}
}

// ExtractText pulls plain text from a PDF payload.
func (p *PDFText) ExtractText(ctx context.Context, data []byte, mimeType string, filename string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if mimeType != "application/pdf" {
		return Result{}, fmt.Errorf("pdf extraction: unsupported mime type %s for %s", mimeType, filename)
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("pdf extraction: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Result{}, fmt.Errorf("pdf extraction: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Result{}, fmt.Errorf("pdf extraction: %w", err)
	}

	return Result{
		Text:         buf.String(),
		Language:     LanguageUnknown,
		Confidence:   pdfTextConfidence,
		DocumentType: TypeUnknown,
	}, nil
}

var _ Service = (*PDFText)(nil)
