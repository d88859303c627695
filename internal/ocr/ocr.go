package ocr

import "context"

// Document languages recognized by extraction (Swiss official languages,
// excluding Romansh).
const (
	LanguageGerman  = "de"
	LanguageFrench  = "fr"
	LanguageItalian = "it"
	LanguageUnknown = "unknown"
)

// Document types for Swiss official correspondence.
const (
	TypeTax       = "tax"
	TypeInsurance = "insurance"
	TypePermit    = "permit"
	TypeUnknown   = "unknown"
)

// Urgency levels for extracted deadlines.
const (
	UrgencyCritical      = "critical"
	UrgencyStandard      = "standard"
	UrgencyInformational = "informational"
)

// Deadline is a date extracted from a document.
type Deadline struct {
	Description     string `json:"description"`
	Date            string `json:"date"`
	UrgencyLevel    string `json:"urgencyLevel"`
	ConsequenceHint string `json:"consequenceHint,omitempty"`
}

// Amount is a monetary amount extracted from a document. Amount keeps the
// original Swiss formatting ("1'234.50"); AmountNumeric is the parsed value.
type Amount struct {
	Description      string  `json:"description"`
	Amount           string  `json:"amount"`
	AmountNumeric    float64 `json:"amountNumeric"`
	Currency         string  `json:"currency"`
	PaymentReference string  `json:"paymentReference,omitempty"`
}

// Reference is a reference number extracted from a document.
type Reference struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// SenderAuthority describes the issuing authority.
type SenderAuthority struct {
	Level  string `json:"level"`
	Name   string `json:"name,omitempty"`
	Canton string `json:"canton,omitempty"`
}

// ActionItem is a task the recipient needs to carry out.
type ActionItem struct {
	Action    string   `json:"action"`
	Deadline  string   `json:"deadline,omitempty"`
	Documents []string `json:"documents,omitempty"`
}

// Result is the output of a text extraction run.
type Result struct {
	Text            string
	Language        string
	Confidence      float64
	DocumentType    string
	Deadlines       []Deadline
	Amounts         []Amount
	References      []Reference
	ActionItems     []ActionItem
	SenderAuthority *SenderAuthority
}

// Service extracts text and structured fields from document bytes. Any real
// model-backed implementation must satisfy the same contract as the mock.
type Service interface {
	ExtractText(ctx context.Context, data []byte, mimeType string, filename string) (Result, error)
}
