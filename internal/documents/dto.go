package documents

import "time"

// listItem is the summary shape returned by the list endpoint. Extracted
// text and the metadata blob stay on the detail endpoint.
type listItem struct {
	ID            string     `json:"id"`
	OriginalName  string     `json:"originalName"`
	MimeType      string     `json:"mimeType"`
	SizeBytes     int64      `json:"sizeBytes"`
	Status        string     `json:"status"`
	Language      *string    `json:"language,omitempty"`
	DocumentType  *string    `json:"documentType,omitempty"`
	Confidence    *float64   `json:"confidence,omitempty"`
	ErrorMessage  *string    `json:"errorMessage,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

func toListItem(doc Document) listItem {
	return listItem{
		ID:           doc.ID,
		OriginalName: doc.OriginalName,
		MimeType:     doc.MimeType,
		SizeBytes:    doc.SizeBytes,
		Status:       doc.Status,
		Language:     doc.Language,
		DocumentType: doc.DocumentType,
		Confidence:   doc.Confidence,
		ErrorMessage: doc.ErrorMessage,
		CreatedAt:    doc.CreatedAt,
		ProcessedAt:  doc.ProcessingCompletedAt,
	}
}
