package domain

import "time"

// IndexedDocument is the persisted, searchable form of a SourceDocument.
// It is keyed by the SourceDocument ID.
//
// ContentHash is always the fingerprint of ContentText, and Tokens is always
// the tokenisation of ContentText under the rules of TokenVersion.
type IndexedDocument struct {
	// ID matches SourceDocument.ID.
	ID string

	// ContentText is the plain text derived from the subtitle track.
	ContentText string

	// Tokens is the deduplicated set of normalised index terms.
	Tokens []string

	// ContentHash is the fingerprint of ContentText.
	ContentHash string

	// TokenVersion is the tokenizer version that produced Tokens.
	TokenVersion int

	// CreatedAt is when the document was first indexed.
	CreatedAt time.Time

	// UpdatedAt is when the document was last written.
	UpdatedAt time.Time
}

// HasContent reports whether tokens can be derived from the stored text.
func (d *IndexedDocument) HasContent() bool {
	return d != nil && d.ContentText != ""
}

// DocumentSummary describes an indexed document without its text.
type DocumentSummary struct {
	ID           string    `json:"id"`
	TokenCount   int       `json:"token_count"`
	TokenVersion int       `json:"token_version"`
	ContentHash  string    `json:"content_hash"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the document's summary.
func (d *IndexedDocument) Summary() DocumentSummary {
	return DocumentSummary{
		ID:           d.ID,
		TokenCount:   len(d.Tokens),
		TokenVersion: d.TokenVersion,
		ContentHash:  d.ContentHash,
		UpdatedAt:    d.UpdatedAt,
	}
}
