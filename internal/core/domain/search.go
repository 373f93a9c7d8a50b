package domain

import (
	"fmt"
	"strings"
)

// DefaultMaxResults bounds the size of a search response.
const DefaultMaxResults = 50

// SearchTerm is a single parsed query term.
type SearchTerm struct {
	// Term is the text to look for. Exact terms may contain spaces.
	Term string `json:"term"`

	// Exact requires the term to match as a whole word
	// rather than as a substring.
	Exact bool `json:"exact"`
}

// Corpus selects the record set a search runs against.
type Corpus string

const (
	// CorpusSubtitles searches indexed subtitle documents.
	CorpusSubtitles Corpus = "subtitles"

	// CorpusVerses searches the verse reference table.
	CorpusVerses Corpus = "verses"
)

// ParseCorpus converts a user-supplied corpus name.
// An empty name selects subtitles.
func ParseCorpus(s string) (Corpus, error) {
	switch Corpus(strings.ToLower(strings.TrimSpace(s))) {
	case "", CorpusSubtitles:
		return CorpusSubtitles, nil
	case CorpusVerses:
		return CorpusVerses, nil
	default:
		return "", fmt.Errorf("%w: corpus %q", ErrUnsupportedType, s)
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Corpus selects subtitles or verses. Empty means subtitles.
	Corpus Corpus

	// Version selects the verse translation. Empty uses the configured default.
	Version string

	// Limit is the maximum number of results.
	// Zero or values above the configured cap use the cap.
	Limit int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Reference identifies the record: a document ID or "book.chapter.verse".
	Reference string `json:"reference"`

	// Text is the matched record text.
	Text string `json:"text"`

	// DocumentID is set for subtitle hits.
	DocumentID string `json:"document_id,omitempty"`

	// Verse is set for verse hits.
	Verse *VerseRecord `json:"verse,omitempty"`
}
