package domain

import (
	"fmt"
	"strings"
)

// VerseRecord is immutable reference text, keyed by version, book, chapter and verse.
type VerseRecord struct {
	Version string `json:"version"`
	Book    int    `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`

	// NormalizedText is only populated under the normalized schema.
	NormalizedText string `json:"-"`
}

// Reference formats the natural key as "book.chapter.verse".
func (v VerseRecord) Reference() string {
	return fmt.Sprintf("%d.%d.%d", v.Book, v.Chapter, v.Verse)
}

// Less orders verses by book, chapter, then verse.
func (v VerseRecord) Less(o VerseRecord) bool {
	if v.Book != o.Book {
		return v.Book < o.Book
	}
	if v.Chapter != o.Chapter {
		return v.Chapter < o.Chapter
	}
	return v.Verse < o.Verse
}

// VerseSchema tells the search path which verse table layout is in use.
// It is chosen by configuration once at startup, never detected per request.
type VerseSchema string

const (
	// VerseSchemaLegacy has only raw text; search is substring LIKE matching.
	VerseSchemaLegacy VerseSchema = "legacy"

	// VerseSchemaNormalized carries a precomputed normalised text column
	// and supports whole-word matching for exact terms.
	VerseSchemaNormalized VerseSchema = "normalized"
)

// ParseVerseSchema converts a configured schema name.
func ParseVerseSchema(s string) (VerseSchema, error) {
	switch VerseSchema(strings.ToLower(strings.TrimSpace(s))) {
	case VerseSchemaLegacy:
		return VerseSchemaLegacy, nil
	case VerseSchemaNormalized:
		return VerseSchemaNormalized, nil
	default:
		return "", fmt.Errorf("%w: verse schema %q", ErrUnsupportedType, s)
	}
}
