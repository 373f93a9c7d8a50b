package driving

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// LibraryService gives read access to what has been indexed.
type LibraryService interface {
	// Documents lists summaries of every indexed document, ordered by ID.
	Documents(ctx context.Context) ([]domain.DocumentSummary, error)

	// Document returns one indexed document with its text.
	// Returns domain.ErrNotFound if it does not exist.
	Document(ctx context.Context, id string) (*domain.IndexedDocument, error)

	// VerseVersions lists the verse translations available for search.
	VerseVersions(ctx context.Context) ([]string, error)
}
