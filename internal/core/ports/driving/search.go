package driving

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search parses the query and returns records matching every term,
	// ordered by their natural key and capped at the configured maximum.
	// A blank query fails with domain.ErrInvalidInput.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
