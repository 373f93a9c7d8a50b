package driven

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// SourceCatalog enumerates the source documents to ingest.
// Implementations include a YAML manifest and a YouTube playlist.
type SourceCatalog interface {
	// Name identifies the catalog for logging.
	Name() string

	// List returns every source in a stable order.
	List(ctx context.Context) ([]domain.SourceDocument, error)
}
