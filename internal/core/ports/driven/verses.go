package driven

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// VerseStore provides read access to verse reference data.
// Results are ordered by book, chapter and verse.
type VerseStore interface {
	// Schema reports the table layout this store was opened with.
	Schema() domain.VerseSchema

	// Versions lists available translations.
	Versions(ctx context.Context) ([]string, error)

	// SearchRaw returns verses whose raw text contains every fragment,
	// at most limit rows.
	SearchRaw(ctx context.Context, version string, fragments []string, limit int) ([]domain.VerseRecord, error)

	// SearchNormalized returns verses whose normalised text contains every fragment.
	// Only valid under domain.VerseSchemaNormalized.
	SearchNormalized(ctx context.Context, version string, fragments []string) ([]domain.VerseRecord, error)
}
