package driven

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// ContentFetcher retrieves raw subtitle tracks.
// Failures wrap domain.ErrFetchFailed.
type ContentFetcher interface {
	// Fetch downloads the track at url.
	Fetch(ctx context.Context, url string) (*domain.Subtitle, error)
}
