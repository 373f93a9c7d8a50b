package driven

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// Normaliser converts one timed-text format into plain text.
// Each normaliser handles specific MIME types (e.g., WebVTT, SubRip).
type Normaliser interface {
	// Name identifies the format.
	Name() string

	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// SupportedExtensions returns URL path extensions used when no MIME type matches.
	SupportedExtensions() []string

	// Sniff reports whether content looks like this format.
	Sniff(content []byte) bool

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise transforms a raw track into plain text.
	Normalise(ctx context.Context, sub *domain.Subtitle) (string, error)
}

// SubtitleConverter turns a raw track into plain text suitable for indexing.
// Failures wrap domain.ErrConversionFailed.
type SubtitleConverter interface {
	// Convert selects a normaliser and returns the plain text.
	Convert(ctx context.Context, sub *domain.Subtitle) (string, error)
}
