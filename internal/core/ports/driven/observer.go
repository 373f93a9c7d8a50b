package driven

import "github.com/custodia-labs/sercha-captions/internal/core/domain"

// IngestObserver receives progress and error reports from ingest runs.
// Callers choose logging, metrics or silence. Observe is called from the
// goroutine running the workflow and must not block for long.
type IngestObserver interface {
	Observe(event domain.IngestEvent)
}
