package driving

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// IngestOrchestrator keeps indexed documents consistent with their sources.
// Runs are sequential; concurrent runs against the same store must be
// serialised by the caller.
type IngestOrchestrator interface {
	// Import creates records for sources that have none.
	Import(ctx context.Context) (*domain.IngestReport, error)

	// Update refreshes existing records whose subtitle content changed.
	Update(ctx context.Context) (*domain.IngestReport, error)

	// Reindex recomputes tokens from stored text under the current tokenizer version.
	Reindex(ctx context.Context, opts domain.ReindexOptions) (*domain.IngestReport, error)

	// Status returns the state of the active run, if any.
	Status(ctx context.Context) (*IngestStatus, error)
}

// IngestStatus represents the current state of an ingest run.
type IngestStatus struct {
	// Mode is the running workflow, empty when idle.
	Mode domain.IngestMode

	// Running indicates if a run is currently in progress.
	Running bool

	// Total is the number of items the run will examine.
	Total int

	// Processed is the count of items examined so far.
	Processed int

	// ErrorCount is the number of failed items.
	ErrorCount int
}
