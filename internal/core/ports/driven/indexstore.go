package driven

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// IndexStore persists indexed documents keyed by source ID.
// It is a plain key-value document store: get, put, batched put
// and full enumeration. No query or filter capability is assumed.
type IndexStore interface {
	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*domain.IndexedDocument, error)

	// Put creates or overwrites a document.
	Put(ctx context.Context, doc *domain.IndexedDocument) error

	// NewBatch starts a group of writes committed atomically.
	NewBatch() IndexBatch

	// List returns every stored document.
	List(ctx context.Context) ([]domain.IndexedDocument, error)

	// MaxBatchOps is the store's per-batch operation ceiling.
	MaxBatchOps() int
}

// IndexBatch accumulates writes until Commit.
// A batch must not be reused after Commit.
type IndexBatch interface {
	// Put queues a create-or-overwrite.
	Put(doc *domain.IndexedDocument)

	// Len returns the number of queued operations.
	Len() int

	// Commit applies all queued writes as one unit.
	Commit(ctx context.Context) error
}
