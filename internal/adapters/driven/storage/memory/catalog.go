package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// Ensure SourceCatalog implements the interface.
var _ driven.SourceCatalog = (*SourceCatalog)(nil)

// SourceCatalog is an in-memory implementation of driven.SourceCatalog.
// Sources are returned in insertion order.
type SourceCatalog struct {
	mu      sync.RWMutex
	sources []domain.SourceDocument
}

// NewSourceCatalog creates a catalog holding the given sources.
func NewSourceCatalog(sources ...domain.SourceDocument) *SourceCatalog {
	return &SourceCatalog{sources: append([]domain.SourceDocument(nil), sources...)}
}

// Name identifies the catalog.
func (c *SourceCatalog) Name() string {
	return "memory"
}

// Add appends sources.
func (c *SourceCatalog) Add(sources ...domain.SourceDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, sources...)
}

// List returns a copy of all sources.
func (c *SourceCatalog) List(_ context.Context) ([]domain.SourceDocument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.SourceDocument(nil), c.sources...), nil
}
