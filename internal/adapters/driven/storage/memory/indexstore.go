package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// DefaultMaxBatchOps mirrors the per-batch ceiling of hosted document stores.
const DefaultMaxBatchOps = 500

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
// It counts writes so tests can assert idempotence.
type IndexStore struct {
	mu          sync.RWMutex
	documents   map[string]domain.IndexedDocument
	maxBatchOps int
	writes      int
	commits     int
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{
		documents:   make(map[string]domain.IndexedDocument),
		maxBatchOps: DefaultMaxBatchOps,
	}
}

// SetMaxBatchOps overrides the batch ceiling.
func (s *IndexStore) SetMaxBatchOps(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxBatchOps = n
}

// Get retrieves a document by ID.
func (s *IndexStore) Get(_ context.Context, id string) (*domain.IndexedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc.Tokens = copyTokens(doc.Tokens)
	return &doc, nil
}

// Put creates or overwrites a document.
func (s *IndexStore) Put(_ context.Context, doc *domain.IndexedDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(doc)
	return nil
}

// NewBatch starts a group of writes.
func (s *IndexStore) NewBatch() driven.IndexBatch {
	return &indexBatch{store: s}
}

// List returns every stored document ordered by ID.
func (s *IndexStore) List(_ context.Context) ([]domain.IndexedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.IndexedDocument, 0, len(s.documents))
	for id := range s.documents {
		doc := s.documents[id]
		doc.Tokens = copyTokens(doc.Tokens)
		result = append(result, doc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MaxBatchOps is the per-batch operation ceiling.
func (s *IndexStore) MaxBatchOps() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxBatchOps
}

// Writes returns the number of documents written since creation.
func (s *IndexStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Commits returns the number of committed batches.
func (s *IndexStore) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

// put stores a copy of doc (caller must hold lock).
func (s *IndexStore) put(doc *domain.IndexedDocument) {
	stored := *doc
	stored.Tokens = copyTokens(doc.Tokens)
	s.documents[doc.ID] = stored
	s.writes++
}

// indexBatch implements driven.IndexBatch.
type indexBatch struct {
	store *IndexStore
	ops   []domain.IndexedDocument
}

func (b *indexBatch) Put(doc *domain.IndexedDocument) {
	b.ops = append(b.ops, *doc)
}

func (b *indexBatch) Len() int {
	return len(b.ops)
}

func (b *indexBatch) Commit(_ context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	if len(b.ops) > b.store.maxBatchOps {
		return domain.ErrPersistenceFailed
	}
	for i := range b.ops {
		b.store.put(&b.ops[i])
	}
	b.store.commits++
	b.ops = nil
	return nil
}

func copyTokens(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
