package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService reads indexed documents and verse metadata.
type LibraryService struct {
	index  driven.IndexStore
	verses driven.VerseStore
}

// NewLibraryService creates a library service. verses may be nil.
func NewLibraryService(index driven.IndexStore, verses driven.VerseStore) *LibraryService {
	return &LibraryService{index: index, verses: verses}
}

// Documents lists summaries of every indexed document.
func (s *LibraryService) Documents(ctx context.Context) ([]domain.DocumentSummary, error) {
	docs, err := s.index.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	summaries := make([]domain.DocumentSummary, len(docs))
	for i := range docs {
		summaries[i] = docs[i].Summary()
	}
	return summaries, nil
}

// Document returns one indexed document.
func (s *LibraryService) Document(ctx context.Context, id string) (*domain.IndexedDocument, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: document id is required", domain.ErrInvalidInput)
	}
	doc, err := s.index.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", id, err)
	}
	return doc, nil
}

// VerseVersions lists the available verse translations.
func (s *LibraryService) VerseVersions(ctx context.Context) ([]string, error) {
	if s.verses == nil {
		return nil, fmt.Errorf("%w: verse database not configured", domain.ErrSearchUnavailable)
	}
	return s.verses.Versions(ctx)
}
