package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
}

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	summaries []domain.DocumentSummary
	document  *domain.IndexedDocument
	versions  []string
	err       error
}

func (m *mockLibraryService) Documents(_ context.Context) ([]domain.DocumentSummary, error) {
	return m.summaries, m.err
}

func (m *mockLibraryService) Document(_ context.Context, _ string) (*domain.IndexedDocument, error) {
	return m.document, m.err
}

func (m *mockLibraryService) VerseVersions(_ context.Context) ([]string, error) {
	return m.versions, m.err
}
