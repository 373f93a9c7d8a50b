package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// Ensure VerseStore implements the interface.
var _ driven.VerseStore = (*VerseStore)(nil)

// VerseStore is an in-memory implementation of driven.VerseStore.
// Raw matching is case-insensitive for ASCII, like SQLite LIKE.
type VerseStore struct {
	mu       sync.RWMutex
	schema   domain.VerseSchema
	versions map[string][]domain.VerseRecord
}

// NewVerseStore creates an empty verse store with the given schema.
func NewVerseStore(schema domain.VerseSchema) *VerseStore {
	return &VerseStore{
		schema:   schema,
		versions: make(map[string][]domain.VerseRecord),
	}
}

// Add loads reference verses. Intended for tests and fixtures.
func (s *VerseStore) Add(verses ...domain.VerseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range verses {
		s.versions[v.Version] = append(s.versions[v.Version], v)
	}
	for version := range s.versions {
		list := s.versions[version]
		sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
	}
}

// Schema reports the configured layout.
func (s *VerseStore) Schema() domain.VerseSchema {
	return s.schema
}

// Versions lists loaded translations in name order.
func (s *VerseStore) Versions(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.versions))
	for name := range s.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SearchRaw returns verses whose text contains every fragment.
func (s *VerseStore) SearchRaw(
	_ context.Context, version string, fragments []string, limit int,
) ([]domain.VerseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	verses, ok := s.versions[version]
	if !ok {
		return nil, domain.ErrNotFound
	}

	var result []domain.VerseRecord
	for _, v := range verses {
		if containsAll(asciiLower(v.Text), fragments, asciiLower) {
			result = append(result, v)
			if limit > 0 && len(result) >= limit {
				break
			}
		}
	}
	return result, nil
}

// SearchNormalized returns verses whose normalised text contains every fragment.
func (s *VerseStore) SearchNormalized(
	_ context.Context, version string, fragments []string,
) ([]domain.VerseRecord, error) {
	if s.schema != domain.VerseSchemaNormalized {
		return nil, domain.ErrUnsupportedType
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	verses, ok := s.versions[version]
	if !ok {
		return nil, domain.ErrNotFound
	}

	var result []domain.VerseRecord
	for _, v := range verses {
		if containsAll(v.NormalizedText, fragments, func(f string) string { return f }) {
			result = append(result, v)
		}
	}
	return result, nil
}

func containsAll(text string, fragments []string, fold func(string) string) bool {
	for _, f := range fragments {
		if !strings.Contains(text, fold(f)) {
			return false
		}
	}
	return true
}

// asciiLower lowercases only ASCII letters, matching SQLite's default LIKE.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
