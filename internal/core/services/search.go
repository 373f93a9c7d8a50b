package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/logger"
	"github.com/custodia-labs/sercha-captions/internal/query"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchConfig tunes a SearchService.
type SearchConfig struct {
	// MaxResults caps every response. Zero uses domain.DefaultMaxResults.
	MaxResults int

	// DefaultVersion is the verse translation used when a query names none.
	DefaultVersion string
}

// SearchService runs parsed queries against subtitles or verses.
type SearchService struct {
	index   driven.IndexStore
	verses  driven.VerseStore
	matcher *query.Matcher
	cfg     SearchConfig
}

// NewSearchService creates a search service. verses may be nil when no
// verse database is configured; verse queries then fail with
// domain.ErrSearchUnavailable.
func NewSearchService(
	index driven.IndexStore,
	verses driven.VerseStore,
	matcher *query.Matcher,
	cfg SearchConfig,
) *SearchService {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = domain.DefaultMaxResults
	}
	return &SearchService{
		index:   index,
		verses:  verses,
		matcher: matcher,
		cfg:     cfg,
	}
}

// Search parses q and returns records matching every term.
func (s *SearchService) Search(ctx context.Context, q string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("%w: query is blank", domain.ErrInvalidInput)
	}
	terms := query.Parse(q)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: query has no terms", domain.ErrInvalidInput)
	}

	limit := opts.Limit
	if limit <= 0 || limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}

	corpus := opts.Corpus
	if corpus == "" {
		corpus = domain.CorpusSubtitles
	}
	logger.Debug("search %s: %d terms, limit %d", corpus, len(terms), limit)

	switch corpus {
	case domain.CorpusSubtitles:
		return s.searchSubtitles(ctx, terms, limit)
	case domain.CorpusVerses:
		return s.searchVerses(ctx, terms, opts.Version, limit)
	default:
		return nil, fmt.Errorf("%w: corpus %q", domain.ErrInvalidInput, corpus)
	}
}

// searchSubtitles enumerates every indexed document. Tokens are not
// consulted; they are index metadata for future lookups.
func (s *SearchService) searchSubtitles(ctx context.Context, terms []domain.SearchTerm, limit int) ([]domain.SearchResult, error) {
	if s.index == nil {
		return nil, fmt.Errorf("%w: subtitle index not configured", domain.ErrSearchUnavailable)
	}
	docs, err := s.index.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list documents: %w", domain.ErrSearchUnavailable, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	results := []domain.SearchResult{}
	for i := range docs {
		if !s.matcher.Match(analysis.Normalize(docs[i].ContentText), terms) {
			continue
		}
		results = append(results, domain.SearchResult{
			Reference:  docs[i].ID,
			Text:       docs[i].ContentText,
			DocumentID: docs[i].ID,
		})
		if len(results) >= limit {
			break
		}
	}
	logger.Debug("search subtitles: %d of %d documents matched", len(results), len(docs))
	return results, nil
}

func (s *SearchService) searchVerses(
	ctx context.Context, terms []domain.SearchTerm, version string, limit int,
) ([]domain.SearchResult, error) {
	if s.verses == nil {
		return nil, fmt.Errorf("%w: %w: verse database not configured", domain.ErrSearchUnavailable, domain.ErrNotFound)
	}
	if version == "" {
		version = s.cfg.DefaultVersion
	}
	if version == "" {
		return nil, fmt.Errorf("%w: verse version is required", domain.ErrInvalidInput)
	}

	var verses []domain.VerseRecord
	var err error
	switch s.verses.Schema() {
	case domain.VerseSchemaLegacy:
		// Relational substring mode: exact terms behave like free terms.
		verses, err = s.verses.SearchRaw(ctx, version, query.RawFragments(terms), limit)
	case domain.VerseSchemaNormalized:
		verses, err = s.searchNormalizedVerses(ctx, terms, version, limit)
	default:
		return nil, fmt.Errorf("%w: verse schema %q", domain.ErrUnsupportedType, s.verses.Schema())
	}
	if err != nil {
		return nil, fmt.Errorf("search verses: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(verses))
	for i := range verses {
		v := verses[i]
		results = append(results, domain.SearchResult{
			Reference: v.Reference(),
			Text:      v.Text,
			Verse:     &v,
		})
	}
	return results, nil
}

// searchNormalizedVerses prefilters in the store, then applies word
// boundaries for exact terms.
func (s *SearchService) searchNormalizedVerses(
	ctx context.Context, terms []domain.SearchTerm, version string, limit int,
) ([]domain.VerseRecord, error) {
	candidates, err := s.verses.SearchNormalized(ctx, version, query.NormalizedFragments(terms))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })

	matched := make([]domain.VerseRecord, 0, limit)
	for _, v := range candidates {
		text := v.NormalizedText
		if text == "" {
			text = analysis.Normalize(v.Text)
		}
		if !s.matcher.Match(text, terms) {
			continue
		}
		matched = append(matched, v)
		if len(matched) >= limit {
			break
		}
	}
	return matched, nil
}
