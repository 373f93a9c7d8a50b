package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

const searchToolDescription = "Search indexed subtitles or verse reference text. Every term must match."

// SearchInput holds the arguments of the search tool.
type SearchInput struct {
	Query   string `json:"query" jsonschema:"words to find; quote a word or phrase to match it as a whole word"`
	Corpus  string `json:"corpus,omitempty" jsonschema:"subtitles (default) or verses"`
	Version string `json:"version,omitempty" jsonschema:"verse translation, for the verses corpus"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return"`
}

// Hits is the structured result of the search tool.
type Hits struct {
	Results []Hit `json:"results"`
	Count   int   `json:"count"`
}

// Hit is one matching subtitle document or verse. The verse fields
// are empty for subtitle hits.
type Hit struct {
	Reference  string `json:"reference"`
	Text       string `json:"text"`
	DocumentID string `json:"document_id,omitempty"`
	Version    string `json:"version,omitempty"`
	Book       int    `json:"book,omitempty"`
	Chapter    int    `json:"chapter,omitempty"`
	Verse      int    `json:"verse,omitempty"`
}

func newHit(r *domain.SearchResult) Hit {
	h := Hit{Reference: r.Reference, Text: r.Text, DocumentID: r.DocumentID}
	if v := r.Verse; v != nil {
		h.Version, h.Book, h.Chapter, h.Verse = v.Version, v.Book, v.Chapter, v.Verse
	}
	return h
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{Name: "search", Description: searchToolDescription}, s.handleSearch)
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, Hits, error) {
	corpus, err := domain.ParseCorpus(in.Corpus)
	if err != nil {
		return nil, Hits{}, toolError(err)
	}

	results, err := s.ports.Search.Search(ctx, in.Query, domain.SearchOptions{
		Corpus:  corpus,
		Version: in.Version,
		Limit:   in.Limit,
	})
	if err != nil {
		return nil, Hits{}, toolError(err)
	}

	hits := Hits{Results: make([]Hit, 0, len(results)), Count: len(results)}
	for i := range results {
		hits.Results = append(hits.Results, newHit(&results[i]))
	}
	return nil, hits, nil
}
