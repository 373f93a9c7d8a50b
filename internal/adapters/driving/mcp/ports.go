package mcp

import (
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// Ports holds the services the MCP server calls.
type Ports struct {
	// Search backs the search tool. Required.
	Search driving.SearchService

	// Library backs the document and verse-version resources. Without it
	// the resources return empty listings.
	Library driving.LibraryService
}

// Validate reports a missing search service.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
