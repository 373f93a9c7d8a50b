// Package tui provides an interactive terminal interface for searching
// subtitles and verses and reading indexed documents.
package tui

import (
	"errors"

	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

var (
	// ErrInvalidPorts is returned by NewApp for nil ports.
	ErrInvalidPorts = errors.New("tui: no ports given")

	// ErrMissingSearchService is returned by NewApp when Ports.Search is nil.
	ErrMissingSearchService = errors.New("tui: search service is required")
)

// Ports are the services the TUI drives.
type Ports struct {
	Search driving.SearchService

	// Library backs the documents view. Optional; without it the view
	// reports that browsing is unavailable.
	Library driving.LibraryService
}

// Validate checks that the required services are set.
func (p *Ports) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidPorts
	case p.Search == nil:
		return ErrMissingSearchService
	}
	return nil
}
