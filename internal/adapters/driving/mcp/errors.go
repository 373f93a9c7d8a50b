// Package mcp provides an MCP (Model Context Protocol) server adapter for
// sercha-captions. It exposes subtitle and verse search to AI assistants.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// toolError turns a service error into a message safe to show the client.
// Only validation and lookup failures carry their detail.
func toolError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnsupportedType):
		return fmt.Errorf("invalid request: %w", err)
	case errors.Is(err, domain.ErrSearchUnavailable):
		return errors.New("search backend unavailable")
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("not found: %w", err)
	default:
		return errors.New("internal error")
	}
}
