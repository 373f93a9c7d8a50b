// Package messages holds the tea.Msg values exchanged between the root
// model and its views.
package messages

import (
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// ViewType names a screen of the application.
type ViewType int

const (
	ViewSearch ViewType = iota
	ViewDocuments
	ViewDocContent
	ViewHelp
)

var viewNames = [...]string{
	ViewSearch:     "search",
	ViewDocuments:  "documents",
	ViewDocContent: "doc_content",
	ViewHelp:       "help",
}

func (v ViewType) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "unknown"
	}
	return viewNames[v]
}

// Navigation.
type (
	// ViewChanged switches the active screen.
	ViewChanged struct{ View ViewType }

	// DocumentSelected opens a document. Esc returns to Back.
	DocumentSelected struct {
		ID   string
		Back ViewType
	}

	// Quit exits the program.
	Quit struct{}
)

// Results of service calls. Err is set instead of the payload on failure.
type (
	SearchCompleted struct {
		Query   string
		Corpus  domain.Corpus
		Results []domain.SearchResult
		Err     error
	}

	DocumentsLoaded struct {
		Documents []domain.DocumentSummary
		Err       error
	}

	DocumentContentLoaded struct {
		DocumentID string
		Content    string
		Err        error
	}

	// ErrorOccurred reports a failure outside a service call.
	ErrorOccurred struct{ Err error }
)
