// Package plaintext is the fallback normaliser for tracks that are already
// plain text, such as transcripts.
package plaintext

import (
	"context"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/cuetext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the format.
func (n *Normaliser) Name() string { return "plaintext" }

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", ""}
}

// SupportedExtensions returns the URL extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt"}
}

// Sniff accepts any valid UTF-8.
func (n *Normaliser) Sniff(content []byte) bool {
	return utf8.Valid(content)
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 1 // Fallback normaliser
}

// Normalise trims lines and drops blank and repeated ones.
func (n *Normaliser) Normalise(_ context.Context, sub *domain.Subtitle) (string, error) {
	if sub == nil {
		return "", domain.ErrInvalidInput
	}
	if !utf8.Valid(sub.Content) {
		return "", domain.ErrUnsupportedType
	}
	return cuetext.Join(cuetext.Lines(sub.Content)), nil
}
