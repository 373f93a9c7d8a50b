// Package webvtt extracts cue text from WebVTT tracks, including the rolling
// auto-caption variant served by YouTube.
package webvtt

import (
	"context"
	"strings"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/cuetext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles WebVTT.
type Normaliser struct{}

// New creates a WebVTT normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the format.
func (n *Normaliser) Name() string { return "webvtt" }

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/vtt"}
}

// SupportedExtensions returns the URL extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".vtt"}
}

// Sniff checks for the WEBVTT signature.
func (n *Normaliser) Sniff(content []byte) bool {
	return cuetext.TrimmedPrefix(content, "WEBVTT")
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 80
}

// Normalise returns the cue payloads, one line per caption line.
func (n *Normaliser) Normalise(_ context.Context, sub *domain.Subtitle) (string, error) {
	if sub == nil {
		return "", domain.ErrInvalidInput
	}

	var text []string
	inHeader := true
	inCue := false
	skipBlock := false

	for _, line := range cuetext.Lines(sub.Content) {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			inHeader = false
			inCue = false
			skipBlock = false
			continue
		}
		if inHeader || skipBlock {
			continue
		}
		if inCue {
			text = append(text, cuetext.StripMarkup(trimmed))
			continue
		}

		switch {
		case strings.Contains(trimmed, "-->"):
			inCue = true
		case isBlockKeyword(trimmed):
			skipBlock = true
		}
		// Anything else before the timing line is a cue identifier.
	}

	return cuetext.Join(text), nil
}

func isBlockKeyword(line string) bool {
	for _, kw := range []string{"NOTE", "STYLE", "REGION"} {
		if line == kw || strings.HasPrefix(line, kw+" ") || strings.HasPrefix(line, kw+"\t") {
			return true
		}
	}
	return false
}
