// Package srt extracts caption text from SubRip tracks.
package srt

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/cuetext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// timingRegex matches "00:00:01,000 --> 00:00:02,500", tolerating '.' separators.
var timingRegex = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}[,.]\d{1,3}\s+-->\s+\d{1,2}:\d{2}:\d{2}[,.]\d{1,3}`)

var indexRegex = regexp.MustCompile(`^\d+$`)

// Normaliser handles SubRip.
type Normaliser struct{}

// New creates a SubRip normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the format.
func (n *Normaliser) Name() string { return "srt" }

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/x-subrip", "application/srt", "text/srt"}
}

// SupportedExtensions returns the URL extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".srt"}
}

// Sniff accepts content whose first cue is an index line then a timing line.
func (n *Normaliser) Sniff(content []byte) bool {
	var first []string
	for _, line := range cuetext.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first = append(first, line)
		if len(first) == 2 {
			break
		}
	}
	return len(first) == 2 && indexRegex.MatchString(first[0]) && timingRegex.MatchString(first[1])
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 70
}

// Normalise returns the caption lines of every cue.
func (n *Normaliser) Normalise(_ context.Context, sub *domain.Subtitle) (string, error) {
	if sub == nil {
		return "", domain.ErrInvalidInput
	}

	var text []string
	inCue := false
	for _, line := range cuetext.Lines(sub.Content) {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			inCue = false
		case timingRegex.MatchString(trimmed):
			inCue = true
		case inCue:
			text = append(text, cuetext.StripMarkup(trimmed))
		}
		// Index lines sit outside a cue and are dropped.
	}
	return cuetext.Join(text), nil
}
