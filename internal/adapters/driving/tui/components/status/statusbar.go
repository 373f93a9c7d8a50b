// Package status renders the one-line bar under the search results.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/styles"
)

type phase int

const (
	idle phase = iota
	searching
	showing
	failed
)

// Bar follows one search from submission to results or failure. The left
// side reports progress; the right side lists the keys that apply.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	phase  phase
	corpus string
	query  string
	count  int
	note   string
}

// NewBar returns an idle bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80}
}

// Ready clears any previous search.
func (b *Bar) Ready() {
	*b = Bar{styles: b.styles, keymap: b.keymap, width: b.width}
}

// Searching marks query as submitted against corpus.
func (b *Bar) Searching(query, corpus string) {
	b.phase, b.query, b.corpus, b.note = searching, query, corpus, ""
}

// Found records a completed search.
func (b *Bar) Found(count int, corpus string) {
	b.phase, b.count, b.corpus, b.note = showing, count, corpus, ""
}

// ShowResults returns to the last result count without searching again.
func (b *Bar) ShowResults() {
	b.phase = showing
}

// Failed records err. Its text becomes the note.
func (b *Bar) Failed(err error) {
	b.phase, b.note = failed, err.Error()
}

// SetNote attaches a short remark to the current state.
func (b *Bar) SetNote(note string) {
	b.note = note
}

// Note returns the current remark or error text.
func (b *Bar) Note() string {
	return b.note
}

// Showing reports whether the bar is displaying results.
func (b *Bar) Showing() bool {
	return b.phase == showing
}

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the bar at its full width. Hints are dropped when they
// do not fit beside the status.
func (b *Bar) View() string {
	left := b.status()
	right := b.hints()

	room := b.width - b.styles.StatusBar.GetHorizontalFrameSize() - lipgloss.Width(left)
	gap := room - lipgloss.Width(right)
	if gap < 1 {
		right, gap = "", max(room, 0)
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) status() string {
	switch b.phase {
	case searching:
		return b.styles.Muted.Render(fmt.Sprintf("Searching %s for %q...", b.corpus, b.query))
	case failed:
		return b.styles.Error.Render("Error: " + b.note)
	case showing:
		text := fmt.Sprintf("%d results", b.count)
		if b.count == 1 {
			text = "1 result"
		}
		if b.corpus != "" {
			text += " in " + b.corpus
		}
		if b.note != "" {
			text += " | " + b.note
		}
		return b.styles.Normal.Render(text)
	case idle:
	}
	if b.note != "" {
		return b.styles.Muted.Render(b.note)
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) hints() string {
	bindings := b.keymap.InputHelp()
	if b.phase == showing {
		bindings = b.keymap.ResultsHelp()
	}
	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		parts[i] = helpText(binding)
	}
	return b.styles.Muted.Render(strings.Join(parts, " | "))
}

func helpText(binding key.Binding) string {
	h := binding.Help()
	return h.Key + ": " + h.Desc
}
