// Package list renders search results as a scrolling two-line list.
package list

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// linesPerResult is the rendered height of one entry: title, then preview.
const linesPerResult = 2

// headerLines is the count line plus a blank line.
const headerLines = 2

// ResultList shows results with one selected. The window scrolls so the
// selection stays visible.
type ResultList struct {
	styles   *styles.Styles
	results  []domain.SearchResult
	selected int
	width    int
	height   int
}

// NewResultList returns an empty list sized for an 80x10 area.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{styles: s, width: 80, height: 10}
}

// Update moves the selection on up/k and down/j.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			r.Move(-1)
		case "down", "j":
			r.Move(1)
		}
	}
	return r, nil
}

// Move shifts the selection by delta, stopping at either end.
func (r *ResultList) Move(delta int) {
	if len(r.results) == 0 {
		return
	}
	r.selected = min(max(r.selected+delta, 0), len(r.results)-1)
}

// window returns the range of results that fit, ending at the selection
// once it passes the first page.
func (r *ResultList) window() (start, end int) {
	rows := max((r.height-headerLines)/linesPerResult, 1)
	if r.selected >= rows {
		start = r.selected - rows + 1
	}
	return start, min(start+rows, len(r.results))
}

// View renders the count header and the visible results.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))))
	b.WriteString("\n")
	start, end := r.window()
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(r.entry(i))
	}
	return b.String()
}

func (r *ResultList) entry(i int) string {
	res := &r.results[i]
	var title string
	if i == r.selected {
		title = r.styles.Selected.Render("> " + Title(res))
	} else {
		title = "  " + r.styles.Reference.Render(Title(res))
	}
	preview := Truncate(strings.Join(strings.Fields(res.Text), " "), max(r.width-6, 20))
	return title + "\n" + r.styles.Muted.Render("    "+preview)
}

// Title is the heading of a result: translation and reference for a
// verse, the document ID for a subtitle.
func Title(result *domain.SearchResult) string {
	switch {
	case result.Verse != nil:
		return result.Verse.Version + " " + result.Reference
	case result.Reference == "":
		return "(untitled)"
	default:
		return result.Reference
	}
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetResults replaces the results and selects the first.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the displayed results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// Selected returns the selected index.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected selects index. Out-of-range values are ignored.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the selected result, or nil for an empty list.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 {
		return nil
	}
	return &r.results[r.selected]
}

// SetDimensions sets the area the list renders into.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}
