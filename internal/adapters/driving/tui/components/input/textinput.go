// Package input provides the query box of the search view.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/styles"
)

// maxQueryLength bounds what the user can type.
const maxQueryLength = 256

// chromeWidth is the space taken by the title, badge and border.
const chromeWidth = 24

// SearchInput is a bubbles text input with a corpus badge in front of it.
// Value, SetValue, Focus, Blur, Focused and Reset come from the embedded model.
type SearchInput struct {
	textinput.Model

	styles *styles.Styles
	label  string
	total  int
}

// NewSearchInput returns a focused, empty query box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	m := textinput.New()
	m.Placeholder = `sal terra  or  'luz do mundo'`
	m.CharLimit = maxQueryLength
	m.Focus()

	in := &SearchInput{Model: m, styles: s}
	in.SetWidth(74)
	return in
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders "Search [corpus] [query box]" on one line.
func (s *SearchInput) View() string {
	parts := []string{s.styles.Title.Render("Search ")}
	if s.label != "" {
		parts = append(parts, s.styles.Badge.Render(s.label), " ")
	}
	parts = append(parts, s.styles.InputField.Render(s.Model.View()))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// SetLabel sets the badge text.
func (s *SearchInput) SetLabel(label string) {
	s.label = label
}

// Label returns the badge text.
func (s *SearchInput) Label() string {
	return s.label
}

// SetWidth sizes the query box to fit a line of width cells.
func (s *SearchInput) SetWidth(width int) {
	s.total = width
	s.Model.Width = max(width-chromeWidth, 20)
}

// Width returns the line width set by SetWidth.
func (s *SearchInput) Width() int {
	return s.total
}
