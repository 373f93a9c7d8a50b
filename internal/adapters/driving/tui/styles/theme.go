// Package styles holds the palette and lipgloss styles shared by the views.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette names the colours the interface is drawn with.
type Palette struct {
	Accent    lipgloss.Color // titles, selection background
	Reference lipgloss.Color // document IDs and verse references
	Text      lipgloss.Color
	Dim       lipgloss.Color // hints, previews, counters
	Surface   lipgloss.Color // status bar background
	Edge      lipgloss.Color // input border
	Badge     lipgloss.Color // active corpus label
	Failure   lipgloss.Color
}

// DefaultPalette is a warm amber-on-stone palette.
func DefaultPalette() *Palette {
	return &Palette{
		Accent:    "#D97706",
		Reference: "#0EA5E9",
		Text:      "#E7E5E4",
		Dim:       "#78716C",
		Surface:   "#0C0A09",
		Edge:      "#44403C",
		Badge:     "#FDE68A",
		Failure:   "#F87171",
	}
}

// Styles are the rendered styles built from a Palette.
type Styles struct {
	palette *Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Reference  lipgloss.Style
	Badge      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles builds styles from p. A nil palette uses DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		palette:   p,
		Title:     fg(p.Accent).Bold(true),
		Subtitle:  fg(p.Reference).Bold(true),
		Normal:    fg(p.Text),
		Muted:     fg(p.Dim),
		Selected:  fg(p.Text).Background(p.Accent).Bold(true),
		Error:     fg(p.Failure),
		Help:      fg(p.Dim).Italic(true),
		Reference: fg(p.Reference),
		Badge:     fg(p.Surface).Background(p.Badge).Bold(true).Padding(0, 1),
		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Edge).
			Padding(0, 1),
		StatusBar: fg(p.Dim).Background(p.Surface).Padding(0, 1),
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the colours the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}
