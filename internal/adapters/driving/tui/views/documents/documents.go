// Package documents provides the indexed document list view for the TUI.
package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// ErrNoLibrary indicates document browsing is not available.
var ErrNoLibrary = errors.New("document library not available")

// View lists indexed documents with their tokenizer version.
type View struct {
	styles  *styles.Styles
	library driving.LibraryService
	ctx     context.Context

	documents    []domain.DocumentSummary
	selected     int
	scrollOffset int
	width        int
	height       int
	err          error
	loading      bool
}

// NewView creates a documents view. library may be nil.
func NewView(s *styles.Styles, library driving.LibraryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		library: library,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts loading the document list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.library == nil {
			return messages.DocumentsLoaded{Err: ErrNoLibrary}
		}
		docs, err := v.library.Documents(v.ctx)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.documents = msg.Documents
			if v.selected >= len(v.documents) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		v.keepVisible()
	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
		}
		v.keepVisible()
	case "r":
		return v, v.Init()
	case "enter":
		if doc := v.SelectedDocument(); doc != nil {
			id := doc.ID
			return v, func() tea.Msg {
				return messages.DocumentSelected{ID: id, Back: messages.ViewDocuments}
			}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}
	return v, nil
}

func (v *View) visibleRows() int {
	rows := v.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *View) keepVisible() {
	rows := v.visibleRows()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+rows {
		v.scrollOffset = v.selected - rows + 1
	}
}

// View renders the documents list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Indexed Documents"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.documents) == 0:
		b.WriteString(v.styles.Muted.Render("No documents indexed. Run 'sercha-captions ingest import'."))
	default:
		end := v.scrollOffset + v.visibleRows()
		if end > len(v.documents) {
			end = len(v.documents)
		}
		idWidth := v.width - 30
		if idWidth < 12 {
			idWidth = 12
		}
		for i := v.scrollOffset; i < end; i++ {
			doc := v.documents[i]
			line := fmt.Sprintf("%-*s %6d tokens  v%d", idWidth, list.Truncate(doc.ID, idWidth), doc.TokenCount, doc.TokenVersion)
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d documents", len(v.documents))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] read  [r] reload  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.keepVisible()
}

// Documents returns the loaded summaries.
func (v *View) Documents() []domain.DocumentSummary {
	return v.documents
}

// SelectedDocument returns the highlighted summary, or nil.
func (v *View) SelectedDocument() *domain.DocumentSummary {
	if v.selected < 0 || v.selected >= len(v.documents) {
		return nil
	}
	return &v.documents[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
