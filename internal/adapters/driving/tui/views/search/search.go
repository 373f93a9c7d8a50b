// Package search provides the query view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
)

// View is the search view: query input, corpus badge, results and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	corpus domain.Corpus

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true while typing, false while navigating results
}

// NewView creates a search view over the subtitles corpus.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		corpus:        domain.CorpusSubtitles,
		width:         80,
		height:        24,
		focusInput:    true,
	}
	v.input.SetLabel(string(v.corpus))
	return v
}

// WithContext sets the context used for searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyTab {
		v.ToggleCorpus()
		return v, nil
	}

	if v.focusInput {
		switch msg.Type {
		case tea.KeyEsc:
			if v.list.Count() > 0 {
				v.focusInput = false
				v.input.Blur()
				v.statusbar.ShowResults()
			}
			return v, nil
		case tea.KeyEnter:
			query := v.input.Value()
			if query == "" {
				return v, nil
			}
			v.statusbar.Searching(query, string(v.corpus))
			v.focusInput = false
			v.input.Blur()
			return v, v.performSearch(query)
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}

	switch {
	case msg.Type == tea.KeyEnter:
		return v, v.openSelected()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Documents):
		return v, changeView(messages.ViewDocuments)
	case keymap.Matches(msg.String(), v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// openSelected opens the document behind a subtitle result.
// Verses have no document to open.
func (v *View) openSelected() tea.Cmd {
	result := v.list.SelectedResult()
	if result == nil {
		return nil
	}
	if result.DocumentID == "" {
		v.statusbar.SetNote("verse results have no document")
		return nil
	}
	id := result.DocumentID
	return func() tea.Msg {
		return messages.DocumentSelected{ID: id, Back: messages.ViewSearch}
	}
}

func (v *View) performSearch(query string) tea.Cmd {
	corpus := v.corpus
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		results, err := v.searchService.Search(v.ctx, query, domain.SearchOptions{Corpus: corpus})
		return messages.SearchCompleted{Query: query, Corpus: corpus, Results: results, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		v.focusInput = true
		v.input.Focus()
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.Found(len(msg.Results), string(msg.Corpus))
	v.focusInput = false
	v.input.Blur()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.Failed(err)
}

// ToggleCorpus switches between subtitles and verses. Existing results
// stay until the next search.
func (v *View) ToggleCorpus() {
	if v.corpus == domain.CorpusSubtitles {
		v.corpus = domain.CorpusVerses
	} else {
		v.corpus = domain.CorpusSubtitles
	}
	v.input.SetLabel(string(v.corpus))
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Sercha Captions"), "", v.input.View(), "")
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view has dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Corpus returns the corpus the next search will use.
func (v *View) Corpus() domain.Corpus {
	return v.corpus
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// StatusMessage returns the status bar note.
func (v *View) StatusMessage() string {
	return v.statusbar.Note()
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}
