package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

func (m *MockSearchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return []domain.SearchResult{}, nil
}

// MockLibraryService implements driving.LibraryService for testing.
type MockLibraryService struct {
	Docs map[string]string
}

func (m *MockLibraryService) Documents(context.Context) ([]domain.DocumentSummary, error) {
	out := make([]domain.DocumentSummary, 0, len(m.Docs))
	for id := range m.Docs {
		out = append(out, domain.DocumentSummary{ID: id, TokenVersion: 2})
	}
	return out, nil
}

func (m *MockLibraryService) Document(_ context.Context, id string) (*domain.IndexedDocument, error) {
	text, ok := m.Docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.IndexedDocument{ID: id, ContentText: text}, nil
}

func (m *MockLibraryService) VerseVersions(context.Context) ([]string, error) {
	return []string{"ARA"}, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{
		Search: &MockSearchService{
			SearchFunc: func(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
				if opts.Corpus == domain.CorpusVerses {
					return []domain.SearchResult{{
						Reference: "40.5.13",
						Text:      "Vós sois o sal da terra",
						Verse:     &domain.VerseRecord{Version: "ARA", Book: 40, Chapter: 5, Verse: 13},
					}}, nil
				}
				return []domain.SearchResult{{Reference: "vid-1", DocumentID: "vid-1", Text: "gosto de " + query}}, nil
			},
		},
		Library: &MockLibraryService{Docs: map[string]string{"vid-1": "gosto de sal na comida"}},
	})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

// send delivers msg and feeds back the app messages its commands produce.
// Other commands, such as cursor blinks, are not run.
func send(app *App, msg tea.Msg) {
	_, cmd := app.Update(msg)
	for cmd != nil {
		next := cmd()
		if !isAppMessage(next) {
			return
		}
		_, cmd = app.Update(next)
	}
}

func isAppMessage(msg tea.Msg) bool {
	switch msg.(type) {
	case messages.SearchCompleted, messages.DocumentSelected, messages.DocumentContentLoaded,
		messages.DocumentsLoaded, messages.ViewChanged, messages.ErrorOccurred:
		return true
	}
	return false
}

// typeText types into the focused input without running its commands.
func typeText(app *App, text string) {
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&Ports{Search: &MockSearchService{}})

	require.NoError(t, err)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingSearchService)

	_, err = NewApp(nil)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Search: &MockSearchService{}})
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Sercha Captions")
}

func TestApp_SearchAndOpenDocument(t *testing.T) {
	app := newTestApp(t)

	typeText(app, "sal")
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, app.SearchView().Results(), 1)
	assert.Contains(t, app.View(), "vid-1")

	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.ViewDocContent, app.CurrentView())
	assert.Equal(t, "gosto de sal na comida", app.DocContentView().Content())
	assert.Contains(t, app.View(), "gosto de sal na comida")

	send(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Len(t, app.SearchView().Results(), 1, "results survive the round trip")
}

func TestApp_VerseSearch(t *testing.T) {
	app := newTestApp(t)

	send(app, tea.KeyMsg{Type: tea.KeyTab})
	typeText(app, "terra")
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, domain.CorpusVerses, app.SearchView().Corpus())
	assert.Contains(t, app.View(), "ARA 40.5.13")

	send(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Equal(t, "verse results have no document", app.SearchView().StatusMessage())
}

func TestApp_DocumentsView(t *testing.T) {
	app := newTestApp(t)
	typeText(app, "sal")
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
	assert.Contains(t, app.View(), "vid-1")

	send(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, messages.ViewDocContent, app.CurrentView())

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)
	typeText(app, "sal")
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "subtitles/verses")

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_SearchError(t *testing.T) {
	app, err := NewApp(&Ports{Search: &MockSearchService{
		SearchFunc: func(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
			return nil, domain.ErrSearchUnavailable
		},
	}})
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	typeText(app, "sal")
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, app.Err(), domain.ErrSearchUnavailable)
	assert.True(t, app.SearchView().InputFocused())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.Equal(t, boom, app.Err())
	assert.Equal(t, boom, app.SearchView().Err())
}
