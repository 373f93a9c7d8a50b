// Package keymap lists the key bindings of the TUI and the help groups
// shown for them.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding. Open and Search share enter; which one
// applies depends on whether the query input has focus.
type KeyMap struct {
	Quit, Help, Back     key.Binding
	Search, Corpus       key.Binding
	Up, Down, Open       key.Binding
	NewSearch, Documents key.Binding
}

func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:      bind("q", "quit", "q", "ctrl+c"),
		Help:      bind("?", "help", "?"),
		Back:      bind("esc", "back", "esc"),
		Search:    bind("enter", "search", "enter"),
		Corpus:    bind("tab", "subtitles/verses", "tab"),
		Up:        bind("↑/k", "up", "up", "k"),
		Down:      bind("↓/j", "down", "down", "j"),
		Open:      bind("enter", "open", "enter"),
		NewSearch: bind("n", "new search", "n"),
		Documents: bind("d", "documents", "d"),
	}
}

// InputHelp is shown while the query input has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Search, k.Corpus, k.Back}
}

// ResultsHelp is shown while browsing results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Open, k.Documents, k.Help, k.Quit}
}

// FullHelp groups every binding for the help screen.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Corpus, k.NewSearch},
		{k.Up, k.Down, k.Open},
		{k.Documents, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches reports whether keyStr, as returned by tea.KeyMsg.String, is
// one of binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
