package status

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBar_Lifecycle(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)
	assert.Contains(t, b.View(), "Ready")

	b.Searching("sal", "verses")
	assert.Contains(t, b.View(), `Searching verses for "sal"...`)
	assert.False(t, b.Showing())

	b.Found(7, "verses")
	assert.Contains(t, b.View(), "7 results in verses")
	assert.True(t, b.Showing())

	b.Found(1, "")
	assert.Contains(t, b.View(), "1 result")
	assert.NotContains(t, b.View(), " in ")

	b.Failed(errors.New("index locked"))
	assert.Contains(t, b.View(), "Error: index locked")
	assert.Equal(t, "index locked", b.Note())

	b.ShowResults()
	assert.True(t, b.Showing())
}

func TestBar_NoteAppendsToResults(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)
	b.Found(2, "verses")

	b.SetNote("verse results have no document")

	assert.Contains(t, b.View(), "2 results in verses | verse results have no document")
}

func TestBar_HintsFollowPhase(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)
	assert.Contains(t, b.View(), "tab: subtitles/verses")

	b.Found(3, "subtitles")
	assert.Contains(t, b.View(), "d: documents")
}

func TestBar_FitsWidth(t *testing.T) {
	b := NewBar(nil, nil)
	b.Found(3, "subtitles")

	for _, width := range []int{40, 80, 120} {
		b.SetWidth(width)
		out := b.View()
		assert.Equal(t, width, lipgloss.Width(out), "width %d", width)
		assert.Contains(t, out, "3 results")
	}
}

func TestBar_Ready(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(60)
	b.Failed(errors.New("x"))

	b.Ready()

	assert.Empty(t, b.Note())
	assert.False(t, b.Showing())
	assert.Equal(t, 60, lipgloss.Width(b.View()))
}
