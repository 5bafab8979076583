package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/twguide/tui/keymap"
	"github.com/stretchr/testify/assert"
)

func TestViewShort(t *testing.T) {
	m := New(keymap.DefaultVim())

	out := m.View()
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "toggle category")
	assert.Contains(t, out, "quit")
	assert.NotContains(t, out, "page down")
}

func TestViewShort_SkipsDisabled(t *testing.T) {
	km := keymap.DefaultVim()
	km.Help.SetEnabled(false)
	m := New(km)

	assert.NotContains(t, m.ViewShort([]key.Binding{km.Help, km.Quit}), "help")
	assert.Empty(t, m.ViewShort(nil))
}

func TestToggle_FullHelp(t *testing.T) {
	m := NewBuilder().
		WithKeys(keymap.DefaultVim()).
		WithTitle("Keys").
		WithSize(120, 60).
		Build()

	m.Toggle()
	assert.True(t, m.ShowAll)

	out := m.View()
	for _, want := range []string{"Keys", "Navigation", "Search", "Fold", "System", "expand all", "clear search"} {
		assert.Contains(t, out, want)
	}
}

func TestUpdate_ClosesOverlay(t *testing.T) {
	m := NewBuilder().WithSize(120, 60).Build()
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.ShowAll)

	m.Toggle()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowAll)
}

func TestUpdate_IgnoresKeysWhenClosed(t *testing.T) {
	m := New(keymap.DefaultVim())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, m.ShowAll)
	assert.Nil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(keymap.DefaultVim())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)
}
