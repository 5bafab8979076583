// Package guide is the interactive class browser: a search box over the
// catalog and one foldable block per category.
package guide

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/twguide/logging"
	"github.com/grovetools/twguide/state"
	"github.com/grovetools/twguide/tui/components/help"
	"github.com/grovetools/twguide/tui/keymap"
	"github.com/grovetools/twguide/tui/theme"
	"github.com/grovetools/twguide/tui/utils/scrollbar"
	"github.com/sirupsen/logrus"
)

// Rows taken by everything but the viewport: title, subtitle, gap, search
// input, gap above the list and gap plus hint line below it.
const chromeHeight = 7

// DefaultSuggestions is the number of "did you mean" hints on an empty result.
const DefaultSuggestions = 3

// Options configures a Model.
type Options struct {
	Keys           keymap.Base
	Theme          *theme.Theme
	ShowExamples   bool
	HighlightStyle string
	// Suggestions caps the "did you mean" hints. Zero means
	// DefaultSuggestions and a negative value disables them.
	Suggestions int
}

// Model is the bubbletea model of the guide. It owns the Session; every
// search and fold event goes through it.
type Model struct {
	session *state.Session
	view    state.View

	keys     keymap.Base
	seq      *keymap.SequenceState
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	theme    *theme.Theme
	render   RenderOptions

	cursor      int
	headerLines []int
	width       int
	height      int
	ready       bool

	log *logrus.Entry
}

// New creates the guide model over session. A zero Options.Keys means the
// vim preset.
func New(session *state.Session, opts Options) Model {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = keymap.NewBase()
	}
	suggestions := opts.Suggestions
	if suggestions == 0 {
		suggestions = DefaultSuggestions
	}

	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = theme.IconSearch + " "
	ti.PromptStyle = t.Accent
	ti.TextStyle = t.Input
	ti.PlaceholderStyle = t.Placeholder
	ti.Cursor.Style = t.Cursor
	ti.CharLimit = 128
	ti.SetValue(session.SearchText())

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	m := Model{
		session:  session,
		view:     session.View(),
		keys:     keys,
		seq:      keymap.NewSequenceState(),
		input:    ti,
		viewport: vp,
		help: help.NewBuilder().
			WithKeys(keys).
			WithTheme(t).
			WithTitle("twguide keys").
			Build(),
		theme: t,
		render: RenderOptions{
			Theme:          t,
			ShowExamples:   opts.ShowExamples,
			Highlighter:    NewHighlighter(opts.HighlightStyle),
			Source:         session.Catalog(),
			MaxSuggestions: suggestions,
		},
		log: logging.NewLogger("guide"),
	}
	m.refresh(true)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current snapshot of search text, expansion and the
// filtered catalog.
func (m Model) State() state.View {
	return m.view
}

// Cursor returns the index of the selected category header.
func (m Model) Cursor() int {
	return m.cursor
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.input.Focused()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-2, 10)
		m.viewport.Width = max(msg.Width-1, 1)
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.render.Width = m.viewport.Width
		m.ready = true
		m.refresh(true)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.input.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateSearch handles keys while the search input has focus. Everything
// that is not a search binding is typed into the input.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur), msg.Type == tea.KeyEnter:
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.input.SetValue("")
		m.search("")
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.search(v)
	}
	return m, cmd
}

// updateBrowse handles keys while the list has focus, resolving multi-key
// sequences (gg, za, zR, zM) first.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result, idx := m.seq.Process(msg, keymap.SequenceBindings(m.keys)...)
	switch result {
	case keymap.SequencePending:
		return m, nil
	case keymap.SequenceMatch:
		m.seq.Clear()
		switch idx {
		case 0:
			m.cursor = 0
			m.viewport.GotoTop()
			m.refresh(true)
		case 1:
			m.toggleSelected()
		case 2:
			m.view = m.session.OnExpandAll()
			m.refresh(true)
		case 3:
			m.view = m.session.OnCollapseAll()
			m.refresh(true)
		}
		return m, nil
	}
	m.seq.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.Search):
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		m.input.SetValue("")
		m.search("")
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.view.Filtered.Len() - 1
		m.refresh(false)
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
	}
	return m, nil
}

func (m *Model) search(text string) {
	m.view = m.session.OnSearchTextChanged(text)
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh(true)
	m.log.WithFields(logrus.Fields{
		"search":     text,
		"categories": m.view.Filtered.Len(),
	}).Debug("Search changed")
}

func (m *Model) toggleSelected() {
	names := m.view.Filtered.Names()
	if m.cursor < 0 || m.cursor >= len(names) {
		return
	}
	m.view = m.session.OnCategoryToggled(names[m.cursor])
	m.refresh(true)
	m.log.WithFields(logrus.Fields{
		"category": names[m.cursor],
		"expanded": m.view.Expansion.IsExpanded(names[m.cursor]),
	}).Debug("Category toggled")
}

func (m *Model) moveCursor(delta int) {
	n := m.view.Filtered.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.refresh(true)
}

// refresh re-renders the list into the viewport. With follow set the
// viewport scrolls just enough to show the selected header.
func (m *Model) refresh(follow bool) {
	n := m.view.Filtered.Len()
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))

	opts := m.render
	opts.Cursor = m.cursor
	if n == 0 {
		opts.Cursor = -1
	}
	layout := RenderLayout(m.view, opts)
	m.headerLines = layout.HeaderLines
	m.viewport.SetContent(layout.Body)

	if !follow || m.cursor >= len(m.headerLines) {
		return
	}
	line := m.headerLines[m.cursor]
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.help.ShowAll {
		return m.help.View()
	}

	var footer string
	if m.input.Focused() {
		footer = m.help.ViewShort(m.keys.SearchingHelp())
	} else {
		footer = m.help.View()
	}
	total := m.session.Catalog().Stats().Entries
	shown := m.view.Filtered.Stats().Entries
	status := m.theme.Muted.Render(fmt.Sprintf("%d/%d classes", shown, total))

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(m.theme),
		"",
		m.input.View(),
		"",
		scrollbar.Overlay(&m.viewport, m.theme),
		"",
		status+"  "+footer,
	)
}
