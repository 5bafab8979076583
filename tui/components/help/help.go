// Package help renders the one-line key hint footer and the full, sectioned
// help overlay of the guide.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/twguide/tui/keymap"
	"github.com/grovetools/twguide/tui/theme"
)

// Model is an embeddable help component.
type Model struct {
	Keys     keymap.Base
	ShowAll  bool
	Width    int
	Height   int
	Theme    *theme.Theme
	Title    string
	viewport viewport.Model
}

// New creates a help model for keys.
func New(keys keymap.Base) Model {
	return NewBuilder().WithKeys(keys).Build()
}

// Update handles resizes and, while the overlay is open, closing and
// scrolling it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if m.ShowAll {
			if key.Matches(msg, m.Keys.Help) || key.Matches(msg, m.Keys.Quit) || msg.Type == tea.KeyEsc {
				m.Toggle()
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the overlay when ShowAll is set and the short help otherwise.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()

		if m.viewport.TotalLineCount() > m.viewport.Height {
			var indicator string
			switch {
			case m.viewport.AtTop():
				indicator = "↓ more"
			case m.viewport.AtBottom():
				indicator = "↑ more"
			default:
				indicator = "↕ more"
			}
			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}

		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	return m.ViewShort(m.Keys.ShortHelp())
}

// ViewShort renders group as a single hint line.
func (m Model) ViewShort(group []key.Binding) string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc),
			))
		}
	}
	if len(pairs) == 0 {
		return ""
	}

	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// setViewportContent lays out the sections and loads them into the viewport.
func (m *Model) setViewportContent() {
	const (
		verticalMargin   = 4
		horizontalMargin = 4
		gutterWidth      = 4
	)

	content := m.renderHelpContent(m.Keys.Sections(), verticalMargin, horizontalMargin, gutterWidth)
	m.viewport.SetContent(content)

	// One line is reserved for the scroll indicator.
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(m.Height-verticalMargin-1, 1)
}

// renderHelpContent uses one column when everything fits vertically and
// otherwise the widest layout (three then two columns) that fits the width.
func (m *Model) renderHelpContent(sections []keymap.Section, vMargin, hMargin, gutter int) string {
	blocks := m.collectSectionBlocks(sections)
	if len(blocks) == 0 {
		return ""
	}

	titleText := m.Title
	if titleText == "" {
		titleText = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)
	withTitle := func(body string) string {
		return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(titleText), body)
	}

	single := withTitle(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if lipgloss.Height(single) <= m.Height-vMargin-1 {
		return single
	}

	for _, cols := range []int{3, 2} {
		if len(blocks) < cols {
			continue
		}
		multi := withTitle(buildMultiColumnLayout(blocks, cols, gutter))
		if lipgloss.Width(multi) <= m.Width-hMargin {
			return multi
		}
	}

	return single
}

// buildMultiColumnLayout adds each block to the currently shortest column.
func buildMultiColumnLayout(blocks []string, numCols, gutter int) string {
	columns := make([][]string, numCols)
	heights := make([]int, numCols)

	for _, block := range blocks {
		minIdx := 0
		for i := 1; i < numCols; i++ {
			if heights[i] < heights[minIdx] {
				minIdx = i
			}
		}
		columns[minIdx] = append(columns[minIdx], block)
		heights[minIdx] += lipgloss.Height(block)
	}

	gutterStr := strings.Repeat(" ", gutter)
	result := lipgloss.JoinVertical(lipgloss.Left, columns[0]...)
	for i := 1; i < numCols; i++ {
		if len(columns[i]) == 0 {
			continue
		}
		result = lipgloss.JoinHorizontal(lipgloss.Top, result, gutterStr, lipgloss.JoinVertical(lipgloss.Left, columns[i]...))
	}
	return result
}

func (m *Model) collectSectionBlocks(sections []keymap.Section) []string {
	var blocks []string
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	for _, section := range sections {
		var rows [][]string
		for _, binding := range section.FilterEnabled() {
			keyStr := binding.Help().Key
			desc := binding.Help().Desc
			if keyStr != "" && desc != "" {
				rows = append(rows, []string{
					keyStyle.Render(keyStr),
					m.Theme.Muted.Italic(true).Render(desc),
				})
			}
		}
		if len(rows) > 0 {
			blocks = append(blocks, m.renderSectionBox(section.Name, rows))
		}
	}
	return blocks
}

// renderSectionBox renders one section as a titled, bordered key table.
func (m *Model) renderSectionBox(title string, rows [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range rows {
		table = table.Row(row...)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(sectionIcon(title)+" "+title),
		table.String(),
	)
	return boxStyle.Render(content)
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionSearch:
		return theme.IconSearch
	case keymap.SectionFold:
		return theme.IconCategory
	case keymap.SectionSystem:
		return theme.IconInfo
	default:
		return theme.IconBullet
	}
}

// Toggle opens or closes the overlay. Opening re-lays out the content and
// scrolls to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetKeys replaces the keymap, e.g. after the config was reloaded.
func (m *Model) SetKeys(keys keymap.Base) {
	m.Keys = keys
}

// Builder provides a fluent interface for creating help models.
type Builder struct {
	model Model
}

func NewBuilder() *Builder {
	vp := viewport.New(0, 0)
	// The guide owns mouse handling.
	vp.MouseWheelEnabled = false
	return &Builder{
		model: Model{
			Keys:     keymap.NewBase(),
			Theme:    theme.DefaultTheme,
			viewport: vp,
		},
	}
}

func (b *Builder) WithKeys(keys keymap.Base) *Builder {
	b.model.Keys = keys
	return b
}

func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	b.model.Theme = t
	return b
}

func (b *Builder) WithSize(width, height int) *Builder {
	b.model.Width = width
	b.model.Height = height
	return b
}

// WithTitle sets the title of the full help overlay.
func (b *Builder) WithTitle(title string) *Builder {
	b.model.Title = title
	return b
}

func (b *Builder) Build() Model {
	return b.model
}
