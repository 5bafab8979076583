package guide

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/state"
	"github.com/grovetools/twguide/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noCursor() RenderOptions {
	return RenderOptions{Cursor: -1}
}

func TestRender_CollapsedShowsHeadersOnly(t *testing.T) {
	view := state.NewSession(catalog.Default()).View()

	out := Render(view, noCursor())

	for _, name := range catalog.Default().Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, theme.IconChevronDown)
	assert.NotContains(t, out, theme.IconChevronUp)
	assert.NotContains(t, out, "Sets max-width")
	assert.NotContains(t, out, "inline-block")
}

func TestRender_ExpandedCategoryListsItsClasses(t *testing.T) {
	view := state.NewSession(catalog.Default(), state.WithInitialExpansion("Layout")).View()

	out := Render(view, noCursor())

	assert.Contains(t, out, "Container")
	assert.Contains(t, out, "Display")
	layout, ok := catalog.Default().Category("Layout")
	require.True(t, ok)
	for _, sub := range layout.Subcategories {
		for _, e := range sub.Entries {
			assert.Contains(t, out, e.ClassName)
			assert.Contains(t, out, e.Description)
		}
	}
	// Flexbox stays collapsed.
	assert.NotContains(t, out, "flex-row")
	// Examples are off by default.
	assert.NotContains(t, out, `<div class="container`)
}

func TestRender_ChevronAndCount(t *testing.T) {
	sess := state.NewSession(catalog.Default())
	sess.OnSearchTextChanged("flex")
	view := sess.OnCategoryToggled("Flexbox")

	lines := strings.Split(Render(view, noCursor()), "\n")
	require.NotEmpty(t, lines)

	var layoutHeader, flexHeader string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Layout"):
			layoutHeader = l
		case strings.Contains(l, "Flexbox"):
			flexHeader = l
		}
	}
	assert.Contains(t, layoutHeader, theme.IconChevronDown)
	assert.Contains(t, layoutHeader, "(1)")
	assert.Contains(t, flexHeader, theme.IconChevronUp)
	assert.Contains(t, flexHeader, "(2)")
}

func TestRender_FlexSearchExpandedAll(t *testing.T) {
	sess := state.NewSession(catalog.Default(), state.WithSearchText("flex"))
	view := sess.OnExpandAll()

	out := Render(view, noCursor())

	for _, class := range []string{"flex", "flex-row", "flex-col", "gap-2"} {
		assert.Contains(t, out, class)
	}
	assert.NotContains(t, out, "Typography")
	assert.NotContains(t, out, "justify-center")
}

func TestRender_EmptyState(t *testing.T) {
	sess := state.NewSession(catalog.Default())
	view := sess.OnSearchTextChanged("zzz-no-match")

	out := Render(view, noCursor())

	assert.Contains(t, out, `No classes found matching "zzz-no-match"`)
	assert.NotContains(t, out, "Did you mean")
}

func TestRender_EmptyStateKeepsTextLiteral(t *testing.T) {
	text := `a"b\c `
	assert.Equal(t, `No classes found matching "a"b\c "`, EmptyMessage(text))
}

func TestRender_Suggestions(t *testing.T) {
	sess := state.NewSession(catalog.Default())
	view := sess.OnSearchTextChanged("flx")

	opts := noCursor()
	opts.Source = sess.Catalog()
	opts.MaxSuggestions = 1

	out := Render(view, opts)
	assert.Contains(t, out, `No classes found matching "flx"`)
	assert.Contains(t, out, "Did you mean: ")
	assert.Contains(t, out, "flex")
}

func TestRender_Examples(t *testing.T) {
	view := state.NewSession(catalog.Default(), state.WithInitialExpansion("Layout")).View()

	opts := noCursor()
	opts.ShowExamples = true
	out := Render(view, opts)

	assert.Contains(t, out, `<div class="container mx-auto bg-blue-100 p-4">Container content</div>`)
}

func TestRenderLayout_HeaderLines(t *testing.T) {
	c := catalog.Default()
	layout := RenderLayout(state.NewSession(c).View(), noCursor())

	require.Len(t, layout.HeaderLines, c.Len())
	lines := strings.Split(layout.Body, "\n")
	for i, name := range c.Names() {
		line := layout.HeaderLines[i]
		require.Less(t, line, len(lines))
		assert.Contains(t, lines[line], name)
	}

	expanded := RenderLayout(state.NewSession(c, state.WithInitialExpansion("Layout")).View(), noCursor())
	assert.Greater(t, expanded.HeaderLines[1], layout.HeaderLines[1])
}

func TestRender_Cursor(t *testing.T) {
	view := state.NewSession(catalog.Default()).View()

	opts := noCursor()
	opts.Cursor = 1
	lines := strings.Split(RenderLayout(view, opts).Body, "\n")

	assert.True(t, strings.HasPrefix(lines[2], theme.IconArrow))
	assert.False(t, strings.HasPrefix(lines[0], theme.IconArrow))
}

func TestRender_Width(t *testing.T) {
	view := state.NewSession(catalog.Default(), state.WithInitialExpansion("Layout")).View()

	opts := noCursor()
	opts.Width = 24
	opts.ShowExamples = true
	for _, l := range strings.Split(Render(view, opts), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 24)
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(nil)
	assert.Contains(t, out, Title)
	assert.Contains(t, out, Subtitle)
}
