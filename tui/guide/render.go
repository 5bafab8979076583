package guide

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/state"
	"github.com/grovetools/twguide/tui/theme"
)

const (
	Title             = "Tailwind CSS Classes Visual Guide"
	Subtitle          = "Interactive examples of commonly used Tailwind utility classes"
	SearchPlaceholder = "Search classes (e.g., flex, bg-blue, rounded)..."
)

const (
	entryIndent   = 4
	exampleIndent = 6
)

// RenderOptions controls how a View is drawn. A nil Theme means
// theme.DefaultTheme.
type RenderOptions struct {
	Theme *theme.Theme
	// Width truncates every line when positive.
	Width int
	// Cursor is the index of the selected category header among the
	// retained categories. Negative means no selection.
	Cursor       int
	ShowExamples bool
	// Highlighter colors example markup. Nil shows it verbatim.
	Highlighter *Highlighter
	// Source is the unfiltered catalog used for "did you mean" hints.
	Source         *catalog.Catalog
	MaxSuggestions int
}

// Layout is a rendered body plus the line of each category header in it.
type Layout struct {
	Body        string
	HeaderLines []int
}

// RenderHeader renders the title and subtitle.
func RenderHeader(t *theme.Theme) string {
	if t == nil {
		t = theme.DefaultTheme
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(Title),
		t.Subtitle.Render(Subtitle),
	)
}

// Render draws the retained categories of view under its expansion state,
// or the empty-state message when nothing matches.
func Render(view state.View, opts RenderOptions) string {
	return RenderLayout(view, opts).Body
}

// EmptyMessage is the text shown when a search retains nothing. The search
// text is quoted literally.
func EmptyMessage(searchText string) string {
	return `No classes found matching "` + searchText + `"`
}

// RenderLayout is Render that also reports where the headers are, so the
// caller can keep the cursor in view.
func RenderLayout(view state.View, opts RenderOptions) Layout {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}

	if view.Filtered.IsEmpty() {
		return Layout{Body: clip(renderEmpty(view.SearchText, t, opts), opts.Width)}
	}

	var lines []string
	var headers []int
	for i, cat := range view.Filtered.Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		expanded := view.Expansion.IsExpanded(cat.Name)
		headers = append(headers, len(lines))
		lines = append(lines, renderCategoryHeader(cat, expanded, i == opts.Cursor, t))
		if expanded {
			lines = append(lines, renderCategoryBody(cat, t, opts)...)
		}
	}

	return Layout{
		Body:        clip(strings.Join(lines, "\n"), opts.Width),
		HeaderLines: headers,
	}
}

func renderCategoryHeader(cat catalog.Category, expanded, selected bool, t *theme.Theme) string {
	chevron := theme.IconChevronDown
	if expanded {
		chevron = theme.IconChevronUp
	}

	marker := "  "
	name := t.CategoryHeader.Render(cat.Name)
	if selected {
		marker = t.Cursor.Render(theme.IconArrow) + " "
		name = t.CategorySelected.Render(cat.Name)
	}
	return fmt.Sprintf("%s%s %s %s", marker, name, chevron, t.Count.Render(fmt.Sprintf("(%d)", cat.Len())))
}

func renderCategoryBody(cat catalog.Category, t *theme.Theme, opts RenderOptions) []string {
	var lines []string
	indent := strings.Repeat(" ", entryIndent)
	for _, sub := range cat.Subcategories {
		lines = append(lines, "  "+t.Subcategory.Render(sub.Name))

		width := 0
		for _, e := range sub.Entries {
			width = max(width, lipgloss.Width(e.ClassName))
		}
		for _, e := range sub.Entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.ClassName))
			lines = append(lines, indent+t.ClassName.Render(e.ClassName)+pad+"  "+t.Muted.Render(e.Description))
			if opts.ShowExamples && e.Example != "" {
				lines = append(lines, strings.Split(renderExample(e.Example, t, opts.Highlighter), "\n")...)
			}
		}
	}
	return lines
}

func renderExample(ex catalog.Example, t *theme.Theme, h *Highlighter) string {
	block := t.Example.Render(h.Highlight(string(ex)))
	return lipgloss.NewStyle().MarginLeft(exampleIndent).Render(block)
}

func renderEmpty(searchText string, t *theme.Theme, opts RenderOptions) string {
	msg := t.Muted.Render(EmptyMessage(searchText))
	if opts.MaxSuggestions <= 0 {
		return msg
	}
	suggestions := catalog.Suggest(opts.Source, searchText, opts.MaxSuggestions)
	if len(suggestions) == 0 {
		return msg
	}
	styled := make([]string, len(suggestions))
	for i, s := range suggestions {
		styled[i] = t.ClassName.Render(s)
	}
	return msg + "\n" + t.Info.Render("Did you mean: ") + strings.Join(styled, ", ")
}

// clip truncates every line of s to width cells.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
