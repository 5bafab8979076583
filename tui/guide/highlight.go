package guide

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "monokai"

// Highlighter colors example markup for the terminal.
type Highlighter struct {
	style     string
	formatter string
}

// NewHighlighter returns a highlighter for the chroma style, picking the
// terminal formatter that matches the current lipgloss color profile. It
// returns nil when the profile has no colors; a nil Highlighter leaves
// markup untouched.
func NewHighlighter(style string) *Highlighter {
	return newHighlighter(style, lipgloss.ColorProfile())
}

func newHighlighter(style string, profile termenv.Profile) *Highlighter {
	if style == "" {
		style = DefaultHighlightStyle
	}
	var formatter string
	switch profile {
	case termenv.TrueColor:
		formatter = "terminal16m"
	case termenv.ANSI256:
		formatter = "terminal256"
	case termenv.ANSI:
		formatter = "terminal16"
	default:
		return nil
	}
	return &Highlighter{style: style, formatter: formatter}
}

// Highlight returns markup highlighted as HTML. Markup is returned verbatim
// when h is nil or chroma fails.
func (h *Highlighter) Highlight(markup string) string {
	if h == nil || markup == "" {
		return markup
	}
	var buf strings.Builder
	if err := quick.Highlight(&buf, markup, "html", h.formatter, h.style); err != nil {
		return markup
	}
	return strings.TrimRight(buf.String(), "\n")
}
