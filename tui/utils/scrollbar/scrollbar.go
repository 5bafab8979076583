// Package scrollbar draws a one-column scrollbar next to a viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/twguide/tui/theme"
)

const (
	thumb = "█"
	track = "░"
)

// Generate returns one scrollbar cell per line for a column of the given
// height. When the content fits in the viewport the column is blank.
func Generate(vp *viewport.Model, height int, t *theme.Theme) []string {
	if height <= 0 {
		return []string{}
	}
	if t == nil {
		t = theme.DefaultTheme
	}

	cells := make([]string, height)
	totalLines := vp.TotalLineCount()
	if totalLines <= vp.Height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbSize := max(1, (height*vp.Height)/totalLines)
	scrollPercent := min(max(vp.ScrollPercent(), 0), 1)
	maxThumbStart := height - thumbSize
	thumbStart := min(max(int(float64(maxThumbStart)*scrollPercent+0.5), 0), maxThumbStart)

	for i := range cells {
		if i >= thumbStart && i < thumbStart+thumbSize {
			cells[i] = t.Accent.Render(thumb)
		} else {
			cells[i] = t.Muted.Render(track)
		}
	}
	return cells
}

// Overlay returns the visible viewport content with a scrollbar cell
// appended to every line.
func Overlay(vp *viewport.Model, t *theme.Theme) string {
	lines := strings.Split(vp.View(), "\n")
	cells := Generate(vp, len(lines), t)

	for i := range lines {
		lines[i] += cells[i]
	}
	return strings.Join(lines, "\n")
}
