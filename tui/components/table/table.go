// Package table builds lipgloss tables styled with the active theme.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/grovetools/twguide/tui/theme"
)

// Options controls the look of a built table.
type Options struct {
	Bordered bool
	// RightAlign lists the columns whose cells are right aligned, e.g.
	// counts.
	RightAlign map[int]bool
	Theme      *theme.Theme
}

// DefaultOptions returns a bordered table in the default theme.
func DefaultOptions() Options {
	return Options{
		Bordered:   true,
		RightAlign: map[int]bool{},
		Theme:      theme.DefaultTheme,
	}
}

// Builder provides a fluent interface for creating styled tables.
type Builder struct {
	headers []string
	rows    [][]string
	options Options
}

// NewBuilder creates a new table builder.
func NewBuilder() *Builder {
	return &Builder{options: DefaultOptions()}
}

// WithTheme sets the theme.
func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	if t != nil {
		b.options.Theme = t
	}
	return b
}

// WithBorder enables or disables the rounded border.
func (b *Builder) WithBorder(bordered bool) *Builder {
	b.options.Bordered = bordered
	return b
}

// WithRightAligned right-aligns the given columns.
func (b *Builder) WithRightAligned(cols ...int) *Builder {
	for _, c := range cols {
		b.options.RightAlign[c] = true
	}
	return b
}

// WithHeaders sets the table headers.
func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.headers = headers
	return b
}

// WithRows appends rows.
func (b *Builder) WithRows(rows ...[]string) *Builder {
	b.rows = append(b.rows, rows...)
	return b
}

// Build creates the styled table.
func (b *Builder) Build() *ltable.Table {
	t := b.options.Theme
	opts := b.options

	tbl := ltable.New()
	if opts.Bordered {
		tbl = tbl.Border(lipgloss.RoundedBorder()).BorderStyle(t.TableBorder)
	} else {
		tbl = tbl.Border(lipgloss.HiddenBorder())
	}
	if len(b.headers) > 0 {
		tbl = tbl.Headers(b.headers...)
	}
	for _, row := range b.rows {
		tbl = tbl.Row(row...)
	}

	// Header cells arrive as ltable.HeaderRow; data rows count from 0.
	return tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return t.TableHeader.Padding(0, 1)
		}
		style := lipgloss.NewStyle().Padding(0, 1)
		if opts.RightAlign[col] {
			style = style.Align(lipgloss.Right)
		}
		return style
	})
}

// String renders the built table.
func (b *Builder) String() string {
	return b.Build().String()
}

// KeyValueTable renders label/value pairs without a border, labels muted.
func KeyValueTable(t *theme.Theme, items [][2]string) string {
	if t == nil {
		t = theme.DefaultTheme
	}
	b := NewBuilder().WithTheme(t).WithBorder(false)
	for _, item := range items {
		b.WithRows([]string{t.Muted.Render(item[0] + ":"), item[1]})
	}
	return b.String()
}
