package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/twguide/errors"
)

func TestSelect(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "no patterns", patterns: nil, want: c.Names()},
		{name: "category glob", patterns: []string{"Layout/*"}, want: []string{"Layout"}},
		{name: "bare category", patterns: []string{"Colors"}, want: []string{"Colors"}},
		{
			name:     "several patterns keep catalog order",
			patterns: []string{"Overflow/*", "Spacing/Gap"},
			want:     []string{"Spacing", "Overflow"},
		},
		{
			name:     "exclusion",
			patterns: []string{"Layout/*", "!Layout/Display"},
			want:     []string{"Layout"},
		},
		{name: "nothing matches", patterns: []string{"Nope/*"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(c, tt.patterns...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestSelectSubcategories(t *testing.T) {
	got, err := Select(Default(), "Layout/*", "!Layout/Display")
	require.NoError(t, err)

	layout, ok := got.Category("Layout")
	require.True(t, ok)
	for _, sub := range layout.Subcategories {
		assert.NotEqual(t, "Display", sub.Name)
	}

	gap, err := Select(Default(), "Spacing/Gap")
	require.NoError(t, err)
	spacing, _ := gap.Category("Spacing")
	require.Len(t, spacing.Subcategories, 1)
	assert.Equal(t, "Gap", spacing.Subcategories[0].Name)
}

func TestSelectInvalidPattern(t *testing.T) {
	_, err := Select(Default(), "[")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}
