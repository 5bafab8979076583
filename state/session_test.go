package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/twguide/catalog"
)

func TestSessionDefaults(t *testing.T) {
	c := catalog.Default()
	s := NewSession(c)
	v := s.View()

	assert.Equal(t, "", v.SearchText)
	assert.Empty(t, v.Expansion)
	assert.Equal(t, c.Categories(), v.Filtered.Categories())
}

func TestSessionFlexboxToggle(t *testing.T) {
	s := NewSession(catalog.Default())

	v := s.OnCategoryToggled("Flexbox")
	assert.True(t, v.Expansion.IsExpanded("Flexbox"))
	for _, name := range v.Filtered.Names() {
		if name != "Flexbox" {
			assert.False(t, v.Expansion.IsExpanded(name), name)
		}
	}

	v = s.OnCategoryToggled("Flexbox")
	assert.False(t, v.Expansion.IsExpanded("Flexbox"))
}

func TestSessionSearchKeepsExpansion(t *testing.T) {
	s := NewSession(catalog.Default(), WithInitialExpansion("Layout", "Colors"))

	v := s.OnSearchTextChanged("flex")
	assert.Equal(t, "flex", v.SearchText)
	assert.Equal(t, []string{"Layout", "Flexbox", "Spacing"}, v.Filtered.Names())
	// Colors is hidden by the search but keeps its flag.
	assert.True(t, v.Expansion.IsExpanded("Colors"))

	v = s.OnSearchTextChanged("zzz-no-match")
	assert.True(t, v.Filtered.IsEmpty())

	v = s.OnSearchTextChanged("")
	assert.Equal(t, catalog.Default().Len(), v.Filtered.Len())
	assert.Equal(t, []string{"Colors", "Layout"}, v.Expansion.Expanded())
}

func TestSessionViewIsSnapshot(t *testing.T) {
	s := NewSession(catalog.Default())
	v := s.View()
	v.Expansion["Layout"] = true

	assert.False(t, s.View().Expansion.IsExpanded("Layout"))
	assert.False(t, s.Expansion().IsExpanded("Layout"))
}

func TestSessionFoldAll(t *testing.T) {
	s := NewSession(catalog.Default(), WithSearchText("rounded"))
	require.Equal(t, "rounded", s.SearchText())

	v := s.OnExpandAll()
	assert.ElementsMatch(t, v.Filtered.Names(), v.Expansion.Expanded())

	v = s.OnCollapseAll()
	assert.Empty(t, v.Expansion.Expanded())
}
