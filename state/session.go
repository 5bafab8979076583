package state

import (
	"github.com/grovetools/twguide/catalog"
)

// View is what the presentation layer needs to draw one frame.
type View struct {
	// Filtered is derived from the catalog and the search text on every
	// change. It is never treated as state in its own right.
	Filtered   *catalog.Catalog
	Expansion  Expansion
	SearchText string
}

// Session owns the search text and expansion flags for one interactive run
// over a read-only catalog. Events are applied synchronously by a single
// owner, so there is no locking.
type Session struct {
	catalog    *catalog.Catalog
	searchText string
	expansion  Expansion
	filtered   *catalog.Catalog
}

// Option configures a Session.
type Option func(*Session)

// WithInitialExpansion starts the session with the named categories
// expanded.
func WithInitialExpansion(names ...string) Option {
	return func(s *Session) {
		s.expansion = s.expansion.ExpandAll(names)
	}
}

// WithSearchText starts the session with a search already applied.
func WithSearchText(text string) Option {
	return func(s *Session) {
		s.searchText = text
	}
}

// NewSession starts a session over c with an empty search and every
// category collapsed, unless opts say otherwise.
func NewSession(c *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:   c,
		expansion: Expansion{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.filtered = catalog.Filter(c, s.searchText)
	return s
}

// Catalog returns the unfiltered catalog the session browses.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// SearchText returns the current search text.
func (s *Session) SearchText() string {
	return s.searchText
}

// Expansion returns a copy of the current expansion flags.
func (s *Session) Expansion() Expansion {
	return s.expansion.Clone()
}

// OnSearchTextChanged replaces the search text and recomputes the filtered
// catalog. Expansion flags are left alone, including those of categories
// the new search hides.
func (s *Session) OnSearchTextChanged(text string) View {
	s.searchText = text
	s.filtered = catalog.Filter(s.catalog, text)
	return s.View()
}

// OnCategoryToggled flips the expansion flag of name.
func (s *Session) OnCategoryToggled(name string) View {
	s.expansion = Toggle(s.expansion, name)
	return s.View()
}

// OnExpandAll expands every category in the current filtered view.
func (s *Session) OnExpandAll() View {
	s.expansion = s.expansion.ExpandAll(s.filtered.Names())
	return s.View()
}

// OnCollapseAll collapses every category.
func (s *Session) OnCollapseAll() View {
	s.expansion = s.expansion.CollapseAll()
	return s.View()
}

// View returns the current frame.
func (s *Session) View() View {
	return View{
		Filtered:   s.filtered,
		Expansion:  s.expansion.Clone(),
		SearchText: s.searchText,
	}
}
