// Package state holds the interactive guide's per-run state: which
// categories are expanded and what is being searched for. Nothing here is
// persisted.
package state

import "sort"

// Expansion maps a category name to whether it is expanded. A name that is
// absent is collapsed.
type Expansion map[string]bool

// Toggle returns a copy of state with the flag for category flipped. An
// absent category counts as collapsed, so the first toggle expands it.
// Other entries are carried over unchanged and state itself is not
// modified. The category does not have to exist in any catalog.
func Toggle(state Expansion, category string) Expansion {
	next := state.Clone()
	next[category] = !state[category]
	return next
}

// IsExpanded reports whether name is expanded.
func (e Expansion) IsExpanded(name string) bool {
	return e[name]
}

// Clone returns an independent copy. The copy of a nil Expansion is empty,
// not nil.
func (e Expansion) Clone() Expansion {
	out := make(Expansion, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Expanded returns the sorted names currently flagged expanded.
func (e Expansion) Expanded() []string {
	var names []string
	for k, v := range e {
		if v {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// ExpandAll returns a copy of e with every name in names expanded.
func (e Expansion) ExpandAll(names []string) Expansion {
	next := e.Clone()
	for _, n := range names {
		next[n] = true
	}
	return next
}

// CollapseAll returns an empty Expansion.
func (e Expansion) CollapseAll() Expansion {
	return Expansion{}
}
