package catalog

import (
	"strings"
)

// Filter returns the part of c whose entries match searchText: an entry is
// kept when its class name or description contains the text, ignoring case.
// Subcategories and categories left without entries are dropped. Order is
// preserved at every level and c itself is never modified.
//
// An empty searchText matches everything and yields c unchanged. A search
// without matches yields an empty catalog, not an error.
func Filter(c *Catalog, searchText string) *Catalog {
	if c == nil {
		return build(nil)
	}
	if searchText == "" {
		return c
	}

	needle := strings.ToLower(searchText)
	var categories []Category
	for _, cat := range c.categories {
		var subs []Subcategory
		for _, sub := range cat.Subcategories {
			var entries []Entry
			for _, e := range sub.Entries {
				if Matches(e, needle) {
					entries = append(entries, e)
				}
			}
			if len(entries) > 0 {
				subs = append(subs, Subcategory{Name: sub.Name, Entries: entries})
			}
		}
		if len(subs) > 0 {
			categories = append(categories, Category{Name: cat.Name, Subcategories: subs})
		}
	}
	return build(categories)
}

// Matches reports whether e matches an already lower-cased needle.
func Matches(e Entry, needle string) bool {
	return strings.Contains(strings.ToLower(e.ClassName), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle)
}
