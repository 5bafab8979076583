// Package catalog holds the read-only reference catalog of utility classes:
// categories, each holding ordered subcategories of class entries.
//
// A Catalog is immutable once constructed. Every derived view (Filter,
// Select) builds a new Catalog and never touches its input, so a single
// Catalog can be shared freely across sessions.
package catalog

import (
	"github.com/grovetools/twguide/errors"
)

// Example is the opaque renderable fragment attached to an entry. The
// catalog never inspects it; presentation layers decide how to show it
// (the built-in catalog stores HTML markup).
type Example string

// Entry documents one utility class.
type Entry struct {
	ClassName   string  `yaml:"class" toml:"class" json:"class"`
	Description string  `yaml:"description" toml:"description" json:"description"`
	Example     Example `yaml:"example,omitempty" toml:"example,omitempty" json:"example,omitempty"`
}

// Subcategory is a named, ordered group of entries within a category.
type Subcategory struct {
	Name    string  `yaml:"name" toml:"name" json:"name"`
	Entries []Entry `yaml:"entries" toml:"entries" json:"entries"`
}

// Category is a named, ordered group of subcategories.
type Category struct {
	Name          string        `yaml:"name" toml:"name" json:"name"`
	Subcategories []Subcategory `yaml:"subcategories" toml:"subcategories" json:"subcategories"`
}

// Len returns the number of entries across all subcategories.
func (c Category) Len() int {
	n := 0
	for _, sub := range c.Subcategories {
		n += len(sub.Entries)
	}
	return n
}

// Path locates a subcategory inside a catalog.
type Path struct {
	Category    string
	Subcategory string
}

// String returns the slash-joined form used by Select patterns.
func (p Path) String() string {
	return p.Category + "/" + p.Subcategory
}

// Stats summarizes the size of a catalog.
type Stats struct {
	Categories    int `json:"categories"`
	Subcategories int `json:"subcategories"`
	Entries       int `json:"entries"`
}

// Catalog is an ordered, immutable mapping of category name to category.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New validates the given categories and returns a catalog preserving their
// order. Names must be non-empty and unique among their siblings, every
// category needs at least one subcategory and every subcategory at least one
// entry with a class name and a description.
func New(categories ...Category) (*Catalog, error) {
	if err := validate(categories); err != nil {
		return nil, err
	}
	return build(cloneCategories(categories)), nil
}

// build wraps already-validated categories without copying them.
func build(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		c.index[cat.Name] = i
	}
	return c
}

func validate(categories []Category) error {
	seenCats := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return errors.CatalogInvalid("", "category with empty name")
		}
		if seenCats[cat.Name] {
			return errors.DuplicateName("category", "", cat.Name)
		}
		seenCats[cat.Name] = true

		if len(cat.Subcategories) == 0 {
			return errors.CatalogInvalid(cat.Name, "category has no subcategories")
		}

		seenSubs := make(map[string]bool, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			if sub.Name == "" {
				return errors.CatalogInvalid(cat.Name, "subcategory with empty name")
			}
			if seenSubs[sub.Name] {
				return errors.DuplicateName("subcategory", cat.Name, sub.Name)
			}
			seenSubs[sub.Name] = true

			path := Path{Category: cat.Name, Subcategory: sub.Name}.String()
			if len(sub.Entries) == 0 {
				return errors.CatalogInvalid(path, "subcategory has no entries")
			}

			seenClasses := make(map[string]bool, len(sub.Entries))
			for _, e := range sub.Entries {
				if e.ClassName == "" {
					return errors.CatalogInvalid(path, "entry with empty class name")
				}
				if e.Description == "" {
					return errors.CatalogInvalid(path+"/"+e.ClassName, "entry with empty description")
				}
				if seenClasses[e.ClassName] {
					return errors.DuplicateName("entry", path, e.ClassName)
				}
				seenClasses[e.ClassName] = true
			}
		}
	}
	return nil
}

// Categories returns a copy of the categories in catalog order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	return cloneCategories(c.categories)
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Category returns a copy of the named category.
func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.categories)
}

// IsEmpty reports whether the catalog holds no categories.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Stats counts categories, subcategories and entries.
func (c *Catalog) Stats() Stats {
	var s Stats
	if c == nil {
		return s
	}
	s.Categories = len(c.categories)
	for _, cat := range c.categories {
		s.Subcategories += len(cat.Subcategories)
		s.Entries += cat.Len()
	}
	return s
}

// Walk visits every entry in catalog order. Returning false from fn stops
// the walk.
func (c *Catalog) Walk(fn func(p Path, e Entry) bool) {
	if c == nil {
		return
	}
	for _, cat := range c.categories {
		for _, sub := range cat.Subcategories {
			p := Path{Category: cat.Name, Subcategory: sub.Name}
			for _, e := range sub.Entries {
				if !fn(p, e) {
					return
				}
			}
		}
	}
}

func cloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, cat := range in {
		out[i] = cloneCategory(cat)
	}
	return out
}

func cloneCategory(cat Category) Category {
	subs := make([]Subcategory, len(cat.Subcategories))
	for i, sub := range cat.Subcategories {
		entries := make([]Entry, len(sub.Entries))
		copy(entries, sub.Entries)
		subs[i] = Subcategory{Name: sub.Name, Entries: entries}
	}
	return Category{Name: cat.Name, Subcategories: subs}
}
