package catalog

import (
	"github.com/moby/patternmatcher"

	"github.com/grovetools/twguide/errors"
)

// Select keeps the subcategories whose "Category/Subcategory" path matches
// at least one of the patterns. Patterns follow .dockerignore rules: "*"
// and "?" match within a path segment, "**" spans segments, a bare
// category name selects the whole category and a leading "!" excludes.
// With no patterns c is returned unchanged.
func Select(c *Catalog, patterns ...string) (*Catalog, error) {
	if c == nil {
		return build(nil), nil
	}
	if len(patterns) == 0 {
		return c, nil
	}

	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid selection pattern").
			WithDetail("patterns", patterns)
	}

	var categories []Category
	for _, cat := range c.categories {
		var subs []Subcategory
		for _, sub := range cat.Subcategories {
			p := Path{Category: cat.Name, Subcategory: sub.Name}
			ok, err := pm.MatchesOrParentMatches(p.String())
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "matching selection pattern").
					WithDetail("path", p.String())
			}
			if ok {
				subs = append(subs, sub)
			}
		}
		if len(subs) > 0 {
			categories = append(categories, Category{Name: cat.Name, Subcategories: subs})
		}
	}
	return build(cloneCategories(categories)), nil
}
