package catalog

// Builder assembles a catalog in insertion order. Calling Category or
// Subcategory again with a known name returns the existing group, so
// entries can be added in several passes.
//
//	b := catalog.NewBuilder()
//	b.Category("Layout").Subcategory("Display").
//		Add("block", "Display as block element", "").
//		Add("flex", "Display as flex container", "")
//	c, err := b.Build()
type Builder struct {
	categories []*CategoryBuilder
}

// CategoryBuilder collects the subcategories of one category.
type CategoryBuilder struct {
	name          string
	subcategories []*SubcategoryBuilder
}

// SubcategoryBuilder collects the entries of one subcategory.
type SubcategoryBuilder struct {
	name    string
	entries []Entry
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Category returns the builder for the named category, creating it at the
// end of the catalog if it does not exist yet.
func (b *Builder) Category(name string) *CategoryBuilder {
	for _, cb := range b.categories {
		if cb.name == name {
			return cb
		}
	}
	cb := &CategoryBuilder{name: name}
	b.categories = append(b.categories, cb)
	return cb
}

// Subcategory returns the builder for the named subcategory.
func (cb *CategoryBuilder) Subcategory(name string) *SubcategoryBuilder {
	for _, sb := range cb.subcategories {
		if sb.name == name {
			return sb
		}
	}
	sb := &SubcategoryBuilder{name: name}
	cb.subcategories = append(cb.subcategories, sb)
	return sb
}

// Add appends an entry.
func (sb *SubcategoryBuilder) Add(className, description string, example Example) *SubcategoryBuilder {
	sb.entries = append(sb.entries, Entry{
		ClassName:   className,
		Description: description,
		Example:     example,
	})
	return sb
}

// Build validates the collected data and returns the catalog.
func (b *Builder) Build() (*Catalog, error) {
	categories := make([]Category, 0, len(b.categories))
	for _, cb := range b.categories {
		cat := Category{Name: cb.name}
		for _, sb := range cb.subcategories {
			cat.Subcategories = append(cat.Subcategories, Subcategory{
				Name:    sb.name,
				Entries: sb.entries,
			})
		}
		categories = append(categories, cat)
	}
	return New(categories...)
}
