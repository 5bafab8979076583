package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/tailwind.yml
var defaultCatalogData []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in Tailwind CSS catalog. It is decoded on first
// use and shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogData, FormatYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
