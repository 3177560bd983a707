package catalog

import (
	"fmt"
	"sync"

	assets "github.com/cristianoliveira/artisan-ref"
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog bundled with the binary. It is parsed on first
// use; a malformed bundled catalog is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		data, err := assets.FS.ReadFile(assets.CatalogPath)
		if err != nil {
			panic(fmt.Sprintf("catalog: read bundled catalog: %v", err))
		}
		c, err := Parse(data, FormatTOML)
		if err != nil {
			panic(fmt.Sprintf("catalog: bundled catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Open returns the catalog at path, or the bundled one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
