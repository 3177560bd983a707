package search

import (
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// FilterCatalog narrows c to the commands matching query with DefaultProvider.
//
// An empty query returns c itself. Otherwise categories with no matching
// command are dropped, and surviving categories and commands keep their
// original relative order.
func FilterCatalog(c *catalog.Catalog, query string) *catalog.Catalog {
	return FilterWith(c, query, DefaultProvider())
}

// FilterWith is FilterCatalog with an explicit provider.
func FilterWith(c *catalog.Catalog, query string, p Provider) *catalog.Catalog {
	if query == "" {
		return c
	}
	return c.Subset(func(_ string, cmd catalog.Command) bool {
		return p.Match(cmd, query)
	})
}
