package search

import (
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// Selection is the (category, command) pair chosen by the user.
type Selection struct {
	Category string
	Command  string
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.Category == "" && s.Command == ""
}

// Resolve is shorthand for ResolveActiveCommand(c, s.Category, s.Command).
func (s Selection) Resolve(c *catalog.Catalog) (catalog.Command, bool) {
	return ResolveActiveCommand(c, s.Category, s.Command)
}

// ResolveActiveCommand looks up the command called name in category.
// Names are compared exactly. A miss, including an unknown category or a nil
// catalog, reports false.
func ResolveActiveCommand(c *catalog.Catalog, category, name string) (catalog.Command, bool) {
	for _, cmd := range c.Commands(category) {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return catalog.Command{}, false
}
