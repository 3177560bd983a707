// Package catalog holds the static command reference dataset.
//
// A Catalog is an ordered mapping from category name to the commands it
// documents. It is built once, validated eagerly and never mutated afterwards:
// every accessor hands out copies, so a Catalog can be shared between any
// number of readers without synchronization.
package catalog

import (
	"fmt"
)

// DefaultIcon is shown for categories that do not declare one.
const DefaultIcon = "📦"

// Option is a single flag or option of a command.
type Option struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Desc string `toml:"desc" yaml:"desc" json:"desc"`
}

// Command is one documented subcommand.
type Command struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Description string   `toml:"description" yaml:"description" json:"description"`
	Examples    []string `toml:"examples" yaml:"examples" json:"examples"`
	Options     []Option `toml:"option,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
	Tags        []string `toml:"tags" yaml:"tags" json:"tags"`
}

// HasOptions reports whether the command documents any option.
func (c Command) HasOptions() bool {
	return len(c.Options) > 0
}

// HasTag reports whether the command carries tag exactly.
func (c Command) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category is a named, ordered group of commands.
type Category struct {
	Name     string    `toml:"name" yaml:"name" json:"name"`
	Icon     string    `toml:"icon,omitempty" yaml:"icon,omitempty" json:"icon,omitempty"`
	Commands []Command `toml:"command" yaml:"commands" json:"commands"`
}

// DisplayIcon returns the category icon or DefaultIcon.
func (c Category) DisplayIcon() string {
	if c.Icon == "" {
		return DefaultIcon
	}
	return c.Icon
}

// Catalog is the immutable category -> commands mapping.
type Catalog struct {
	categories []Category
	index      map[string]int
	total      int
}

// New builds a validated Catalog from categories in display order.
// Malformed input is rejected with an error wrapping ErrInvalidCatalog.
func New(categories ...Category) (*Catalog, error) {
	if err := Validate(categories); err != nil {
		return nil, err
	}
	return build(categories), nil
}

// MustNew is like New but panics on invalid input.
func MustNew(categories ...Category) *Catalog {
	c, err := New(categories...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// build copies categories into a Catalog without validating them.
func build(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, cloneCategory(cat))
		c.total += len(cat.Commands)
	}
	return c
}

// Categories returns category names in authoring order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Commands returns the commands of category in authoring order.
// An unknown category yields an empty result.
func (c *Catalog) Commands(category string) []Command {
	cat, ok := c.Category(category)
	if !ok {
		return nil
	}
	return cat.Commands
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

// All returns a copy of every category in authoring order.
func (c *Catalog) All() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.categories)
}

// CountAll returns the total number of commands across all categories.
// It is derived from the data when the catalog is built.
func (c *Catalog) CountAll() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Subset returns a catalog holding only the commands for which keep returns
// true. Categories left without commands are dropped. Order is preserved.
func (c *Catalog) Subset(keep func(category string, cmd Command) bool) *Catalog {
	if c == nil {
		return build(nil)
	}
	kept := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		var cmds []Command
		for _, cmd := range cat.Commands {
			if keep(cat.Name, cmd) {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			continue
		}
		kept = append(kept, Category{Name: cat.Name, Icon: cat.Icon, Commands: cmds})
	}
	return build(kept)
}

func cloneCategory(cat Category) Category {
	out := Category{Name: cat.Name, Icon: cat.Icon}
	if cat.Commands != nil {
		out.Commands = make([]Command, len(cat.Commands))
		for i, cmd := range cat.Commands {
			out.Commands[i] = cloneCommand(cmd)
		}
	}
	return out
}

func cloneCommand(cmd Command) Command {
	out := cmd
	if cmd.Examples != nil {
		out.Examples = append([]string(nil), cmd.Examples...)
	}
	if cmd.Options != nil {
		out.Options = append([]Option(nil), cmd.Options...)
	}
	if cmd.Tags != nil {
		out.Tags = append([]string(nil), cmd.Tags...)
	}
	return out
}
