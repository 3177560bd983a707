// Package format provides output formatting functionality for CLI commands.
// It renders catalog listings, category summaries and single commands in
// several styles.
package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// ErrUnknownFormat is returned by New for an unsupported formatter name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatCatalog writes every category with its commands.
	FormatCatalog(c *catalog.Catalog, w io.Writer) error

	// FormatCategories writes category names with their command counts.
	FormatCategories(c *catalog.Catalog, w io.Writer) error

	// FormatCommand writes the full detail of a single command.
	FormatCommand(category string, cmd catalog.Command, w io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints aligned plain text.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints bordered tables.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints indented JSON.
	FormatterTypeJSON FormatterType = "json"

	// FormatterTypeYAML prints YAML.
	FormatterTypeYAML FormatterType = "yaml"

	// FormatterTypeMarkdown prints a Markdown document.
	FormatterTypeMarkdown FormatterType = "markdown"
)

// Types lists the supported formatter names in display order.
func Types() []string {
	return []string{
		string(FormatterTypeSimple),
		string(FormatterTypeTable),
		string(FormatterTypeJSON),
		string(FormatterTypeYAML),
		string(FormatterTypeMarkdown),
	}
}

// New creates a formatter by name. Names are case-insensitive; "md" and
// "yml" are accepted as aliases.
func New(name string) (Formatter, error) {
	switch FormatterType(strings.ToLower(strings.TrimSpace(name))) {
	case FormatterTypeSimple, "":
		return NewSimpleFormatter(), nil
	case FormatterTypeTable:
		return NewTableFormatter(), nil
	case FormatterTypeJSON:
		return NewJSONFormatter(), nil
	case FormatterTypeYAML, "yml":
		return NewYAMLFormatter(), nil
	case FormatterTypeMarkdown, "md":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Types(), ", "))
	}
}
