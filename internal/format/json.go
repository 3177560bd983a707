package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// JSONFormatter prints indented JSON documents.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FormatCatalog writes a CatalogView including commands.
func (f *JSONFormatter) FormatCatalog(c *catalog.Catalog, w io.Writer) error {
	return f.encode(w, NewCatalogView(c, true))
}

// FormatCategories writes a CatalogView without commands.
func (f *JSONFormatter) FormatCategories(c *catalog.Catalog, w io.Writer) error {
	return f.encode(w, NewCatalogView(c, false))
}

// FormatCommand writes a CommandView.
func (f *JSONFormatter) FormatCommand(category string, cmd catalog.Command, w io.Writer) error {
	return f.encode(w, NewCommandView(category, cmd))
}
