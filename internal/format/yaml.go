package format

import (
	"io"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter prints YAML documents with the same shape as JSONFormatter.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *YAMLFormatter) FormatCatalog(c *catalog.Catalog, w io.Writer) error {
	return f.encode(w, NewCatalogView(c, true))
}

func (f *YAMLFormatter) FormatCategories(c *catalog.Catalog, w io.Writer) error {
	return f.encode(w, NewCatalogView(c, false))
}

func (f *YAMLFormatter) FormatCommand(category string, cmd catalog.Command, w io.Writer) error {
	return f.encode(w, NewCommandView(category, cmd))
}
