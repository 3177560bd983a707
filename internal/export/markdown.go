package export

import (
	"io"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/format"
)

// Markdown writes the whole catalog as a Markdown document headed by the
// configured title.
func Markdown(w io.Writer, c *catalog.Catalog, opts Options) error {
	f := format.NewMarkdownFormatter()
	f.Title = opts.title()
	return f.FormatCatalog(c, w)
}
