package main

import (
	"io"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/config"
)

// catalogClient supplies the catalog being browsed.
type catalogClient interface {
	Catalog() (*catalog.Catalog, error)
}

// copyClient supplies the clipboard used by copy actions. OSC 52 sequences go
// to w; a nil w leaves only the system clipboard.
type copyClient interface {
	Copier(w io.Writer) clipboard.Copier
}

// appClient is the full dependency set of the interactive viewer.
type appClient interface {
	catalogClient
	copyClient
}

// defaultClient resolves dependencies lazily so that configuration loaded in
// main is honored.
type defaultClient struct{}

// Catalog opens the catalog named by --catalog or catalog_path, falling back
// to the bundled catalog.
func (defaultClient) Catalog() (*catalog.Catalog, error) {
	return catalog.Open(cmd.CatalogPath())
}

// Copier builds the clipboard_backend copier writing OSC 52 to w.
func (defaultClient) Copier(w io.Writer) clipboard.Copier {
	return clipboard.New(config.Get("clipboard_backend", clipboard.BackendAuto), w)
}

var client appClient = defaultClient{}
