// Package assets provides embedded files for artisan-ref.
package assets

import "embed"

// CatalogPath is the location of the bundled catalog inside FS.
const CatalogPath = "data/artisan.toml"

//go:embed data
var FS embed.FS
