// Package export writes the catalog to standalone artifacts: a static HTML
// reference, a Markdown document and a SQLite database.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
)

// ErrUnknownKind is returned for an unsupported export kind.
var ErrUnknownKind = errors.New("unknown export kind")

// Kind names an export artifact.
type Kind string

const (
	KindSite     Kind = "site"
	KindMarkdown Kind = "markdown"
	KindSQLite   Kind = "sqlite"
)

// Kinds lists the supported export kinds.
func Kinds() []string {
	return []string{string(KindSite), string(KindMarkdown), string(KindSQLite)}
}

// ParseKind validates s as an export kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSite, KindMarkdown, KindSQLite:
		return k, nil
	case "html":
		return KindSite, nil
	case "md":
		return KindMarkdown, nil
	case "db":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownKind, s, strings.Join(Kinds(), ", "))
	}
}

// DefaultFileName is the output file used when no path is given.
func (k Kind) DefaultFileName() string {
	switch k {
	case KindSite:
		return "artisan-ref.html"
	case KindMarkdown:
		return "artisan-ref.md"
	case KindSQLite:
		return "artisan-ref.db"
	}
	return "artisan-ref.out"
}

// Options tunes the generated documents.
type Options struct {
	// Title heads the site and the Markdown document.
	Title string
	// Version is printed in the site footer when set.
	Version string
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{Title: "Laravel Artisan"}
}

func (o Options) title() string {
	if strings.TrimSpace(o.Title) == "" {
		return DefaultOptions().Title
	}
	return o.Title
}

// ToFile writes the artifact of kind to path. Text artifacts are written to a
// temporary file in the same directory and renamed into place.
func ToFile(ctx context.Context, kind Kind, c *catalog.Catalog, path string, opts Options) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export %s: output path cannot be empty", kind)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export %s: create output directory: %w", kind, err)
	}

	var write func(io.Writer) error
	switch kind {
	case KindSQLite:
		return SQLite(ctx, c, path, opts)
	case KindSite:
		write = func(w io.Writer) error { return Site(w, c, opts) }
	case KindMarkdown:
		write = func(w io.Writer) error { return Markdown(w, c, opts) }
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export %s: create temp file: %w", kind, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("export %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export %s: close temp file: %w", kind, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("export %s: chmod: %w", kind, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("export %s: rename into place: %w", kind, err)
	}
	colors.Debug("export:", string(kind), "written to", path)
	return nil
}
