package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/spf13/cobra"
)

func testCatalog() *catalog.Catalog {
	return catalog.MustNew(
		catalog.Category{Name: "Generales", Icon: "⚡", Commands: []catalog.Command{
			{Name: "about", Description: "Muestra información de la aplicación", Examples: []string{"php artisan about", "php artisan about --json"}, Tags: []string{"info"}},
			{Name: "down", Description: "Pone la aplicación en mantenimiento", Examples: []string{"php artisan down"}, Tags: []string{"producción"},
				Options: []catalog.Option{{Name: "--secret", Desc: "Token para saltar el modo mantenimiento"}}},
		}},
		catalog.Category{Name: "Database & Migrate", Icon: "🗄️", Commands: []catalog.Command{
			{Name: "migrate:fresh", Description: "Elimina todas las tablas y migra", Examples: []string{"php artisan migrate:fresh --seed"}, Tags: []string{"peligroso", "database"}},
			{Name: "migrate", Description: "Ejecuta las migraciones", Examples: []string{"php artisan migrate"}, Tags: []string{"database"}},
		}},
	)
}

// fakeClient serves a fixed catalog and records copies.
type fakeClient struct {
	catalog   *catalog.Catalog
	err       error
	copier    *clipboard.MockCopier
	copierOut []io.Writer
}

func newFakeClient() *fakeClient {
	return &fakeClient{catalog: testCatalog(), copier: &clipboard.MockCopier{}}
}

func (f *fakeClient) Catalog() (*catalog.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeClient) Copier(w io.Writer) clipboard.Copier {
	f.copierOut = append(f.copierOut, w)
	return f.copier
}

var errCatalogUnavailable = errors.New("catalog unavailable")

// setupConfig isolates configuration in a temp dir.
func setupConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("ARTISAN_REF_DEBUG", "false")
	config.Load()
	return tmp
}

// executeCmd runs c with args and returns stdout and stderr.
func executeCmd(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), errOut.String(), err
}
