//go:build integration
// +build integration

package cmd

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/export"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func countDangerous(c *catalog.Catalog) int {
	n := 0
	for _, cat := range c.All() {
		for _, cmd := range cat.Commands {
			if catalog.ClassifyTags(cmd).IsDangerous {
				n++
			}
		}
	}
	return n
}

func TestBundledCatalogSQLiteIntegration(t *testing.T) {
	c := catalog.Default()
	path := filepath.Join(t.TempDir(), "artisan.db")

	require.NoError(t, export.ToFile(context.Background(), export.KindSQLite, c, path, export.DefaultOptions()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var commands, categories, dangerous int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM commands`).Scan(&commands))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&categories))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM commands WHERE dangerous = 1`).Scan(&dangerous))

	assert.Equal(t, c.CountAll(), commands)
	assert.Equal(t, c.Len(), categories)
	assert.Equal(t, countDangerous(c), dangerous)

	rows, err := db.Query(`SELECT name FROM categories ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, c.Categories(), names)
}

func TestFilteredSiteIntegration(t *testing.T) {
	full := catalog.Default()
	filtered := search.FilterCatalog(full, "PROD")
	require.Positive(t, filtered.CountAll())
	require.Less(t, filtered.CountAll(), full.CountAll())

	path := filepath.Join(t.TempDir(), "site", "index.html")
	require.NoError(t, export.ToFile(context.Background(), export.KindSite, filtered, path, export.DefaultOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	articles := doc.Find("article.command")
	assert.Equal(t, filtered.CountAll(), articles.Length())
	articles.Each(func(_ int, s *goquery.Selection) {
		assert.Contains(t, s.AttrOr("data-search", ""), "prod")
	})
	assert.Equal(t, filtered.Len(), doc.Find("section.category").Length())
	assert.Equal(t, strconv.Itoa(filtered.CountAll()), doc.Find("#total").Text())
}
