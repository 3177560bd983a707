package search

import (
	"strings"
	"testing"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCatalog = catalog.MustNew(
	catalog.Category{
		Name: "Generales",
		Commands: []catalog.Command{
			{Name: "about", Description: "Muestra información general de la aplicación", Examples: []string{"php artisan about"}, Tags: []string{"info", "debug"}},
			{Name: "down", Description: "Pone la aplicación en modo mantenimiento", Examples: []string{"php artisan down"}, Tags: []string{"mantenimiento", catalog.TagProduction}},
			{Name: "serve", Description: "Servidor de desarrollo local", Examples: []string{"php artisan serve"}, Tags: []string{"desarrollo"}},
		},
	},
	catalog.Category{
		Name: "Database & Migrate",
		Commands: []catalog.Command{
			{Name: "migrate", Description: "Ejecuta migraciones pendientes", Examples: []string{"php artisan migrate"}, Tags: []string{"database", catalog.TagProduction}},
			{Name: "db:wipe", Description: "Elimina todas las tablas", Examples: []string{"php artisan db:wipe"}, Tags: []string{"database", catalog.TagDangerous}},
		},
	},
	catalog.Category{
		Name: "Cache",
		Commands: []catalog.Command{
			{Name: "cache:clear", Description: "Limpia la caché de la aplicación", Examples: []string{"php artisan cache:clear"}, Tags: []string{"cache"}},
		},
	},
)

var sampleQueries = []string{"a", "PROD", "cache", "migr", "zzz", "Debug", "é", ":", " ", "aplicación", "DATABASE", "peligroso"}

func commandNames(c *catalog.Catalog, category string) []string {
	var names []string
	for _, cmd := range c.Commands(category) {
		names = append(names, cmd.Name)
	}
	return names
}

func matchesRule(cmd catalog.Command, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(cmd.Name), q) || strings.Contains(strings.ToLower(cmd.Description), q) {
		return true
	}
	for _, tag := range cmd.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// isSubsequence reports whether sub appears in seq in the same relative order.
func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterCatalogEmptyQueryIsIdentity(t *testing.T) {
	for _, c := range []*catalog.Catalog{testCatalog, catalog.Default()} {
		assert.Same(t, c, FilterCatalog(c, ""))
	}
}

func TestFilterCatalogWhitespaceIsNotEmpty(t *testing.T) {
	filtered := FilterCatalog(testCatalog, " ")
	assert.NotSame(t, testCatalog, filtered)
	// Only descriptions containing a space survive; every command here has one.
	assert.Equal(t, testCatalog.CountAll(), filtered.CountAll())
}

func TestFilterCatalogProperties(t *testing.T) {
	for _, c := range []*catalog.Catalog{testCatalog, catalog.Default()} {
		for _, q := range sampleQueries {
			t.Run(q, func(t *testing.T) {
				filtered := FilterCatalog(c, q)

				assert.True(t, isSubsequence(filtered.Categories(), c.Categories()), "category order")
				for _, name := range filtered.Categories() {
					cmds := filtered.Commands(name)
					assert.NotEmpty(t, cmds, "category %q survived empty", name)
					assert.True(t, isSubsequence(commandNames(filtered, name), commandNames(c, name)), "command order in %q", name)
					for _, cmd := range cmds {
						orig, ok := ResolveActiveCommand(c, name, cmd.Name)
						require.True(t, ok)
						assert.Equal(t, orig, cmd)
						assert.True(t, matchesRule(cmd, q), "%q does not match %q", cmd.Name, q)
					}
				}

				// Nothing that matches was dropped.
				for _, name := range c.Categories() {
					for _, cmd := range c.Commands(name) {
						if !matchesRule(cmd, q) {
							continue
						}
						_, ok := ResolveActiveCommand(filtered, name, cmd.Name)
						assert.True(t, ok, "%s/%s should survive %q", name, cmd.Name, q)
					}
				}
			})
		}
	}
}

func TestFilterCatalogIsDeterministic(t *testing.T) {
	for _, q := range sampleQueries {
		assert.Equal(t, FilterCatalog(testCatalog, q).All(), FilterCatalog(testCatalog, q).All())
	}
}

func TestFilterCatalogCaseInsensitive(t *testing.T) {
	filtered := FilterCatalog(testCatalog, "PROD")

	assert.Equal(t, []string{"Generales", "Database & Migrate"}, filtered.Categories())
	assert.Equal(t, []string{"down"}, commandNames(filtered, "Generales"))
	assert.Equal(t, []string{"migrate"}, commandNames(filtered, "Database & Migrate"))
}

func TestFilterCatalogDropsEmptyCategories(t *testing.T) {
	filtered := FilterCatalog(testCatalog, "cache")
	assert.Equal(t, []string{"Cache"}, filtered.Categories())
	assert.Empty(t, filtered.Commands("Generales"))

	none := FilterCatalog(testCatalog, "zzz")
	assert.Equal(t, 0, none.Len())
	assert.Empty(t, none.Categories())
}

func TestFilterCatalogDoesNotMutateSource(t *testing.T) {
	before := testCatalog.All()
	_ = FilterCatalog(testCatalog, "db")
	assert.Equal(t, before, testCatalog.All())
}

func TestFilterCatalogNil(t *testing.T) {
	assert.Nil(t, FilterCatalog(nil, ""))
	assert.Equal(t, 0, FilterCatalog(nil, "x").Len())
}

func TestFilterWithProvider(t *testing.T) {
	p := new(MockProvider)
	p.On("Match", mock.Anything, "q").Return(func(cmd catalog.Command, _ string) bool {
		return cmd.Name == "serve"
	})

	filtered := FilterWith(testCatalog, "q", p)
	assert.Equal(t, []string{"Generales"}, filtered.Categories())
	assert.Equal(t, []string{"serve"}, commandNames(filtered, "Generales"))
	p.AssertNumberOfCalls(t, "Match", testCatalog.CountAll())
}

func TestFilterWithSkipsProviderOnEmptyQuery(t *testing.T) {
	p := new(MockProvider)
	assert.Same(t, testCatalog, FilterWith(testCatalog, "", p))
	p.AssertNotCalled(t, "Match", mock.Anything, mock.Anything)
}

func TestResolveActiveCommand(t *testing.T) {
	tests := []struct {
		name     string
		catalog  *catalog.Catalog
		category string
		command  string
		wantOK   bool
	}{
		{"found", testCatalog, "Generales", "about", true},
		{"found in other category", testCatalog, "Cache", "cache:clear", true},
		{"unknown command", testCatalog, "Generales", "nope", false},
		{"unknown category", testCatalog, "Nope", "about", false},
		{"wrong category", testCatalog, "Cache", "about", false},
		{"case sensitive", testCatalog, "Generales", "About", false},
		{"no partial match", testCatalog, "Generales", "abo", false},
		{"empty input", testCatalog, "", "", false},
		{"nil catalog", nil, "Generales", "about", false},
		{"bundled catalog", catalog.Default(), "Generales", "about", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ResolveActiveCommand(tt.catalog, tt.category, tt.command)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.command, cmd.Name)
			} else {
				assert.Equal(t, catalog.Command{}, cmd)
			}
		})
	}
}

func TestSelectionResolve(t *testing.T) {
	assert.True(t, Selection{}.IsZero())

	sel := Selection{Category: "Database & Migrate", Command: "db:wipe"}
	assert.False(t, sel.IsZero())
	cmd, ok := sel.Resolve(testCatalog)
	require.True(t, ok)
	assert.True(t, catalog.ClassifyTags(cmd).IsDangerous)

	// A selection that survives in the source may vanish from a filtered view.
	_, ok = sel.Resolve(FilterCatalog(testCatalog, "cache"))
	assert.False(t, ok)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.False(t, opts.CaseInsensitive, "default should be case-sensitive")
	assert.Equal(t, []string{FieldName, FieldDescription, FieldTags}, opts.Fields)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	WithCaseInsensitive(true)(&opts)
	WithFields([]string{FieldName})(&opts)

	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, []string{FieldName}, opts.Fields)
}

func TestSubstringProvider(t *testing.T) {
	cmd := catalog.Command{Name: "migrate:fresh", Description: "BORRA todas las tablas", Tags: []string{"database", catalog.TagDangerous}}
	tests := []struct {
		name     string
		provider Provider
		query    string
		expected bool
	}{
		{"empty query matches all", NewSubstringProvider(), "", true},
		{"name", NewSubstringProvider(), "fresh", true},
		{"description", NewSubstringProvider(), "tablas", true},
		{"tag", NewSubstringProvider(), "peli", true},
		{"case sensitive miss", NewSubstringProvider(), "borra", false},
		{"case insensitive hit", NewSubstringProvider(WithCaseInsensitive(true)), "borra", true},
		{"field restricted", NewSubstringProvider(WithFields([]string{FieldName})), "tablas", false},
		{"unknown field ignored", NewSubstringProvider(WithFields([]string{"examples"})), "fresh", false},
		{"no match", NewSubstringProvider(WithCaseInsensitive(true)), "queue", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.Match(cmd, tt.query))
		})
	}
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "substring", DefaultProvider().Name())
}
