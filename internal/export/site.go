package export

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/format"
)

//go:embed templates/site.html.tmpl
var siteTemplate string

// CopyFeedbackMillis is how long a copy button shows its confirmation.
const CopyFeedbackMillis = 2000

var siteTmpl = template.Must(template.New("site").Funcs(template.FuncMap{
	"searchKey": searchKey,
	"anchor":    anchor,
	"tagClass":  tagClass,
}).Parse(siteTemplate))

type siteData struct {
	Title          string
	Version        string
	View           format.CatalogView
	FeedbackMillis int
	Labels         map[string]string
}

// Site writes a self-contained HTML page listing every command. The page
// filters commands client-side with the same case-insensitive substring
// match over name, description and tags.
func Site(w io.Writer, c *catalog.Catalog, opts Options) error {
	data := siteData{
		Title:          opts.title(),
		Version:        opts.Version,
		View:           format.NewCatalogView(c, true),
		FeedbackMillis: CopyFeedbackMillis,
		Labels: map[string]string{
			"empty":     format.LabelEmpty,
			"examples":  format.LabelExamples,
			"options":   format.LabelOptions,
			"dangerous": format.LabelDangerous,
			"commands":  format.LabelCommands,
		},
	}
	if err := siteTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render site: %w", err)
	}
	return nil
}

// searchKey is the lower-cased haystack matched by the page filter.
func searchKey(cmd format.CommandView) string {
	parts := append([]string{cmd.Name, cmd.Description}, cmd.Tags...)
	return strings.ToLower(strings.Join(parts, "\n"))
}

// anchor builds a stable element id for a command.
func anchor(category, name string) string {
	var b strings.Builder
	b.WriteString("cmd-")
	for _, r := range strings.ToLower(category + "-" + name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func tagClass(tag string) string {
	switch tag {
	case catalog.TagDangerous:
		return "tag tag-danger"
	case catalog.TagProduction:
		return "tag tag-production"
	}
	return "tag"
}
