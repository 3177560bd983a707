package format

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// fragments render HTML that the converter turns into Markdown.
var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"label": func(key string) string { return labels[key] },
}).Parse(`
{{- define "command" -}}
<h3>{{ .Name }}</h3>
{{- if .Dangerous }}<p><strong>⚠️ {{ label "dangerous" }}</strong></p>{{ end }}
{{- if .Description }}<p>{{ .Description }}</p>{{ end }}
<p><strong>{{ label "examples" }}</strong></p>
{{- range .Examples }}<pre><code>{{ . }}</code></pre>{{ end }}
{{- if .Options }}
<p><strong>{{ label "options" }}</strong></p>
<table><thead><tr><th>Opción</th><th>Descripción</th></tr></thead><tbody>
{{- range .Options }}<tr><td><code>{{ .Name }}</code></td><td>{{ .Desc }}</td></tr>{{ end }}
</tbody></table>
{{- end }}
{{- if .Tags }}<p>{{ label "tags" }}: {{ range $i, $t := .Tags }}{{ if $i }}, {{ end }}<code>{{ $t }}</code>{{ end }}</p>{{ end }}
{{- end -}}

{{- define "category" -}}
<h2>{{ .Icon }} {{ .Name }}</h2>
{{- range .Commands }}{{ template "command" . }}{{ end }}
{{- end -}}

{{- define "catalog" -}}
{{- if .Title }}<h1>{{ .Title }}</h1><p>{{ .View.Total }} {{ label "commands" }}</p>{{ end }}
{{- range .View.Categories }}{{ template "category" . }}{{ else }}<p>{{ label "empty" }}</p>{{ end }}
{{- end -}}

{{- define "categories" -}}
<table><thead><tr><th></th><th>Categoría</th><th>Comandos</th></tr></thead><tbody>
{{- range .Categories }}<tr><td>{{ .Icon }}</td><td>{{ .Name }}</td><td>{{ .Count }}</td></tr>{{ end }}
</tbody></table>
<p>Total: {{ .Total }} {{ label "commands" }}</p>
{{- end -}}
`))

var labels = map[string]string{
	"empty":     LabelEmpty,
	"examples":  LabelExamples,
	"options":   LabelOptions,
	"dangerous": LabelDangerous,
	"commands":  LabelCommands,
	"tags":      LabelTags,
}

// MarkdownFormatter renders Markdown documents.
type MarkdownFormatter struct {
	// Title, when set, is emitted as the top-level heading of catalog output.
	Title string

	conv *converter.Converter
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{conv: newConverter()}
}

func newConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
}

func (f *MarkdownFormatter) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if f.conv == nil {
		f.conv = newConverter()
	}
	md, err := f.conv.ConvertString(buf.String())
	if err != nil {
		return fmt.Errorf("convert %s to markdown: %w", name, err)
	}
	_, err = io.WriteString(w, strings.TrimSpace(md)+"\n")
	return err
}

// FormatCatalog writes every category as a section.
func (f *MarkdownFormatter) FormatCatalog(c *catalog.Catalog, w io.Writer) error {
	return f.render(w, "catalog", struct {
		Title string
		View  CatalogView
	}{f.Title, NewCatalogView(c, true)})
}

// FormatCategories writes a summary table.
func (f *MarkdownFormatter) FormatCategories(c *catalog.Catalog, w io.Writer) error {
	return f.render(w, "categories", NewCatalogView(c, false))
}

// FormatCommand writes a single command section.
func (f *MarkdownFormatter) FormatCommand(category string, cmd catalog.Command, w io.Writer) error {
	return f.render(w, "command", NewCommandView(category, cmd))
}
