package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// Border is the lipgloss border drawn around every table.
	Border lipgloss.Border

	// HeaderStyle styles the header row.
	HeaderStyle lipgloss.Style

	// DangerStyle styles rows of dangerous commands.
	DangerStyle lipgloss.Style

	// ProductionStyle styles rows of production-related commands.
	ProductionStyle lipgloss.Style

	// MaxDescription truncates descriptions in listings; 0 disables.
	MaxDescription int
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders:     true,
		Border:          lipgloss.RoundedBorder(),
		HeaderStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1),
		DangerStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1),
		ProductionStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 1),
		MaxDescription:  60,
	}
}

// TableFormatter prints bordered tables with lipgloss/table.
type TableFormatter struct {
	config *TableConfig
}

// NewTableFormatter creates a new TableFormatter with the default config.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{config: DefaultTableConfig()}
}

func (f *TableFormatter) newTable(headers ...string) *table.Table {
	t := table.New().
		Border(f.config.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
	if f.config.ShowHeaders {
		t = t.Headers(headers...)
	}
	return t
}

// rowStyle picks the style of a data row from the classification of the
// command it shows.
func (f *TableFormatter) rowStyle(classes []catalog.TagClass) func(row, col int) lipgloss.Style {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return f.config.HeaderStyle
		}
		if row < 0 || row >= len(classes) {
			return cell
		}
		switch {
		case classes[row].IsDangerous:
			return f.config.DangerStyle
		case classes[row].IsProductionRelated:
			return f.config.ProductionStyle
		}
		return cell
	}
}

// FormatCatalog prints one row per command.
func (f *TableFormatter) FormatCatalog(c *catalog.Catalog, w io.Writer) error {
	if c.Len() == 0 {
		_, err := fmt.Fprintln(w, LabelEmpty)
		return err
	}
	t := f.newTable("Categoría", "Comando", "Descripción", LabelTags)
	var classes []catalog.TagClass
	for _, cat := range c.All() {
		for _, cmd := range cat.Commands {
			t.Row(cat.Name, cmd.Name, truncateString(cmd.Description, f.config.MaxDescription), strings.Join(cmd.Tags, ", "))
			classes = append(classes, catalog.ClassifyTags(cmd))
		}
	}
	t.StyleFunc(f.rowStyle(classes))
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// FormatCategories prints one row per category and a total row.
func (f *TableFormatter) FormatCategories(c *catalog.Catalog, w io.Writer) error {
	t := f.newTable("", "Categoría", "Comandos")
	for _, cat := range c.All() {
		t.Row(cat.DisplayIcon(), cat.Name, strconv.Itoa(len(cat.Commands)))
	}
	t.Row("", "Total", strconv.Itoa(c.CountAll()))
	t.StyleFunc(f.rowStyle(nil))
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// FormatCommand prints a summary table followed by examples and options.
func (f *TableFormatter) FormatCommand(category string, cmd catalog.Command, w io.Writer) error {
	class := catalog.ClassifyTags(cmd)

	summary := f.newTable("Campo", "Valor").
		Row("Comando", cmd.Name).
		Row("Categoría", category).
		Row("Descripción", cmd.Description)
	if len(cmd.Tags) > 0 {
		summary.Row(LabelTags, strings.Join(cmd.Tags, ", "))
	}
	if class.IsDangerous {
		summary.Row("Aviso", LabelDangerous)
	}
	summary.StyleFunc(f.rowStyle(nil))

	examples := f.newTable("#", LabelExamples)
	for i, ex := range cmd.Examples {
		examples.Row(strconv.Itoa(i+1), ex)
	}
	examples.StyleFunc(f.rowStyle(nil))

	parts := []string{summary.String(), examples.String()}
	if cmd.HasOptions() {
		options := f.newTable("Opción", "Descripción")
		for _, opt := range cmd.Options {
			options.Row(opt.Name, opt.Desc)
		}
		options.StyleFunc(f.rowStyle(nil))
		parts = append(parts, LabelOptions, options.String())
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "\n"))
	return err
}

// truncateString shortens s to limit runes, marking the cut with "...".
func truncateString(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
