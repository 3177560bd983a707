package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

// Labels shared by the human-readable formatters.
const (
	LabelEmpty     = "No se encontraron comandos"
	LabelExamples  = "Ejemplos de uso"
	LabelOptions   = "Opciones disponibles"
	LabelDangerous = "Peligroso"
	LabelCommands  = "comandos"
	LabelTags      = "Tags"
)

// SimpleFormatter prints aligned plain text.
type SimpleFormatter struct {
	// NameWidth is the column width used for command names.
	NameWidth int
}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{NameWidth: 28}
}

// FormatCatalog prints one block per category.
func (f *SimpleFormatter) FormatCatalog(c *catalog.Catalog, w io.Writer) error {
	if c.Len() == 0 {
		_, err := fmt.Fprintln(w, LabelEmpty)
		return err
	}
	for i, cat := range c.All() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s (%d)\n", cat.DisplayIcon(), cat.Name, len(cat.Commands)); err != nil {
			return err
		}
		for _, cmd := range cat.Commands {
			line := fmt.Sprintf("  %-*s %s", f.NameWidth, cmd.Name, cmd.Description)
			if catalog.ClassifyTags(cmd).IsDangerous {
				line += " [" + LabelDangerous + "]"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatCategories prints a category per line followed by the total.
func (f *SimpleFormatter) FormatCategories(c *catalog.Catalog, w io.Writer) error {
	for _, cat := range c.All() {
		if _, err := fmt.Fprintf(w, "%s %-*s %3d\n", cat.DisplayIcon(), f.NameWidth, cat.Name, len(cat.Commands)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d %s\n", c.CountAll(), LabelCommands)
	return err
}

// FormatCommand prints the detail of a single command.
func (f *SimpleFormatter) FormatCommand(category string, cmd catalog.Command, w io.Writer) error {
	var b strings.Builder
	class := catalog.ClassifyTags(cmd)

	b.WriteString(cmd.Name)
	if category != "" {
		fmt.Fprintf(&b, "  [%s]", category)
	}
	if class.IsDangerous {
		b.WriteString("  " + LabelDangerous)
	}
	b.WriteString("\n")
	if cmd.Description != "" {
		b.WriteString(cmd.Description + "\n")
	}

	fmt.Fprintf(&b, "\n%s:\n", LabelExamples)
	for i, ex := range cmd.Examples {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ex)
	}

	if cmd.HasOptions() {
		width := 0
		for _, opt := range cmd.Options {
			width = max(width, len(opt.Name))
		}
		fmt.Fprintf(&b, "\n%s:\n", LabelOptions)
		for _, opt := range cmd.Options {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, opt.Name, opt.Desc)
		}
	}

	if len(cmd.Tags) > 0 {
		fmt.Fprintf(&b, "\n%s: %s\n", LabelTags, strings.Join(cmd.Tags, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
