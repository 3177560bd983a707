package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
)

const (
	HeroTitle    = "Guía Completa de Artisan CLI"
	HeroSubtitle = "Referencia interactiva de todos los comandos Artisan para Laravel"

	ExamplesLabel  = "Ejemplos de uso"
	OptionsLabel   = "Opciones disponibles"
	DangerousLabel = "Peligroso"
	CopiedLabel    = "✓ Copiado"
	NoCommandLabel = "Selecciona un comando de la lista"
)

// DetailState defines the inputs needed to render the detail pane.
type DetailState struct {
	Category string
	Icon     string
	Command  catalog.Command
	// Found is false when the selection does not resolve to a command.
	Found bool
	// Hero shows the welcome banner above the command.
	Hero          bool
	ExampleCursor int
	// CopiedIndex is the example currently showing copy feedback, or -1.
	CopiedIndex int
	Width       int
}

// Hero renders the welcome banner.
func Hero(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(HeroTitle)
	subtitle := mutedStyle.Render("📖 " + HeroSubtitle)
	return lipgloss.NewStyle().Width(max(width, 20)).MarginBottom(1).Render(title + "\n" + subtitle)
}

// Detail renders the content of the detail pane.
func Detail(state DetailState) string {
	var b strings.Builder
	if state.Hero {
		b.WriteString(Hero(state.Width))
		b.WriteString("\n")
	}
	if !state.Found {
		b.WriteString(mutedStyle.Render(NoCommandLabel))
		return b.String()
	}

	cmd := state.Command
	class := catalog.ClassifyTags(cmd)

	header := titleStyle.Render(cmd.Name) + " " + badgeStyle.Render(strings.TrimSpace(state.Icon+" "+state.Category))
	if class.IsDangerous {
		header += " " + dangerBadgeStyle.Render("⚠ "+DangerousLabel)
	}
	b.WriteString(header)
	b.WriteString("\n")
	if cmd.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(max(state.Width, 20)).Render(cmd.Description))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render(ExamplesLabel))
	b.WriteString("\n")
	for i, ex := range cmd.Examples {
		b.WriteString(exampleLine(i, ex, i == state.ExampleCursor, i == state.CopiedIndex))
		b.WriteString("\n")
	}

	if cmd.HasOptions() {
		b.WriteString(sectionStyle.Render(OptionsLabel))
		b.WriteString("\n")
		b.WriteString(Options(cmd.Options))
		b.WriteString("\n")
	}

	if len(cmd.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(Tags(cmd.Tags))
		b.WriteString("\n")
	}
	return b.String()
}

func exampleLine(i int, example string, selected, copied bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("▸ ")
	}
	line := fmt.Sprintf("%s%s %s", marker, mutedStyle.Render(fmt.Sprintf("%d.", i+1)), codeStyle.Render(example))
	if copied {
		line += " " + copiedStyle.Render(CopiedLabel)
	}
	return line
}

// Options renders the option table as aligned name/description pairs.
func Options(options []catalog.Option) string {
	width := 0
	for _, opt := range options {
		width = max(width, lipgloss.Width(opt.Name))
	}
	nameStyle := lipgloss.NewStyle().Foreground(colorWarn).Width(width + 2)
	lines := make([]string, 0, len(options))
	for _, opt := range options {
		lines = append(lines, "  "+nameStyle.Render(opt.Name)+opt.Desc)
	}
	return strings.Join(lines, "\n")
}

// Tag renders one tag; reserved tags get their own colors.
func Tag(tag string) string {
	switch tag {
	case catalog.TagDangerous:
		return dangerTagStyle.Render(tag)
	case catalog.TagProduction:
		return productionTagStyle.Render(tag)
	}
	return tagStyle.Render(tag)
}

// Tags renders tags separated by a space.
func Tags(tags []string) string {
	rendered := make([]string, 0, len(tags))
	for _, tag := range tags {
		rendered = append(rendered, Tag(tag))
	}
	return strings.Join(rendered, " ")
}
