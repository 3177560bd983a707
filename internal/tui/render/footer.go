package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/artisan-ref/internal/errors"
)

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	SearchMode bool
	Query      string
	// Help is the rendered short help of the active key map.
	Help string
	// Status is the transient status message, empty when none.
	Status     string
	StatusType errors.MessageType
	Width      int
}

// Footer renders the status message, when present, above the key help.
func Footer(state FooterState) string {
	var lines []string
	if state.Status != "" {
		lines = append(lines, StatusLine(state.Status, state.StatusType))
	} else if !state.SearchMode && state.Query != "" {
		lines = append(lines, mutedStyle.Render("Filtro: "+state.Query+"  (esc para limpiar)"))
	}
	lines = append(lines, Truncate(state.Help, state.Width))
	return strings.Join(lines, "\n")
}

// StatusLine renders a status message styled by its type.
func StatusLine(text string, msgType errors.MessageType) string {
	style := lipgloss.NewStyle()
	prefix := ""
	switch msgType {
	case errors.MessageTypeError:
		style = style.Foreground(colorAccent)
		prefix = "✗ "
	case errors.MessageTypeWarning:
		style = style.Foreground(colorWarn)
		prefix = "! "
	case errors.MessageTypeSuccess:
		style = style.Foreground(colorSuccess)
		prefix = "✓ "
	default:
		style = style.Foreground(colorMuted)
	}
	return style.Render(prefix + text)
}

// HelpOverlay centers the full key help in a bordered box.
func HelpOverlay(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(titleStyle.Render("Atajos de teclado") + "\n\n" + content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Layout places the sidebar and the detail pane side by side.
func Layout(sidebar, detail string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)
}

// DetailPane wraps rendered detail content in the pane border.
func DetailPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	style = style.Width(max(width-2, 20))
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(content)
}
