package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// EmptyLabel is shown when the filter matches nothing.
	EmptyLabel = "No se encontraron comandos"
	// SidebarTitle heads the sidebar.
	SidebarTitle = "Artisan CLI"

	dangerMarker = "⚠"
)

// SidebarRow is one line of the sidebar: a category header or a command.
type SidebarRow struct {
	Header    bool
	Icon      string
	Category  string
	Count     int
	Name      string
	Dangerous bool
	// Cursor marks the row under the sidebar cursor.
	Cursor bool
	// Active marks the selected command.
	Active bool
}

// SidebarState defines the inputs needed to render the sidebar.
type SidebarState struct {
	Total   int
	Input   string
	Rows    []SidebarRow
	Width   int
	Height  int
	Focused bool
}

// Sidebar renders the title, the search input and the visible window of rows.
func Sidebar(state SidebarState) string {
	inner := max(state.Width-4, 10)

	var lines []string
	lines = append(lines, titleStyle.Render(SidebarTitle))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d comandos", state.Total)))
	lines = append(lines, state.Input, "")

	if len(state.Rows) == 0 {
		lines = append(lines, mutedStyle.Render(EmptyLabel))
	} else {
		budget := state.Height - len(lines) - 2
		cursor := 0
		for i, row := range state.Rows {
			if row.Cursor {
				cursor = i
				break
			}
		}
		start, end := VisibleWindow(len(state.Rows), cursor, budget)
		for _, row := range state.Rows[start:end] {
			lines = append(lines, sidebarRow(row, inner))
		}
	}

	style := paneStyle
	if state.Focused {
		style = focusedPaneStyle
	}
	style = style.Width(max(state.Width-2, 12))
	if state.Height > 2 {
		style = style.Height(state.Height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func sidebarRow(row SidebarRow, width int) string {
	if row.Header {
		label := fmt.Sprintf("%s %s", row.Icon, row.Category)
		count := fmt.Sprintf("%d", row.Count)
		gap := max(width-lipgloss.Width(label)-len(count), 1)
		return headerStyle.Render(label) + strings.Repeat(" ", gap) + mutedStyle.Render(count)
	}

	name := "  " + row.Name
	if row.Dangerous {
		name += " " + dangerMarker
	}
	name = Truncate(name, width)
	switch {
	case row.Cursor:
		return selectedStyle.Width(width).Render(name)
	case row.Active:
		return activeStyle.Render(name)
	}
	return name
}

// VisibleWindow returns the [start, end) range of n rows that fits height
// while keeping cursor visible. A non-positive height shows everything.
func VisibleWindow(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	cursor = min(max(cursor, 0), n-1)
	start := cursor - height/2
	start = min(max(start, 0), n-height)
	return start, start + height
}

// Truncate shortens s to width display cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
