package state

import (
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/cristianoliveira/artisan-ref/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	width, height := m.uiState.GetWidth(), m.uiState.GetHeight()
	if m.uiState.ShowHelp() {
		return render.HelpOverlay(m.help.FullHelpView(m.keys.FullHelp()), width, height)
	}

	sidebar := render.Sidebar(render.SidebarState{
		Total:   m.catalog.CountAll(),
		Input:   m.uiState.Input().View(),
		Rows:    m.sidebarRows(),
		Width:   m.uiState.SidebarWidth(),
		Height:  m.uiState.PaneHeight(),
		Focused: m.uiState.Focus() == FocusSidebar || m.uiState.IsSearchMode(),
	})
	detail := render.DetailPane(
		m.uiState.GetViewport().View(),
		m.uiState.DetailWidth(),
		m.uiState.PaneHeight(),
		m.uiState.Focus() == FocusDetail && !m.uiState.IsSearchMode(),
	)

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.uiState.IsSearchMode() {
		helpView = m.help.ShortHelpView(searchKeyMap{m.keys}.ShortHelp())
	}
	status, statusType, _ := m.Status()
	footer := render.Footer(render.FooterState{
		SearchMode: m.uiState.IsSearchMode(),
		Query:      m.uiState.Query(),
		Help:       helpView,
		Status:     status,
		StatusType: statusType,
		Width:      width,
	})

	return render.Layout(sidebar, detail) + "\n" + footer
}

// sidebarRows flattens the filtered catalog into header and command rows.
func (m *Model) sidebarRows() []render.SidebarRow {
	sel := m.uiState.Selection()
	cursor := m.uiState.GetCursor()
	rows := make([]render.SidebarRow, 0, len(m.entries)+m.filtered.Len())
	i := 0
	for _, cat := range m.filtered.All() {
		rows = append(rows, render.SidebarRow{
			Header:   true,
			Icon:     cat.DisplayIcon(),
			Category: cat.Name,
			Count:    len(cat.Commands),
		})
		for _, cmd := range cat.Commands {
			rows = append(rows, render.SidebarRow{
				Category:  cat.Name,
				Name:      cmd.Name,
				Dangerous: catalog.ClassifyTags(cmd).IsDangerous,
				Cursor:    i == cursor,
				Active:    sel == search.Selection{Category: cat.Name, Command: cmd.Name},
			})
			i++
		}
	}
	return rows
}

// updateViewportContent re-renders the detail pane for the current selection.
func (m *Model) updateViewportContent() {
	sel := m.uiState.Selection()
	cmd, found := m.ActiveCommand()
	icon := ""
	if cat, ok := m.catalog.Category(sel.Category); ok {
		icon = cat.DisplayIcon()
	}
	content := render.Detail(render.DetailState{
		Category:      sel.Category,
		Icon:          icon,
		Command:       cmd,
		Found:         found,
		Hero:          !m.home.IsZero() && sel == m.home,
		ExampleCursor: m.uiState.ExampleCursor(),
		CopiedIndex:   m.copiedIndex,
		Width:         m.uiState.GetViewport().Width,
	})
	m.uiState.GetViewport().SetContent(content)
}
