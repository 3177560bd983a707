package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.uiState.ShowHelp() {
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.uiState.ToggleHelp()
		}
		return m, nil
	}
	if m.uiState.IsSearchMode() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.uiState.ToggleHelp()
	case key.Matches(msg, m.keys.Search):
		return m, m.uiState.SetSearchMode(true)
	case key.Matches(msg, m.keys.ClearQuery):
		m.setQuery("")
	case key.Matches(msg, m.keys.Back):
		if m.uiState.Query() != "" {
			m.setQuery("")
		}
	case key.Matches(msg, m.keys.Focus):
		m.uiState.ToggleFocus()
	case key.Matches(msg, m.keys.Up):
		m.handleMoveUp()
	case key.Matches(msg, m.keys.Down):
		m.handleMoveDown()
	case key.Matches(msg, m.keys.Top):
		m.handleMoveTop()
	case key.Matches(msg, m.keys.Bottom):
		m.handleMoveBottom()
	case key.Matches(msg, m.keys.Select):
		m.selectCursor()
	case key.Matches(msg, m.keys.NextExample):
		m.moveExample(1)
	case key.Matches(msg, m.keys.PrevExample):
		m.moveExample(-1)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyExample(m.uiState.ExampleCursor())
	case key.Matches(msg, m.keys.CopyN):
		return m, m.copyExample(int(msg.Runes[0] - '1'))
	}
	return m, nil
}

// handleSearchKey handles keys while the query input has focus. Everything
// not bound here is typed into the query.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.SetSearchMode(false)
		return m, nil
	case tea.KeyEnter:
		m.uiState.SetSearchMode(false)
		m.selectCursor()
		return m, nil
	case tea.KeyCtrlU:
		m.setQuery("")
		return m, nil
	case tea.KeyUp:
		m.handleMoveUp()
		return m, nil
	case tea.KeyDown:
		m.handleMoveDown()
		return m, nil
	}

	before := m.uiState.Query()
	input, cmd := m.uiState.Input().Update(msg)
	*m.uiState.Input() = input
	if m.uiState.Query() != before {
		m.applyQuery()
	}
	return m, cmd
}

// setQuery replaces the query and refilters.
func (m *Model) setQuery(query string) {
	if m.uiState.Query() == query {
		return
	}
	m.uiState.SetQuery(query)
	m.applyQuery()
}

// applyQuery refilters after a query edit and puts the cursor on the first
// match.
func (m *Model) applyQuery() {
	m.refilter()
	m.uiState.SetCursor(0)
	m.log.Debug("query changed", "query", m.uiState.Query(), "matches", m.filtered.CountAll())
	m.updateViewportContent()
}
