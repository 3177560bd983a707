package state

import "github.com/cristianoliveira/artisan-ref/internal/search"

// handleMoveDown moves the sidebar cursor, or scrolls the detail pane when
// it has focus.
func (m *Model) handleMoveDown() {
	if m.uiState.Focus() == FocusDetail && !m.uiState.IsSearchMode() {
		vp := m.uiState.GetViewport()
		vp.SetYOffset(vp.YOffset + 1)
		return
	}
	m.uiState.MoveCursorDown(len(m.entries))
}

// handleMoveUp moves the sidebar cursor, or scrolls the detail pane when it
// has focus.
func (m *Model) handleMoveUp() {
	if m.uiState.Focus() == FocusDetail && !m.uiState.IsSearchMode() {
		vp := m.uiState.GetViewport()
		vp.SetYOffset(vp.YOffset - 1)
		return
	}
	m.uiState.MoveCursorUp(len(m.entries))
}

// handleMoveTop moves the cursor to the first command.
func (m *Model) handleMoveTop() {
	if m.uiState.Focus() == FocusDetail {
		m.uiState.GetViewport().GotoTop()
		return
	}
	m.uiState.SetCursor(0)
}

// handleMoveBottom moves the cursor to the last command.
func (m *Model) handleMoveBottom() {
	if m.uiState.Focus() == FocusDetail {
		m.uiState.GetViewport().GotoBottom()
		return
	}
	if len(m.entries) > 0 {
		m.uiState.SetCursor(len(m.entries) - 1)
	}
}

// selectCursor selects the command under the sidebar cursor.
func (m *Model) selectCursor() {
	if len(m.entries) == 0 {
		return
	}
	m.uiState.ClampCursor(len(m.entries))
	e := m.entries[m.uiState.GetCursor()]
	sel := search.Selection{Category: e.category, Command: e.command.Name}
	if sel == m.uiState.Selection() {
		return
	}
	m.uiState.SetSelection(sel)
	m.copiedIndex = -1
	m.log.Debug("command selected", "category", sel.Category, "command", sel.Command)
	m.updateViewportContent()
}

// moveExample moves the example cursor of the active command.
func (m *Model) moveExample(delta int) {
	cmd, ok := m.ActiveCommand()
	if !ok {
		return
	}
	m.uiState.SetExampleCursor(m.uiState.ExampleCursor()+delta, len(cmd.Examples))
	m.updateViewportContent()
}
