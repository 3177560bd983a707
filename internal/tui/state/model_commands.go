package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// copyExample returns the command that copies example index of the active
// command. Problems are reported on the status line; nothing here is fatal.
func (m *Model) copyExample(index int) tea.Cmd {
	cmd, ok := m.ActiveCommand()
	if !ok {
		m.errorHandler.Warning("Ningún comando seleccionado")
		return clearStatusAfter(errorClearDuration, m.statusSeq)
	}
	if index < 0 || index >= len(cmd.Examples) {
		m.errorHandler.Warning(fmt.Sprintf("%s no tiene ejemplo %d", cmd.Name, index+1))
		return clearStatusAfter(errorClearDuration, m.statusSeq)
	}
	m.uiState.SetExampleCursor(index, len(cmd.Examples))
	m.updateViewportContent()

	sel := m.uiState.Selection()
	text := cmd.Examples[index]
	copier := m.copier
	return func() tea.Msg {
		return copyResultMsg{selection: sel, index: index, text: text, err: copier.Copy(text)}
	}
}

// handleCopyResult shows the copy marker and status, then schedules both to
// clear.
func (m *Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("copy failed", "error", msg.err.Error())
		m.errorHandler.Error(fmt.Sprintf("No se pudo copiar: %v", msg.err))
		return m, clearStatusAfter(errorClearDuration, m.statusSeq)
	}

	m.log.Debug("example copied", "command", msg.selection.Command, "index", msg.index)
	m.errorHandler.Success("Copiado: " + msg.text)
	cmds := []tea.Cmd{clearStatusAfter(m.copyFeedback, m.statusSeq)}
	if msg.selection == m.uiState.Selection() {
		m.copySeq++
		m.copiedIndex = msg.index
		m.updateViewportContent()
		cmds = append(cmds, clearCopiedAfter(m.copyFeedback, m.copySeq))
	}
	return m, tea.Batch(cmds...)
}
