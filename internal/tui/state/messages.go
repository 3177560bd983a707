package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/artisan-ref/internal/search"
)

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	selection search.Selection
	index     int
	text      string
	err       error
}

// clearCopiedMsg removes the copy marker set by the copy with the same seq.
type clearCopiedMsg struct {
	seq int
}

// clearStatusMsg removes the status message set with the same seq.
type clearStatusMsg struct {
	seq int
}

func clearCopiedAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{seq: seq}
	})
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
