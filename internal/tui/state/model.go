// Package state holds the bubbletea model of the viewer. The model owns the
// query and the selection; filtering and resolution are delegated to the
// search package on every change.
package state

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/errors"
	"github.com/cristianoliveira/artisan-ref/internal/logging"
	"github.com/cristianoliveira/artisan-ref/internal/search"
)

const (
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	defaultSidebarWidth   = 34
	footerLines           = 2

	// DefaultCopyFeedback is how long the copy marker stays on an example.
	DefaultCopyFeedback = 2 * time.Second
	errorClearDuration  = 5 * time.Second
)

// Options configures a new Model.
type Options struct {
	// Catalog to browse; the embedded catalog when nil.
	Catalog *catalog.Catalog
	// Copier receives copied examples; the auto clipboard when nil.
	Copier clipboard.Copier
	// Query pre-fills the filter.
	Query string
	// Home is the landing command. The hero banner shows while it is selected.
	Home search.Selection
	// Selection is the initial command; Home when zero.
	Selection search.Selection
	// CopyFeedback overrides DefaultCopyFeedback when positive.
	CopyFeedback time.Duration
	// SidebarWidth overrides the default sidebar width when positive.
	SidebarWidth int
}

// entry is a selectable sidebar line.
type entry struct {
	category string
	command  catalog.Command
}

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState *UIState
	keys    keyMap
	help    help.Model

	catalog  *catalog.Catalog
	filtered *catalog.Catalog
	entries  []entry
	home     search.Selection

	copier       clipboard.Copier
	copyFeedback time.Duration
	copiedIndex  int
	copySeq      int

	errorHandler *errors.TUIHandler
	statusTTL    time.Duration
	statusSeq    int

	log logging.Logger
}

// NewModel creates a new TUI model.
func NewModel(opts Options) *Model {
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}
	copier := opts.Copier
	if copier == nil {
		// stdout belongs to the renderer.
		copier = clipboard.New(clipboard.BackendAuto, clipboard.TerminalWriter(os.Stderr))
	}
	feedback := opts.CopyFeedback
	if feedback <= 0 {
		feedback = DefaultCopyFeedback
	}

	m := &Model{
		uiState:      NewUIState(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		catalog:      c,
		home:         opts.Home,
		copier:       copier,
		copyFeedback: feedback,
		copiedIndex:  -1,
		statusTTL:    max(errorClearDuration, feedback),
		log:          logging.With("component", "tui"),
	}
	m.uiState.SetSidebarWidth(opts.SidebarWidth)
	m.uiState.UpdateViewportSize()

	m.errorHandler = errors.NewTUIHandler(func(errors.Message) {
		m.statusSeq++
	})

	m.uiState.SetSelection(m.initialSelection(opts.Selection))
	m.uiState.SetQuery(opts.Query)
	m.refilter()
	if idx := m.entryIndex(m.uiState.Selection()); idx >= 0 {
		m.uiState.SetCursor(idx)
	}
	m.updateViewportContent()
	return m
}

// initialSelection picks requested, then home, then the first command.
func (m *Model) initialSelection(requested search.Selection) search.Selection {
	for _, sel := range []search.Selection{requested, m.home} {
		if sel.IsZero() {
			continue
		}
		if _, ok := sel.Resolve(m.catalog); ok {
			return sel
		}
		m.log.Debug("selection does not resolve", "category", sel.Category, "command", sel.Command)
	}
	for _, cat := range m.catalog.All() {
		if len(cat.Commands) > 0 {
			return search.Selection{Category: cat.Name, Command: cat.Commands[0].Name}
		}
	}
	return search.Selection{}
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	if m.uiState.IsSearchMode() {
		return m.uiState.Input().Focus()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case copyResultMsg:
		return m.handleCopyResult(msg)
	case clearCopiedMsg:
		if msg.seq == m.copySeq && m.copiedIndex >= 0 {
			m.copiedIndex = -1
			m.updateViewportContent()
		}
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.errorHandler.Clear()
		}
		return m, nil
	}

	if m.uiState.IsSearchMode() {
		input, cmd := m.uiState.Input().Update(msg)
		*m.uiState.Input() = input
		return m, cmd
	}
	return m, nil
}

// Selection returns the current (category, command) selection.
func (m *Model) Selection() search.Selection {
	return m.uiState.Selection()
}

// Query returns the current filter query.
func (m *Model) Query() string {
	return m.uiState.Query()
}

// Filtered returns the catalog view currently listed in the sidebar.
func (m *Model) Filtered() *catalog.Catalog {
	return m.filtered
}

// ActiveCommand resolves the selection against the full catalog, so a
// selection stays visible while the filter hides it from the sidebar.
func (m *Model) ActiveCommand() (catalog.Command, bool) {
	return m.uiState.Selection().Resolve(m.catalog)
}

// Status returns the status message, unless it is older than the longest
// clear delay. The delay covers a clear tick that never arrives.
func (m *Model) Status() (string, errors.MessageType, bool) {
	msg, ok := m.errorHandler.Current(m.statusTTL)
	if !ok {
		return "", errors.MessageTypeInfo, false
	}
	return msg.Text, msg.Type, true
}

// refilter recomputes the filtered catalog and the sidebar entries.
func (m *Model) refilter() {
	m.filtered = search.FilterCatalog(m.catalog, m.uiState.Query())
	m.entries = m.entries[:0]
	for _, cat := range m.filtered.All() {
		for _, cmd := range cat.Commands {
			m.entries = append(m.entries, entry{category: cat.Name, command: cmd})
		}
	}
	m.uiState.ClampCursor(len(m.entries))
}

func (m *Model) entryIndex(sel search.Selection) int {
	for i, e := range m.entries {
		if e.category == sel.Category && e.command.Name == sel.Command {
			return i
		}
	}
	return -1
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.help.Width = msg.Width
	m.updateViewportContent()
	return m, nil
}
