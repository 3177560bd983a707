package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/artisan-ref/internal/search"
)

// Focus identifies the pane receiving navigation keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusDetail
)

// UIState manages all UI-specific state for the TUI: sizes, the query
// input, the sidebar cursor, the current selection and the detail viewport.
// The catalog itself never lives here.
type UIState struct {
	// Viewport management
	viewport     viewport.Model
	width        int
	height       int
	sidebarWidth int

	// Query input
	input      textinput.Model
	searchMode bool

	// Navigation
	cursor        int
	focus         Focus
	selection     search.Selection
	exampleCursor int

	showHelp bool
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	input := textinput.New()
	input.Placeholder = "Buscar comandos..."
	input.Prompt = "🔍 "
	input.CharLimit = 64

	u := &UIState{
		width:        defaultViewportWidth,
		height:       defaultViewportHeight,
		sidebarWidth: defaultSidebarWidth,
		input:        input,
	}
	u.UpdateViewportSize()
	return u
}

// GetViewport returns the detail viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// SidebarWidth returns the sidebar width, capped to half the screen.
func (u *UIState) SidebarWidth() int {
	return min(u.sidebarWidth, u.width/2)
}

// SetSidebarWidth sets the preferred sidebar width.
func (u *UIState) SetSidebarWidth(width int) {
	if width > 0 {
		u.sidebarWidth = width
	}
}

// DetailWidth returns the width left for the detail pane.
func (u *UIState) DetailWidth() int {
	return u.width - u.SidebarWidth()
}

// PaneHeight returns the height of both panes.
func (u *UIState) PaneHeight() int {
	return max(u.height-footerLines, 3)
}

// UpdateViewportSize resizes the detail viewport to fit inside its pane.
func (u *UIState) UpdateViewportSize() {
	w := max(u.DetailWidth()-4, 10)
	h := max(u.PaneHeight()-2, 1)
	yOffset := u.viewport.YOffset
	u.viewport = viewport.New(w, h)
	u.viewport.SetYOffset(yOffset)
	u.input.Width = max(u.SidebarWidth()-8, 8)
}

// GetCursor returns the sidebar cursor.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the sidebar cursor.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = max(cursor, 0)
}

// ClampCursor keeps the cursor within a list of listLen entries.
func (u *UIState) ClampCursor(listLen int) {
	if listLen <= 0 {
		u.cursor = 0
		return
	}
	u.cursor = min(max(u.cursor, 0), listLen-1)
}

// MoveCursorDown moves the cursor down by one, stopping at the end.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// MoveCursorUp moves the cursor up by one, stopping at the start.
func (u *UIState) MoveCursorUp(listLen int) {
	if u.cursor > 0 {
		u.cursor--
	}
	u.ClampCursor(listLen)
}

// IsSearchMode returns whether the query input has focus.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode focuses or blurs the query input. Leaving search mode keeps
// the query.
func (u *UIState) SetSearchMode(active bool) tea.Cmd {
	u.searchMode = active
	if active {
		return u.input.Focus()
	}
	u.input.Blur()
	return nil
}

// Query returns the current filter query.
func (u *UIState) Query() string {
	return u.input.Value()
}

// SetQuery replaces the filter query.
func (u *UIState) SetQuery(query string) {
	u.input.SetValue(query)
	u.input.CursorEnd()
}

// Input returns the query input model.
func (u *UIState) Input() *textinput.Model {
	return &u.input
}

// Focus returns the focused pane.
func (u *UIState) Focus() Focus {
	return u.focus
}

// ToggleFocus switches focus between sidebar and detail.
func (u *UIState) ToggleFocus() {
	if u.focus == FocusSidebar {
		u.focus = FocusDetail
	} else {
		u.focus = FocusSidebar
	}
}

// Selection returns the selected (category, command) pair.
func (u *UIState) Selection() search.Selection {
	return u.selection
}

// SetSelection selects a command and resets the example cursor and the
// detail scroll position.
func (u *UIState) SetSelection(sel search.Selection) {
	u.selection = sel
	u.exampleCursor = 0
	u.viewport.GotoTop()
}

// ExampleCursor returns the highlighted example index.
func (u *UIState) ExampleCursor() int {
	return u.exampleCursor
}

// SetExampleCursor sets the highlighted example, clamped to count examples.
func (u *UIState) SetExampleCursor(index, count int) {
	if count <= 0 {
		u.exampleCursor = 0
		return
	}
	u.exampleCursor = min(max(index, 0), count-1)
}

// ShowHelp reports whether the help overlay is visible.
func (u *UIState) ShowHelp() bool {
	return u.showHelp
}

// ToggleHelp shows or hides the help overlay.
func (u *UIState) ToggleHelp() {
	u.showHelp = !u.showHelp
}
