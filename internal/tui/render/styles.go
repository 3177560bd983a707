// Package render holds the pure rendering functions of the viewer. Every
// function takes a plain state struct and returns a string.
package render

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent     = lipgloss.Color("203")
	colorWarn       = lipgloss.Color("221")
	colorMuted      = lipgloss.Color("241")
	colorBorder     = lipgloss.Color("238")
	colorSelectedBg = lipgloss.Color("24")
	colorSuccess    = lipgloss.Color("78")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(lipgloss.Color("255")).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")).MarginTop(1)
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	copiedStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	badgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(colorBorder).Padding(0, 1)
	dangerBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(colorAccent).Bold(true).Padding(0, 1)

	tagStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(colorBorder).Padding(0, 1)
	dangerTagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(colorAccent).Padding(0, 1)
	productionTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(colorWarn).Padding(0, 1)

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(colorAccent)
)
