package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/cristianoliveira/artisan-ref/internal/tui/state"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Interactive terminal viewer for the Artisan command catalog.

USAGE:
    artisan-ref tui [OPTIONS]

OPTIONS:
    --query <text>        Start with the filter pre-filled
    --category <name>     Start on a command of this category (with --command)
    --command <name>      Start on this command

KEY BINDINGS:
    j/k, ↑/↓     Move in the sidebar
    Enter        Show the highlighted command
    /            Search (Esc leaves search, ctrl+u clears)
    Tab          Switch focus between sidebar and detail
    J/K, n/p     Move between examples
    y, c         Copy the highlighted example
    1-9          Copy example N
    g/G          Jump to top/bottom
    ?            Help
    q, ctrl+c    Quit`

// tuiFlags holds the initial state requested on the command line.
type tuiFlags struct {
	query    string
	category string
	command  string
}

// programRunner runs a bubbletea model until it exits.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client appClient, runner programRunner) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}
	if runner == nil {
		panic("NewTUICmd: runner dependency cannot be nil")
	}

	var flags tuiFlags
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive viewer",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(client, runner, flags)
		},
	}

	tuiCmd.Flags().StringVar(&flags.query, "query", "", "Initial filter text")
	tuiCmd.Flags().StringVar(&flags.category, "category", "", "Initial category")
	tuiCmd.Flags().StringVar(&flags.command, "command", "", "Initial command")

	return tuiCmd
}

// modelOptions builds the viewer options from flags and configuration.
func modelOptions(client appClient, flags tuiFlags) (state.Options, error) {
	c, err := client.Catalog()
	if err != nil {
		return state.Options{}, fmt.Errorf("load catalog: %w", err)
	}
	return state.Options{
		Catalog: c,
		Copier:  client.Copier(clipboard.TerminalWriter(os.Stderr)),
		Query:   flags.query,
		Home: search.Selection{
			Category: config.Get("default_category", ""),
			Command:  config.Get("default_command", ""),
		},
		Selection:    search.Selection{Category: flags.category, Command: flags.command},
		CopyFeedback: time.Duration(config.GetInt("copy_feedback_ms", 2000)) * time.Millisecond,
		SidebarWidth: config.GetInt("sidebar_width", 0),
	}, nil
}

func runTUI(client appClient, runner programRunner, flags tuiFlags) error {
	opts, err := modelOptions(client, flags)
	if err != nil {
		return err
	}

	// JSON lines on stderr would corrupt the alternate screen.
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	if err := runner(state.NewModel(opts)); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

var tuiCmd = NewTUICmd(client, runProgram)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
	cmd.RootCmd.RunE = func(c *cobra.Command, args []string) error {
		return runTUI(client, runProgram, tuiFlags{})
	}
}
