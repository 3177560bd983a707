package main

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/format"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/spf13/cobra"
)

const showCommandLong = `Show the full reference of one command.

USAGE:
    artisan-ref show <category> <command> [OPTIONS]

OPTIONS:
    --format=<format>    Output format: simple (default), table, json, yaml, markdown
    --copy <n>           Copy example n (1-based) to the clipboard
    -h, --help           Show this help

Names are matched exactly, including case.

EXAMPLES:
    artisan-ref show Generales about
    artisan-ref show Cache cache:clear --copy 1`

// ErrCommandNotFound is returned when a category/command pair does not resolve.
var ErrCommandNotFound = errors.New("command not found")

// ErrExampleOutOfRange is returned when --copy names a missing example.
var ErrExampleOutOfRange = errors.New("example out of range")

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client appClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	var (
		formatName string
		copyIndex  int
	)

	showCmd := &cobra.Command{
		Use:   "show <category> <command>",
		Short: "Show one command",
		Long:  showCommandLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Catalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			category, name := args[0], args[1]
			command, ok := search.ResolveActiveCommand(c, category, name)
			if !ok {
				return fmt.Errorf("%w: %s / %s", ErrCommandNotFound, category, name)
			}

			f, err := format.New(outputFormat(cmd, formatName))
			if err != nil {
				return err
			}
			if err := f.FormatCommand(category, command, cmd.OutOrStdout()); err != nil {
				return err
			}

			if !cmd.Flags().Changed("copy") {
				return nil
			}
			if copyIndex < 1 || copyIndex > len(command.Examples) {
				return fmt.Errorf("%w: %s has %d example(s), got %d", ErrExampleOutOfRange, name, len(command.Examples), copyIndex)
			}
			example := command.Examples[copyIndex-1]
			// stdout may be piped into another tool, so the terminal is
			// reached through stderr and only when it is one.
			copier := client.Copier(clipboard.TerminalWriter(cmd.ErrOrStderr()))
			if err := copier.Copy(example); err != nil {
				colors.StructuredWarn("show", "copy", "failed", err, map[string]any{"command": name, "example": copyIndex})
				return fmt.Errorf("copy example %d: %w", copyIndex, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Copiado: %s\n", example)
			return nil
		},
	}

	showCmd.Flags().StringVar(&formatName, "format", "", "Output format (defaults to list_format)")
	showCmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy example n to the clipboard")

	return showCmd
}

var showCmd = NewShowCmd(client)

func init() {
	cmd.RootCmd.AddCommand(showCmd)
}
