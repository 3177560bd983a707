package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/format"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/spf13/cobra"
)

const listCommandLong = `List catalog commands, optionally filtered.

USAGE:
    artisan-ref list [OPTIONS]

OPTIONS:
    --search <text>      Keep commands whose name, description or tags contain text (case-insensitive)
    --category <name>    Keep only this category
    --format=<format>    Output format: simple (default), table, json, yaml, markdown
    -h, --help           Show this help

EXAMPLES:
    artisan-ref list --search cache
    artisan-ref list --search PROD --format table
    artisan-ref list --category Cache --format json`

// ErrUnknownCategory is returned when a category filter names no category.
var ErrUnknownCategory = errors.New("unknown category")

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var (
		query      string
		category   string
		formatName string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List commands",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Catalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			filtered, err := filterCatalog(c, query, category)
			if err != nil {
				return err
			}
			colors.StructuredDebug("list", "filter", "completed", nil, map[string]any{
				"query":    query,
				"category": category,
				"matches":  filtered.CountAll(),
			})

			name := outputFormat(cmd, formatName)
			f, err := format.New(name)
			if err != nil {
				return err
			}
			if filtered.Len() == 0 && isMachineFormat(name) {
				// Machine output stays parseable; the notice goes to stderr.
				colors.LogInfo(format.LabelEmpty)
			}
			return f.FormatCatalog(filtered, cmd.OutOrStdout())
		},
	}

	listCmd.Flags().StringVar(&query, "search", "", "Filter text")
	listCmd.Flags().StringVar(&category, "category", "", "Category to list")
	listCmd.Flags().StringVar(&formatName, "format", "", "Output format (defaults to list_format)")

	return listCmd
}

// filterCatalog applies the category restriction, then the text filter.
func filterCatalog(c *catalog.Catalog, query, category string) (*catalog.Catalog, error) {
	if category != "" {
		if _, ok := c.Category(category); !ok {
			return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownCategory, category, strings.Join(c.Categories(), ", "))
		}
		c = c.Subset(func(name string, _ catalog.Command) bool { return name == category })
	}
	return search.FilterCatalog(c, query), nil
}

// outputFormat returns the --format value, or list_format when the flag is unset.
func outputFormat(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	return config.Get("list_format", string(format.FormatterTypeSimple))
}

func isMachineFormat(name string) bool {
	switch format.FormatterType(strings.ToLower(strings.TrimSpace(name))) {
	case format.FormatterTypeJSON, format.FormatterTypeYAML:
		return true
	}
	return false
}

var listCmd = NewListCmd(client)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
