package main

import (
	"fmt"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/format"
	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the categories command with explicit dependencies.
func NewCategoriesCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewCategoriesCmd: client dependency cannot be nil")
	}

	var formatName string
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with their command counts",
		Long: `List categories in catalog order with icon and command count,
followed by the total number of commands.

USAGE:
    artisan-ref categories [--format=<format>]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Catalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			f, err := format.New(outputFormat(cmd, formatName))
			if err != nil {
				return err
			}
			return f.FormatCategories(c, cmd.OutOrStdout())
		},
	}
	categoriesCmd.Flags().StringVar(&formatName, "format", "", "Output format (defaults to list_format)")

	return categoriesCmd
}

var categoriesCmd = NewCategoriesCmd(client)

func init() {
	cmd.RootCmd.AddCommand(categoriesCmd)
}
