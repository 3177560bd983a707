package main

import (
	"fmt"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command with explicit dependencies.
func NewValidateCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewValidateCmd: client dependency cannot be nil")
	}

	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a catalog file",
		Long: `Load and validate a catalog file. Every problem is reported.

USAGE:
    artisan-ref validate [path]
    artisan-ref validate --catalog <path>

Without a path the active catalog (--catalog, catalog_path or the bundled
one) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   *catalog.Catalog
				err error
			)
			if len(args) == 1 {
				c, err = catalog.Load(args[0])
			} else {
				c, err = client.Catalog()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ catalog is valid: %d categories, %d commands\n", c.Len(), c.CountAll())
			return nil
		},
	}

	return validateCmd
}

var validateCmd = NewValidateCmd(client)

func init() {
	cmd.RootCmd.AddCommand(validateCmd)
}
