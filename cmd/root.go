package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/version"
	"github.com/spf13/cobra"
)

var catalogFlag string

// RootCmd represents the base command when called without any subcommands.
// The tui command installs its runner as the bare action.
var RootCmd = &cobra.Command{
	Use:   "artisan-ref",
	Short: "Searchable reference of Laravel Artisan commands",
	Long: `Searchable reference of Laravel Artisan commands.

Run without a command to open the interactive viewer.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Console messages follow the command's writers.
		colors.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command. Errors are returned to main for reporting.
func Execute() error {
	return RootCmd.Execute()
}

// CatalogPath returns the catalog file requested with --catalog, then the
// catalog_path config key. Empty means the bundled catalog.
func CatalogPath() string {
	if p := strings.TrimSpace(catalogFlag); p != "" {
		return p
	}
	return strings.TrimSpace(config.Get("catalog_path", ""))
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.SetVersionTemplate(fmt.Sprintf("artisan-ref version %s\n", version.String()))

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file (TOML or YAML) to use instead of the bundled one")
}
