package main

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/export"
	"github.com/cristianoliveira/artisan-ref/internal/version"
	"github.com/spf13/cobra"
)

const exportCommandLong = `Export the catalog to a standalone file.

USAGE:
    artisan-ref export <kind> [OPTIONS]

KINDS:
    site        Single-page HTML reference with search and copy buttons
    markdown    Markdown document
    sqlite      SQLite database (categories, commands, examples, options, tags)

OPTIONS:
    -o, --out <path>    Output file (default: artisan-ref.html, .md or .db)
    --title <text>      Document title
    -h, --help          Show this help`

// NewExportCmd creates the export command with explicit dependencies.
func NewExportCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewExportCmd: client dependency cannot be nil")
	}

	var (
		out   string
		title string
	)

	exportCmd := &cobra.Command{
		Use:       "export <kind>",
		Short:     "Export the catalog (site, markdown, sqlite)",
		Long:      exportCommandLong,
		Args:      cobra.ExactArgs(1),
		ValidArgs: export.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := export.ParseKind(args[0])
			if err != nil {
				return err
			}
			c, err := client.Catalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			path := strings.TrimSpace(out)
			if path == "" {
				path = kind.DefaultFileName()
			}
			opts := export.DefaultOptions()
			opts.Version = version.String()
			if strings.TrimSpace(title) != "" {
				opts.Title = title
			}

			colors.StructuredInfo("export", "write", "started", nil, map[string]any{"kind": string(kind), "path": path})
			if err := export.ToFile(cmd.Context(), kind, c, path, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d commands (%s) to %s\n", c.CountAll(), kind, path)
			return nil
		},
	}

	exportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	exportCmd.Flags().StringVar(&title, "title", "", "Document title")

	return exportCmd
}

var exportCmd = NewExportCmd(client)

func init() {
	cmd.RootCmd.AddCommand(exportCmd)
}
