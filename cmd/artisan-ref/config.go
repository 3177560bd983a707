package main

import (
	"fmt"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const configCommandLong = `Inspect and create the configuration file.

USAGE:
    artisan-ref config <subcommand>

SUBCOMMANDS:
    show    Print the resolved configuration as TOML
    path    Print the configuration file location
    init    Write a configuration file with the default values

Environment variables ARTISAN_REF_<KEY> override the file.`

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the configuration file",
		Long:  configCommandLong,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())
	configCmd.AddCommand(newConfigInitCmd())

	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(config.All())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			if err := config.WriteSample(path); err != nil {
				return err
			}
			colors.StructuredInfo("config", "init", "completed", nil, map[string]any{"path": path})
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

var configCmd = NewConfigCmd()

func init() {
	cmd.RootCmd.AddCommand(configCmd)
}
