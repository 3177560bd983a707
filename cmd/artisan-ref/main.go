package main

import (
	"os"

	"github.com/cristianoliveira/artisan-ref/cmd"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/errors"
	"github.com/cristianoliveira/artisan-ref/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run loads configuration, sets up logging and executes the command tree.
// It returns the process exit code.
func run(args []string, execute func() error) int {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled: " + err.Error())
	}
	defer func() { _ = logging.ShutdownGlobal() }()

	fields := map[string]any{"args": len(args)}
	if f := logging.CurrentLogFile(); f != "" {
		fields["log_file"] = f
	}
	colors.StructuredInfo("startup", "main", "started", nil, fields)
	cmd.RootCmd.SetArgs(args)
	if err := execute(); err != nil {
		colors.StructuredError("startup", "main", "failed", err, fields)
		errors.NewDefaultCLIHandler().Handle(err)
		return 1
	}
	colors.StructuredInfo("startup", "main", "completed", nil, fields)
	return 0
}
