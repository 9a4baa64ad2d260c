// Package main is the entry point for the gotsdoc CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gotsdoc/internal/cli"
	"github.com/yaklabco/gotsdoc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrDiagnosticsFound):
			// Diagnostics were already printed; the error is only an
			// exit-code signal.
			return cli.ExitDiagnostics
		case errors.Is(err, cli.ErrConfigInvalid):
			return cli.ExitConfigError
		case errors.Is(err, cli.ErrFileRead):
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitIOError
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
	}

	return cli.ExitSuccess
}
