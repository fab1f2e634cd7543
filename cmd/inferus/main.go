// Package main is the entry point for the inferus CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/inferus/internal/cli"
	"github.com/yaklabco/inferus/internal/logging"
)

// Build-time variables set via ldflags.
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
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		// ErrParseAnomalies only selects the exit code; check already reported them.
		if !errors.Is(err, cli.ErrParseAnomalies) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
