// Package main is the entry point for the gohighlight CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gohighlight/internal/cli"
	"github.com/yaklabco/gohighlight/internal/logging"
)

// Build-time variables set by the release pipeline via ldflags.
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
		if errors.Is(err, cli.ErrNoHighlights) {
			return cli.ExitNoHighlights
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}

	return cli.ExitOK
}
