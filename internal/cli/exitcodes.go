package cli

import "errors"

// Exit codes returned by the CLI.
const (
	// ExitOK means the run completed.
	ExitOK = 0

	// ExitError means the command failed.
	ExitError = 1

	// ExitNoHighlights means --fail-when-empty was set and no highlights
	// were produced.
	ExitNoHighlights = 2
)

// ErrNoHighlights signals an empty run to main without logging it as a
// failure.
var ErrNoHighlights = errors.New("no highlights produced")
