// Package cli provides the Cobra command structure for gohighlight.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gohighlight/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gohighlight command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "gohighlight",
		Short: "Highlight text queries inside HTML documents",
		Long: `gohighlight marks literal, regular-expression and XPath-range queries
inside HTML (or Markdown) documents, preserving the document structure.

Each named query set owns a contiguous range of highlight ids and a
rotating CSS group class, so multiple independent sets can coexist in one
document. The marked document is written back as HTML; text and JSON
reports summarize the applied sets.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
