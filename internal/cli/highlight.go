package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohighlight/internal/configloader"
	"github.com/yaklabco/gohighlight/internal/logging"
	"github.com/yaklabco/gohighlight/internal/ui/pretty"
	"github.com/yaklabco/gohighlight/pkg/config"
	"github.com/yaklabco/gohighlight/pkg/fsutil"
	"github.com/yaklabco/gohighlight/pkg/reporter"
	"github.com/yaklabco/gohighlight/pkg/runner"
)

// highlightFlags collects the flags of the highlight command.
type highlightFlags struct {
	setName       string
	queries       []string
	regexps       []string
	reserve       int
	disabled      bool
	format        string
	output        string
	summary       bool
	failWhenEmpty bool
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Apply query sets to a document and write the marked result",
		Long: `Read an HTML or Markdown document from a file or stdin, apply the query
sets from the configuration plus any sets given on the command line, and
write the result.

With --format html (the default) the marked document itself is written;
--format text and --format json write a run report instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.setName, "name", "n", "search",
		"query set name for --query/--regexp hits")
	cmd.Flags().StringArrayVarP(&flags.queries, "query", "q", nil,
		"literal query, matched case-insensitively (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.regexps, "regexp", "e", nil,
		"regular-expression query (repeatable)")
	cmd.Flags().IntVar(&flags.reserve, "reserve", -1,
		"cap the command-line set at this many highlights")
	cmd.Flags().BoolVar(&flags.disabled, "disabled", false,
		"add the command-line set disabled")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "html",
		"output format: html, text, json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to file instead of stdout")
	cmd.Flags().BoolVar(&flags.summary, "summary", false,
		"print a per-set summary to stderr")
	cmd.Flags().BoolVar(&flags.failWhenEmpty, "fail-when-empty", false,
		"exit non-zero when no highlights were produced")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	logger := logging.Default()

	format := config.OutputFormat(flags.format)
	if !format.IsValid() {
		return fmt.Errorf("unknown output format %q", flags.format)
	}

	configPath, _ := cmd.Flags().GetString("config")
	loaded, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return err
	}
	for _, w := range loaded.Warnings {
		logger.Warn(w)
	}
	if loaded.LoadedFrom != "" {
		logger.Debug("configuration loaded", logging.FieldConfig, loaded.LoadedFrom)
	}
	cfg := loaded.Config
	if set, ok := flagQuerySet(flags); ok {
		cfg.Sets = append(cfg.Sets, set)
	}

	filename, input, err := readInput(args)
	if err != nil {
		return err
	}

	result, err := runner.Run(input, runner.Options{
		Config:   cfg,
		Filename: filename,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("document highlighted",
		logging.FieldFormat, result.Format.String(),
		logging.FieldHighlights, result.Stats.Total)

	report := reporter.FromResult(filename, result)
	if err := writeOutput(flags, format, result, report); err != nil {
		return err
	}

	if flags.summary {
		colorMode, _ := cmd.Flags().GetString("color")
		styles := pretty.NewStyles(pretty.ColorEnabled(colorMode, os.Stderr))
		if err := styles.WriteSetsTable(os.Stderr, report); err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, styles.FormatSummaryOneLine(report))
	}

	if flags.failWhenEmpty && result.Stats.Total == 0 {
		return ErrNoHighlights
	}
	return nil
}

// flagQuerySet builds the query set declared by --query/--regexp flags.
func flagQuerySet(flags *highlightFlags) (config.QuerySet, bool) {
	if len(flags.queries) == 0 && len(flags.regexps) == 0 {
		return config.QuerySet{}, false
	}
	set := config.QuerySet{Name: flags.setName}
	for _, q := range flags.queries {
		set.Queries = append(set.Queries, config.Query{Text: q})
	}
	for _, e := range flags.regexps {
		set.Queries = append(set.Queries, config.Query{Regexp: e})
	}
	if flags.reserve >= 0 {
		set.Reserve = &flags.reserve
	}
	if flags.disabled {
		enabled := false
		set.Enabled = &enabled
	}
	return set, true
}

func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], data, nil
}

func writeOutput(flags *highlightFlags, format config.OutputFormat, result *runner.Result, report *reporter.Report) error {
	payload := result.HTML
	if format != config.FormatHTML {
		renderer, err := reporter.New(format)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := renderer.Render(&buf, report); err != nil {
			return err
		}
		payload = buf.Bytes()
	}

	if flags.output != "" {
		if err := fsutil.WriteAtomic(flags.output, payload, 0); err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(payload); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
