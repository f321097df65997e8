// Package runner orchestrates a highlighting run: detect the input
// format, parse, apply the configured query sets, and serialize the
// marked document.
package runner

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/config"
	"github.com/yaklabco/gohighlight/pkg/dom"
	"github.com/yaklabco/gohighlight/pkg/highlight"
	"github.com/yaklabco/gohighlight/pkg/langdetect"
	"github.com/yaklabco/gohighlight/pkg/mdrender"
)

// Options controls a run.
type Options struct {
	// Config supplies highlighter options and query sets. Defaults to
	// config.Default().
	Config *config.Config

	// Filename guides input format detection; may be empty for stdin.
	Filename string

	// Logger receives per-query and per-action failures.
	Logger *log.Logger

	// Observer, when set, receives the highlighter's notifications.
	Observer highlight.Observer
}

// Result is the outcome of a run.
type Result struct {
	// Format is the detected input format.
	Format langdetect.Format

	// HTML is the serialized document with highlights applied.
	HTML []byte

	// Stats are the highlighter's global statistics after apply.
	Stats highlight.Stats

	// Sets are the query-set snapshots after apply.
	Sets []highlight.SetInfo

	// TextLength is the rune length of the flat text projection.
	TextLength int
}

// Run highlights one document.
func Run(input []byte, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	format := langdetect.Detect(opts.Filename, input)
	if format == langdetect.FormatMarkdown {
		rendered, err := mdrender.Render(input)
		if err != nil {
			return nil, err
		}
		input = rendered
	}

	doc, err := dom.ParseDocumentBytes(input)
	if err != nil {
		return nil, err
	}
	container := Container(doc)

	hl, err := highlight.New(highlight.Options{
		Container:       container,
		MaxHighlight:    cfg.MaxHighlight,
		UseQueryAsClass: cfg.UseQueryAsClass,
		Normalise:       cfg.Normalise,
		Observer:        opts.Observer,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	for _, qs := range cfg.Sets {
		subjects := resolveSubjects(qs, logger)
		if len(subjects) == 0 {
			logger.Warn("query set has no usable queries", "set", qs.Name)
			continue
		}
		hl.Add(qs.Name, subjects, qs.IsEnabled(), qs.ReserveValue())
	}
	hl.Apply()

	out, err := dom.RenderString(doc)
	if err != nil {
		return nil, err
	}

	return &Result{
		Format:     format,
		HTML:       []byte(out),
		Stats:      hl.Stats(),
		Sets:       hl.Sets(),
		TextLength: hl.Content().RuneCount(),
	}, nil
}

// resolveSubjects converts a set's queries into finder subjects, dropping
// the ones that fail to resolve.
func resolveSubjects(qs config.QuerySet, logger *log.Logger) []any {
	subjects := make([]any, 0, len(qs.Queries))
	for i, q := range qs.Queries {
		s, err := q.Subject()
		if err != nil {
			logger.Error("skipping query", "set", qs.Name, "query", i, "error", err)
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects
}

// Container picks the highlight container for a parsed document: the body
// when present, the document node otherwise.
func Container(doc *html.Node) *html.Node {
	if body := dom.Body(doc); body != nil {
		return body
	}
	return doc
}
