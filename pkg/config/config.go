// Package config defines the configuration types for gohighlight: the
// highlighter options and the declarative query sets applied to a
// document. These are pure data structures; loading and discovery live in
// internal/configloader.
package config

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/gohighlight/pkg/highlight"
)

// OutputFormat specifies the output format for run reports.
type OutputFormat string

const (
	FormatHTML OutputFormat = "html"
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration.
type Config struct {
	// MaxHighlight bounds the rotating group-class ids.
	MaxHighlight int `yaml:"max_highlight"`

	// UseQueryAsClass adds a per-query CSS class to every wrapper.
	UseQueryAsClass bool `yaml:"use_query_as_class"`

	// Normalise merges split text nodes after a set is removed.
	Normalise bool `yaml:"normalise"`

	// Sets are the query sets applied on a run, in order.
	Sets []QuerySet `yaml:"sets"`
}

// QuerySet declares one named bundle of queries.
type QuerySet struct {
	Name string `yaml:"name"`

	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Reserve caps the set's highlight count when set.
	Reserve *int `yaml:"reserve,omitempty"`

	Queries []Query `yaml:"queries"`
}

// IsEnabled resolves the optional enabled flag.
func (qs QuerySet) IsEnabled() bool {
	return qs.Enabled == nil || *qs.Enabled
}

// ReserveValue resolves the optional reserve; -1 means no reservation.
func (qs QuerySet) ReserveValue() int {
	if qs.Reserve == nil {
		return -1
	}
	return *qs.Reserve
}

// Query is one subject: exactly one of Text, Regexp, or XPath is set.
type Query struct {
	// Text is a literal, matched case-insensitively.
	Text string `yaml:"text,omitempty"`

	// Regexp is a regular expression over the flat document text.
	Regexp string `yaml:"regexp,omitempty"`

	// XPath addresses a single range by XPath endpoints.
	XPath *highlight.XPathRange `yaml:"xpath,omitempty"`
}

// Subject converts the query into the subject value the finder dispatch
// expects.
func (q Query) Subject() (any, error) {
	switch {
	case q.Text != "":
		return q.Text, nil
	case q.Regexp != "":
		re, err := regexp.Compile(q.Regexp)
		if err != nil {
			return nil, fmt.Errorf("compile regexp %q: %w", q.Regexp, err)
		}
		return re, nil
	case q.XPath != nil:
		return *q.XPath, nil
	default:
		return nil, fmt.Errorf("query has no subject")
	}
}

// Subjects resolves every query of the set.
func (qs QuerySet) Subjects() ([]any, error) {
	subjects := make([]any, 0, len(qs.Queries))
	for i, q := range qs.Queries {
		s, err := q.Subject()
		if err != nil {
			return nil, fmt.Errorf("set %q query %d: %w", qs.Name, i, err)
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// Default returns the configuration used when no file or flags override
// it.
func Default() *Config {
	return &Config{MaxHighlight: 1}
}
