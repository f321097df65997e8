package config

import (
	"fmt"
	"regexp"
)

// Validate checks the configuration for structural errors: duplicate or
// empty set names, queries without a subject or with several, regular
// expressions that do not compile, and negative reservations.
func (c *Config) Validate() error {
	if c.MaxHighlight < 1 {
		return fmt.Errorf("max_highlight must be at least 1, got %d", c.MaxHighlight)
	}
	seen := make(map[string]bool, len(c.Sets))
	for i, qs := range c.Sets {
		if qs.Name == "" {
			return fmt.Errorf("set %d: empty name", i)
		}
		if seen[qs.Name] {
			return fmt.Errorf("set %q: duplicate name", qs.Name)
		}
		seen[qs.Name] = true
		if qs.Reserve != nil && *qs.Reserve < 0 {
			return fmt.Errorf("set %q: negative reserve %d", qs.Name, *qs.Reserve)
		}
		if len(qs.Queries) == 0 {
			return fmt.Errorf("set %q: no queries", qs.Name)
		}
		for j, q := range qs.Queries {
			if err := q.validate(); err != nil {
				return fmt.Errorf("set %q query %d: %w", qs.Name, j, err)
			}
		}
	}
	return nil
}

func (q Query) validate() error {
	kinds := 0
	if q.Text != "" {
		kinds++
	}
	if q.Regexp != "" {
		kinds++
		if _, err := regexp.Compile(q.Regexp); err != nil {
			return fmt.Errorf("regexp does not compile: %w", err)
		}
	}
	if q.XPath != nil {
		kinds++
		if q.XPath.Start.XPath == "" || q.XPath.End.XPath == "" {
			return fmt.Errorf("xpath range needs both start and end paths")
		}
	}
	switch kinds {
	case 0:
		return fmt.Errorf("one of text, regexp or xpath is required")
	case 1:
		return nil
	default:
		return fmt.Errorf("text, regexp and xpath are mutually exclusive")
	}
}
