// Package reporter formats highlighting run reports as text or JSON.
package reporter

import (
	"github.com/yaklabco/gohighlight/pkg/runner"
)

// Report is the format-independent view of a run.
type Report struct {
	Document   string      `json:"document,omitempty"`
	Format     string      `json:"format"`
	TextLength int         `json:"textLength"`
	Stats      StatsReport `json:"stats"`
	Sets       []SetReport `json:"sets"`
}

// StatsReport mirrors the highlighter's global statistics.
type StatsReport struct {
	Queries   int `json:"queries"`
	Total     int `json:"total"`
	Highlight int `json:"nextHighlight"`
}

// SetReport summarizes one query set.
type SetReport struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	FirstID int    `json:"firstId"`
	LastID  int    `json:"lastId"`
	Length  int    `json:"length"`
	Reserve int    `json:"reserve,omitempty"`
}

// FromResult builds a report from a run result.
func FromResult(document string, result *runner.Result) *Report {
	report := &Report{
		Document:   document,
		Format:     result.Format.String(),
		TextLength: result.TextLength,
		Stats: StatsReport{
			Queries:   result.Stats.Queries,
			Total:     result.Stats.Total,
			Highlight: result.Stats.Highlight,
		},
	}
	for _, s := range result.Sets {
		report.Sets = append(report.Sets, SetReport{
			Name:    s.Name,
			Enabled: s.Enabled,
			FirstID: s.ID,
			LastID:  s.ID + s.Length - 1,
			Length:  s.Length,
			Reserve: s.Reserve,
		})
	}
	return report
}
