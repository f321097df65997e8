package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/gohighlight/pkg/reporter"
)

const (
	wordSet  = "query set"
	wordSets = "query sets"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 query sets, 53 highlights (2 sets disabled)".
func (s *Styles) FormatSummaryOneLine(report *reporter.Report) string {
	if report.Stats.Queries == 0 {
		return s.Dim.Render("no query sets applied") + "\n"
	}

	setWord := wordSets
	if report.Stats.Queries == 1 {
		setWord = wordSet
	}

	disabled := 0
	for _, set := range report.Sets {
		if !set.Enabled {
			disabled++
		}
	}

	line := fmt.Sprintf("%d %s, %s",
		report.Stats.Queries, setWord,
		s.Success.Render(fmt.Sprintf("%d highlights", report.Stats.Total)))
	if disabled > 0 {
		line += s.Dim.Render(fmt.Sprintf(" (%d sets disabled)", disabled))
	}
	return line + "\n"
}

// WriteSetsTable writes a per-set table: name, id range, highlight count,
// state.
func (s *Styles) WriteSetsTable(w io.Writer, report *reporter.Report) error {
	if len(report.Sets) == 0 {
		return nil
	}

	nameWidth := len("SET")
	for _, set := range report.Sets {
		if len(set.Name) > nameWidth {
			nameWidth = len(set.Name)
		}
	}
	if limit := Width(w) / 3; nameWidth > limit && limit > 0 {
		nameWidth = limit
	}

	header := fmt.Sprintf("%-*s  %10s  %6s  %s", nameWidth, "SET", "IDS", "COUNT", "STATE")
	if _, err := fmt.Fprintln(w, s.TableHeader.Render(header)); err != nil {
		return err
	}
	for _, set := range report.Sets {
		name := set.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}
		ids := "-"
		if set.Length > 0 {
			ids = fmt.Sprintf("%d-%d", set.FirstID, set.LastID)
		}
		state := s.Success.Render("enabled")
		if !set.Enabled {
			state = s.TableDisabled.Render("disabled")
		}
		if set.Reserve > 0 {
			state += s.TableReserve.Render(fmt.Sprintf(" (reserve %d)", set.Reserve))
		}
		row := fmt.Sprintf("%-*s  %10s  %6d  %s", nameWidth, name, ids, set.Length, state)
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, s.Dim.Render(strings.Repeat("─", Width(w)/2)))
	return err
}
