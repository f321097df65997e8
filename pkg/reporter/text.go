package reporter

import (
	"fmt"
	"io"
)

// textRenderer writes a plain, unstyled report. Styled terminal output
// lives in internal/ui/pretty.
type textRenderer struct{}

func (r *textRenderer) Render(w io.Writer, report *Report) error {
	if report.Document != "" {
		if _, err := fmt.Fprintf(w, "%s (%s, %d runes)\n",
			report.Document, report.Format, report.TextLength); err != nil {
			return err
		}
	}
	for _, s := range report.Sets {
		state := "enabled"
		if !s.Enabled {
			state = "disabled"
		}
		suffix := ""
		if s.Reserve > 0 {
			suffix = fmt.Sprintf(", reserve %d", s.Reserve)
		}
		if _, err := fmt.Fprintf(w, "  %-20s %4d highlights, ids %d-%d (%s%s)\n",
			s.Name, s.Length, s.FirstID, s.LastID, state, suffix); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d query sets, %d highlights enabled\n",
		report.Stats.Queries, report.Stats.Total)
	return err
}
