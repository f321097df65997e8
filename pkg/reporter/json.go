package reporter

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonRenderer writes the report as indented JSON.
type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
