package reporter

import (
	"fmt"
	"io"

	"github.com/yaklabco/gohighlight/pkg/config"
)

// Renderer writes a report in one output format.
type Renderer interface {
	Render(w io.Writer, report *Report) error
}

// New returns the renderer for the requested format. The html format has
// no report renderer; the caller writes the document itself.
func New(format config.OutputFormat) (Renderer, error) {
	switch format {
	case config.FormatText:
		return &textRenderer{}, nil
	case config.FormatJSON:
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("no report renderer for format %q", format)
	}
}
