package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohighlight/internal/ui/pretty"
	"github.com/yaklabco/gohighlight/pkg/reporter"
)

func sampleReport() *reporter.Report {
	return &reporter.Report{
		Document:   "doc.html",
		Format:     "html",
		TextLength: 100,
		Stats:      reporter.StatsReport{Queries: 2, Total: 5, Highlight: 1},
		Sets: []reporter.SetReport{
			{Name: "brand", Enabled: true, FirstID: 0, LastID: 2, Length: 3},
			{Name: "pinned", Enabled: false, FirstID: 3, LastID: 4, Length: 2, Reserve: 4},
		},
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	line := styles.FormatSummaryOneLine(sampleReport())
	assert.Contains(t, line, "2 query sets")
	assert.Contains(t, line, "5 highlights")
	assert.Contains(t, line, "1 sets disabled")
}

func TestFormatSummaryOneLineEmpty(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	line := styles.FormatSummaryOneLine(&reporter.Report{})
	assert.Contains(t, line, "no query sets")
}

func TestFormatSummarySingular(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	report := sampleReport()
	report.Stats.Queries = 1
	line := styles.FormatSummaryOneLine(report)
	assert.Contains(t, line, "1 query set,")
}

func TestWriteSetsTable(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	var buf bytes.Buffer
	require.NoError(t, styles.WriteSetsTable(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "SET")
	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "0-2")
	assert.Contains(t, out, "pinned")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "reserve 4")
}

func TestWriteSetsTableEmpty(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	var buf bytes.Buffer
	require.NoError(t, styles.WriteSetsTable(&buf, &reporter.Report{}))
	assert.Empty(t, buf.String())
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, pretty.ColorEnabled("always", &buf))
	assert.False(t, pretty.ColorEnabled("never", &buf))
	assert.False(t, pretty.ColorEnabled("auto", &buf))
}
