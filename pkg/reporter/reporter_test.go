package reporter_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohighlight/pkg/config"
	"github.com/yaklabco/gohighlight/pkg/highlight"
	"github.com/yaklabco/gohighlight/pkg/langdetect"
	"github.com/yaklabco/gohighlight/pkg/reporter"
	"github.com/yaklabco/gohighlight/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Format:     langdetect.FormatHTML,
		Stats:      highlight.Stats{Queries: 2, Total: 5, Highlight: 1},
		TextLength: 120,
		Sets: []highlight.SetInfo{
			{Name: "brand", Enabled: true, ID: 0, Length: 3, Reserve: -1},
			{Name: "pinned", Enabled: false, ID: 3, Length: 2, Reserve: 4},
		},
	}
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	report := reporter.FromResult("article.html", sampleResult())

	assert.Equal(t, "article.html", report.Document)
	assert.Equal(t, "html", report.Format)
	assert.Equal(t, 120, report.TextLength)
	assert.Equal(t, 2, report.Stats.Queries)
	assert.Equal(t, 5, report.Stats.Total)
	require.Len(t, report.Sets, 2)
	assert.Equal(t, 0, report.Sets[0].FirstID)
	assert.Equal(t, 2, report.Sets[0].LastID)
	assert.Equal(t, 3, report.Sets[1].FirstID)
	assert.Equal(t, 4, report.Sets[1].LastID)
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	renderer, err := reporter.New(config.FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, reporter.FromResult("doc.html", sampleResult())))

	var decoded reporter.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "doc.html", decoded.Document)
	assert.Equal(t, 5, decoded.Stats.Total)
	require.Len(t, decoded.Sets, 2)
	assert.Equal(t, "brand", decoded.Sets[0].Name)
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	renderer, err := reporter.New(config.FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, reporter.FromResult("doc.html", sampleResult())))

	out := buf.String()
	assert.Contains(t, out, "doc.html")
	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "reserve 4")
	assert.Contains(t, out, "2 query sets, 5 highlights enabled")
}

func TestNewRejectsHTMLFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(config.FormatHTML)
	assert.Error(t, err)
}
