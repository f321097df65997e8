package runner_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohighlight/pkg/config"
	"github.com/yaklabco/gohighlight/pkg/highlight"
	"github.com/yaklabco/gohighlight/pkg/langdetect"
	"github.com/yaklabco/gohighlight/pkg/runner"
)

const articleDoc = `<html><body>` +
	`<p>Viber has now clarified that the hack only allowed access.</p>` +
	`<p>According to <a href="#">Viber</a>, nothing was exposed.</p>` +
	`</body></html>`

func testConfig(sets ...config.QuerySet) *config.Config {
	cfg := config.Default()
	cfg.MaxHighlight = 4
	cfg.Sets = sets
	return cfg
}

func TestRunHTML(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Config: testConfig(config.QuerySet{
			Name:    "brand",
			Queries: []config.Query{{Text: "viber"}},
		}),
		Filename: "article.html",
		Logger:   log.New(io.Discard),
	})
	require.NoError(t, err)

	assert.Equal(t, langdetect.FormatHTML, result.Format)
	assert.Equal(t, 1, result.Stats.Queries)
	assert.Equal(t, 2, result.Stats.Total)
	require.Len(t, result.Sets, 1)
	assert.Equal(t, 2, result.Sets[0].Length)

	html := string(result.HTML)
	assert.Contains(t, html, `data-hh-id="0"`)
	assert.Contains(t, html, `data-hh-id="1"`)
	assert.Contains(t, html, "highlight-id_0")
}

func TestRunMarkdown(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte("# Heading\n\nfind the needle here\n"), runner.Options{
		Config: testConfig(config.QuerySet{
			Name:    "search",
			Queries: []config.Query{{Text: "needle"}},
		}),
		Filename: "notes.md",
		Logger:   log.New(io.Discard),
	})
	require.NoError(t, err)

	assert.Equal(t, langdetect.FormatMarkdown, result.Format)
	assert.Equal(t, 1, result.Stats.Total)
	assert.Contains(t, string(result.HTML), "<h1>Heading</h1>")
	assert.Contains(t, string(result.HTML), `data-hh-id="0"`)
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.QuerySet{Name: ""})
	_, err := runner.Run([]byte(articleDoc), runner.Options{
		Config: cfg,
		Logger: log.New(io.Discard),
	})
	assert.Error(t, err)
}

func TestRunSkipsUnresolvableXPath(t *testing.T) {
	t.Parallel()

	// An xpath that misses the document fails at finder construction and
	// is logged; the literal query in the same set still applies.
	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Config: testConfig(config.QuerySet{
			Name: "mixed",
			Queries: []config.Query{
				{XPath: &highlight.XPathRange{
					Start: highlight.XPathPoint{XPath: "/blockquote[1]/text()", Offset: 0},
					End:   highlight.XPathPoint{XPath: "/blockquote[1]/text()", Offset: 3},
				}},
				{Text: "hack"},
			},
		}),
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Total)
}

func TestRunDefaultsWithNoSets(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.Queries)
	assert.NotContains(t, string(result.HTML), "data-hh-id")
	assert.Positive(t, result.TextLength)
}

func TestRunTextLength(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)

	flat := "Viber has now clarified that the hack only allowed access." +
		"According to Viber, nothing was exposed."
	assert.Equal(t, len(flat), result.TextLength)
}

func TestRunPreservesText(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Config: testConfig(config.QuerySet{
			Name:    "brand",
			Queries: []config.Query{{Text: "to viber, no"}},
		}),
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)

	// Re-running over the marked output finds the same flat text.
	stripped, err := runner.Run(result.HTML, runner.Options{Logger: log.New(io.Discard)})
	require.NoError(t, err)
	assert.Equal(t, result.TextLength, stripped.TextLength)
}

func TestRunXPathSet(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(articleDoc), runner.Options{
		Config: testConfig(config.QuerySet{
			Name: "pinned",
			Queries: []config.Query{{XPath: &highlight.XPathRange{
				Start: highlight.XPathPoint{XPath: "/p[2]/a[1]/text()", Offset: 0},
				End:   highlight.XPathPoint{XPath: "/p[2]/a[1]/text()", Offset: 4},
			}}},
		}),
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Total)
}

func TestReRunOnStdinDetectsHTML(t *testing.T) {
	t.Parallel()

	result, err := runner.Run([]byte(strings.TrimSpace(articleDoc)), runner.Options{
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	assert.Equal(t, langdetect.FormatHTML, result.Format)
}
