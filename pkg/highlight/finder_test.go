package highlight_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohighlight/pkg/highlight"
)

// collect drains a finder.
func collect(f highlight.Finder) []*highlight.Range {
	var hits []*highlight.Range
	for {
		r, ok := f.Next()
		if !ok {
			return hits
		}
		hits = append(hits, r)
	}
}

func TestTextFinderLiteral(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	tests := []struct {
		name    string
		subject string
		want    int
	}{
		{name: "word across nodes", subject: "viber", want: 3},
		{name: "uppercase same hits", subject: "VIBER", want: 3},
		{name: "the", subject: "the", want: 2},
		{name: "absent", subject: "zebra", want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f, err := highlight.NewFinder(content, testCase.subject)
			require.NoError(t, err)
			hits := collect(f)
			assert.Len(t, hits, testCase.want)

			lower := strings.ToLower(content.Text())
			assert.Equal(t, strings.Count(lower, strings.ToLower(testCase.subject)), len(hits))

			for _, r := range hits {
				assert.Equal(t, strings.ToLower(testCase.subject), strings.ToLower(r.Text()))
			}
		})
	}
}

func TestTextFinderNonOverlapping(t *testing.T) {
	t.Parallel()

	content := highlight.NewTextContent(parseBody(t, `<html><body><p>aaaa</p></body></html>`))

	f, err := highlight.NewFinder(content, "aa")
	require.NoError(t, err)
	hits := collect(f)
	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].Start.Abs())
	assert.Equal(t, 2, hits[1].Start.Abs())
}

func TestTextFinderOrdered(t *testing.T) {
	t.Parallel()

	content := articleContent(t)
	f, err := highlight.NewFinder(content, "o")
	require.NoError(t, err)

	last := -1
	for _, r := range collect(f) {
		assert.Greater(t, r.Start.Abs(), last)
		last = r.Start.Abs()
	}
	assert.Positive(t, last)
}

func TestTextFinderRegexp(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	f, err := highlight.NewFinder(content, regexp.MustCompile(`[Vv]iber\s+\w+`))
	require.NoError(t, err)
	hits := collect(f)
	require.Len(t, hits, 2)
	assert.Equal(t, "Viber has", hits[0].Text())
	assert.Equal(t, "Viber also", hits[1].Text())
}

func TestTextFinderZeroWidthRegexp(t *testing.T) {
	t.Parallel()

	content := highlight.NewTextContent(parseBody(t, `<html><body><p>ab</p></body></html>`))

	// A pattern that can match empty must not loop forever.
	f, err := highlight.NewFinder(content, regexp.MustCompile(`x*`))
	require.NoError(t, err)
	assert.Empty(t, collect(f))
}

func TestXPathFinderTwoStates(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	f, err := highlight.NewFinder(content, highlight.XPathRange{
		Start: highlight.XPathPoint{XPath: "/p[2]/a[1]/text()", Offset: 0},
		End:   highlight.XPathPoint{XPath: "/p[2]/a[1]/text()", Offset: 4},
	})
	require.NoError(t, err)

	r, ok := f.Next()
	require.True(t, ok)
	assert.Equal(t, "Viber", r.Text())

	_, ok = f.Next()
	assert.False(t, ok)
	_, ok = f.Next()
	assert.False(t, ok, "finder must stay exhausted")
}

func TestXPathFinderPointerSubject(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	f, err := highlight.NewFinder(content, &highlight.XPathRange{
		Start: highlight.XPathPoint{XPath: "/p[1]/text()", Offset: 0},
		End:   highlight.XPathPoint{XPath: "/p[1]/text()", Offset: 4},
	})
	require.NoError(t, err)
	hits := collect(f)
	require.Len(t, hits, 1)
	assert.Equal(t, "Viber", hits[0].Text())
}

func TestNewFinderRejectsUnknownSubjects(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	for _, subject := range []any{42, nil, []string{"x"}, (*regexp.Regexp)(nil), (*highlight.XPathRange)(nil)} {
		_, err := highlight.NewFinder(content, subject)
		assert.Error(t, err, "subject %T", subject)
	}
}

func TestNewFinderBadXPath(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	_, err := highlight.NewFinder(content, highlight.XPathRange{
		Start: highlight.XPathPoint{XPath: "/nope[1]/text()", Offset: 0},
		End:   highlight.XPathPoint{XPath: "/p[1]/text()", Offset: 0},
	})
	assert.Error(t, err)
}
