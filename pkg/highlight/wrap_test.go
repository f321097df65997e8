package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/dom"
	"github.com/yaklabco/gohighlight/pkg/highlight"
)

// wrappersOf collects the wrapper elements carrying the given highlight id.
func wrappersOf(root *html.Node, id string) []*html.Node {
	var els []*html.Node
	for n := dom.Next(root, root); n != nil; n = dom.Next(n, root) {
		if dom.IsWrapper(n) {
			if v, _ := dom.Attr(n, dom.IDAttr); v == id {
				els = append(els, n)
			}
		}
	}
	return els
}

func TestHighlightSingleNode(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<html><body><p>Tom &amp; Jerry &amp; the world cried foul</p></body></html>`)
	content := highlight.NewTextContent(body)
	require.Equal(t, "Tom & Jerry & the world cried foul", content.Text())

	r := rangeOver(t, content, "& the world cried foul")
	require.NoError(t, highlight.NewRangeHighlighter(0, 2, true, "").Do(r))

	// One wrapper, the node split once on the left only: the range runs to
	// the end of the node.
	els := wrappersOf(body, "0")
	require.Len(t, els, 1)
	assert.Equal(t, "& the world cried foul", dom.TextOf(els[0]))
	assert.True(t, dom.HasClass(els[0], highlight.CSSHighlight))
	assert.True(t, dom.HasClass(els[0], highlight.GroupClass(2)))
	assert.False(t, dom.HasClass(els[0], highlight.CSSDisabled))

	// The flat text is untouched by the mutation.
	assert.Equal(t, "Tom & Jerry & the world cried foul", dom.TextOf(body))

	// Unhighlighting and refreshing restores the original projection.
	require.NoError(t, highlight.NewRangeUnhighlighter(body).Undo(0))
	content.Refresh()
	assert.Equal(t, "Tom & Jerry & the world cried foul", content.Text())
	assert.Empty(t, wrappersOf(body, "0"))
	require.NoError(t, content.Assert())
}

func TestHighlightSingleRune(t *testing.T) {
	t.Parallel()

	content := articleContent(t)
	body := content.Root()

	r := rangeOver(t, content, "x")
	require.Equal(t, 1, r.Length())
	require.NoError(t, highlight.NewRangeHighlighter(7, 0, true, "").Do(r))

	els := wrappersOf(body, "7")
	require.Len(t, els, 1)
	assert.Equal(t, "x", dom.TextOf(els[0]))
	assert.Equal(t, articleFlatText, dom.TextOf(body))
}

func TestHighlightWholeNodeNoSplit(t *testing.T) {
	t.Parallel()

	content := articleContent(t)
	body := content.Root()

	// The anchor text is exactly one node and is fully covered, so it needs
	// no split; only the outer nodes at either end are split.
	r := rangeOver(t, content, "to Viber, no")
	require.NoError(t, highlight.NewRangeHighlighter(3, 1, true, "q").Do(r))

	els := wrappersOf(body, "3")
	require.Len(t, els, 3)
	assert.Equal(t, "to ", dom.TextOf(els[0]))
	assert.Equal(t, "Viber", dom.TextOf(els[1]))
	assert.Equal(t, ", no", dom.TextOf(els[2]))
	for _, el := range els {
		assert.True(t, dom.HasClass(el, highlight.QueryClass("q")))
	}

	// The fully covered anchor node was not split.
	anchor := els[1].Parent
	assert.Equal(t, "a", anchor.Data)
	assert.Nil(t, els[1].NextSibling)
	assert.Nil(t, els[1].PrevSibling)

	assert.Equal(t, articleFlatText, dom.TextOf(body))
}

func TestHighlightDisabledClass(t *testing.T) {
	t.Parallel()

	content := articleContent(t)

	r := rangeOver(t, content, "hack")
	require.NoError(t, highlight.NewRangeHighlighter(1, 0, false, "").Do(r))

	els := wrappersOf(content.Root(), "1")
	require.Len(t, els, 1)
	assert.True(t, dom.HasClass(els[0], highlight.CSSDisabled))
}

func TestHighlightAcrossParagraphs(t *testing.T) {
	t.Parallel()

	content := articleContent(t)
	body := content.Root()

	r := rangeOver(t, content, "exposed.Viber also")
	require.NoError(t, highlight.NewRangeHighlighter(5, 0, true, "").Do(r))

	els := wrappersOf(body, "5")
	require.Len(t, els, 2)
	assert.Equal(t, "exposed.", dom.TextOf(els[0]))
	assert.Equal(t, "Viber also", dom.TextOf(els[1]))
	assert.Equal(t, articleFlatText, dom.TextOf(body))

	require.NoError(t, highlight.NewRangeUnhighlighter(body).Undo(5))
	content.Refresh()
	assert.Equal(t, articleFlatText, content.Text())
}

func TestUndoUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	content := articleContent(t)
	assert.NoError(t, highlight.NewRangeUnhighlighter(content.Root()).Undo(99))
	assert.Equal(t, articleFlatText, content.Text())
}

func TestSequentialHighlightsAfterSplit(t *testing.T) {
	t.Parallel()

	// Wrap two hits inside the same text node without refreshing the
	// projection between them: the second position must clamp across the
	// boundaries the first wrap introduced.
	content := highlight.NewTextContent(parseBody(t,
		`<html><body><p>alpha beta gamma beta delta</p></body></html>`))
	body := content.Root()

	f, err := highlight.NewFinder(content, "beta")
	require.NoError(t, err)

	id := 0
	for {
		r, ok := f.Next()
		if !ok {
			break
		}
		require.NoError(t, highlight.NewRangeHighlighter(id, 0, true, "").Do(r))
		id++
	}
	require.Equal(t, 2, id)

	assert.Equal(t, "beta", dom.TextOf(wrappersOf(body, "0")[0]))
	assert.Equal(t, "beta", dom.TextOf(wrappersOf(body, "1")[0]))
	assert.Equal(t, "alpha beta gamma beta delta", dom.TextOf(body))
}
