package highlight

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/dom"
)

// Marker pins one text node on the flat projection. Offset is the number
// of runes contributed by all text nodes preceding it in document order.
type Marker struct {
	Node   *html.Node
	Offset int
}

// TextContent owns the flat text projection of a container subtree. The
// projection is the concatenation of the raw data of every non-empty text
// node in document order, with whitespace preserved verbatim. Wrapping a
// range splits text nodes without updating the projection; the flat text
// and marker offsets stay valid because splits preserve the text, and
// PositionAt walks past stale node boundaries. Any other DOM mutation
// requires a Refresh.
type TextContent struct {
	root    *html.Node
	text    string
	runes   int
	markers []Marker
	index   map[*html.Node]int
}

// NewTextContent builds the projection of the subtree rooted at container.
func NewTextContent(container *html.Node) *TextContent {
	tc := &TextContent{root: container}
	tc.Refresh()
	return tc
}

// Refresh rebuilds the projection from the current DOM state.
func (tc *TextContent) Refresh() {
	var b strings.Builder
	tc.markers = tc.markers[:0]
	tc.index = make(map[*html.Node]int)
	offset := 0
	dom.WalkText(tc.root, func(n *html.Node) bool {
		if n.Data == "" {
			return true
		}
		tc.index[n] = len(tc.markers)
		tc.markers = append(tc.markers, Marker{Node: n, Offset: offset})
		offset += dom.RuneLen(n)
		b.WriteString(n.Data)
		return true
	})
	tc.text = b.String()
	tc.runes = offset
}

// Root returns the container element the projection was built from.
func (tc *TextContent) Root() *html.Node {
	return tc.root
}

// Text returns the full flat string.
func (tc *TextContent) Text() string {
	return tc.text
}

// RuneCount returns the length of the flat string in runes.
func (tc *TextContent) RuneCount() int {
	return tc.runes
}

// Len returns the number of markers.
func (tc *TextContent) Len() int {
	return len(tc.markers)
}

// At returns the marker at the given index.
func (tc *TextContent) At(i int) Marker {
	return tc.markers[i]
}

// Find returns the marker index whose node is identical to n, or -1.
func (tc *TextContent) Find(n *html.Node) int {
	if i, ok := tc.index[n]; ok {
		return i
	}
	return -1
}

// MarkerAt returns the index of the marker whose recorded span contains
// the absolute rune offset, found by binary search.
func (tc *TextContent) MarkerAt(abs int) (int, bool) {
	if abs < 0 || abs >= tc.runes || len(tc.markers) == 0 {
		return 0, false
	}
	// First marker starting beyond abs, minus one.
	i := sort.Search(len(tc.markers), func(j int) bool {
		return tc.markers[j].Offset > abs
	})
	return i - 1, true
}

// Assert checks the projection invariants against the current DOM:
// offsets strictly increase by each node's rune length, and the flat text
// length equals the final offset plus the final node's length. It fails on
// a projection left stale by outside mutation.
func (tc *TextContent) Assert() error {
	offset := 0
	for i, m := range tc.markers {
		if m.Offset != offset {
			return fmt.Errorf("marker %d: offset %d, want %d", i, m.Offset, offset)
		}
		if m.Node == nil || m.Node.Data == "" {
			return fmt.Errorf("marker %d: empty text node", i)
		}
		offset += dom.RuneLen(m.Node)
	}
	if total := utf8.RuneCountInString(tc.text); total != offset {
		return fmt.Errorf("projection length %d, markers total %d", total, offset)
	}
	return nil
}
