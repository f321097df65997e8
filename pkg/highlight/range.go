package highlight

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/dom"
)

// Position locates a point within a single text node: a marker naming the
// node and its projection offset, plus a 0-based rune offset inside the
// node. The absolute position is Marker.Offset + Offset. End positions are
// inclusive of the last rune. The marker need not be an entry of the
// projection's marker table: positions derived after earlier wraps split a
// node carry a synthetic marker for the split-off remainder.
type Position struct {
	Marker Marker
	Offset int
}

// Abs returns the absolute rune offset of the position on the projection.
func (p Position) Abs() int {
	return p.Marker.Offset + p.Offset
}

func (p Position) check() error {
	if p.Marker.Node == nil || !dom.IsText(p.Marker.Node) {
		return fmt.Errorf("position: marker is not a text node")
	}
	if p.Offset < 0 || p.Offset >= dom.RuneLen(p.Marker.Node) {
		return fmt.Errorf("position: offset %d out of range for node of length %d",
			p.Offset, dom.RuneLen(p.Marker.Node))
	}
	return nil
}

// XPathPoint locates a point relative to the container by XPath and a rune
// offset measured from the beginning of the logical text run.
type XPathPoint struct {
	XPath  string `yaml:"xpath" json:"xpath"`
	Offset int    `yaml:"offset" json:"offset"`
}

// XPathRange is a pair of XPath points with inclusive end semantics.
type XPathRange struct {
	Start XPathPoint `yaml:"start" json:"start"`
	End   XPathPoint `yaml:"end" json:"end"`
}

// Range is a pair of position descriptors over a TextContent. Start and
// end are both inclusive; a Range always spans at least one rune.
type Range struct {
	content *TextContent
	Start   Position
	End     Position
}

// NewRange constructs a Range over content. The start position must not
// come after the end position.
func NewRange(content *TextContent, start, end Position) (*Range, error) {
	if err := start.check(); err != nil {
		return nil, err
	}
	if err := end.check(); err != nil {
		return nil, err
	}
	if start.Abs() > end.Abs() {
		return nil, fmt.Errorf("range: start %d after end %d", start.Abs(), end.Abs())
	}
	return &Range{content: content, Start: start, End: end}, nil
}

// PositionAt converts an absolute rune offset into a position descriptor.
// When earlier wraps have split the marker's node, the walk continues over
// the following text nodes and a synthetic marker is produced for the node
// the offset actually falls in.
func (tc *TextContent) PositionAt(abs int) (Position, error) {
	i, ok := tc.MarkerAt(abs)
	if !ok {
		return Position{}, fmt.Errorf("position: offset %d outside projection", abs)
	}
	node := tc.markers[i].Node
	off := abs - tc.markers[i].Offset
	for node != nil {
		l := dom.RuneLen(node)
		if off < l {
			return Position{Marker: Marker{Node: node, Offset: abs - off}, Offset: off}, nil
		}
		off -= l
		node = dom.NextText(node, tc.root)
	}
	return Position{}, fmt.Errorf("position: offset %d beyond document text", abs)
}

// Content returns the projection this range is defined over.
func (r *Range) Content() *TextContent {
	return r.content
}

// Length returns the number of runes the range spans.
func (r *Range) Length() int {
	return r.End.Abs() - r.Start.Abs() + 1
}

// Text returns the slice of the flat projection covered by the range.
func (r *Range) Text() string {
	return dom.SliceRunes(r.content.Text(), r.Start.Abs(), r.End.Abs()+1)
}

// EnclosingNodes returns the text nodes spanned by the range, in document
// order from the start node to the end node inclusive.
func (r *Range) EnclosingNodes() []*html.Node {
	startNode := r.Start.Marker.Node
	endNode := r.End.Marker.Node
	nodes := []*html.Node{startNode}
	for n := startNode; n != endNode && n != nil; {
		n = dom.NextText(n, r.content.Root())
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// ComputeXPath produces the XPath form of the range. Offsets are measured
// from the beginning of each endpoint's logical text run, so a range over
// a node produced by splitting resolves identically after the document is
// normalized.
func (r *Range) ComputeXPath() (XPathRange, error) {
	start, err := r.computePoint(r.Start)
	if err != nil {
		return XPathRange{}, err
	}
	end, err := r.computePoint(r.End)
	if err != nil {
		return XPathRange{}, err
	}
	return XPathRange{Start: start, End: end}, nil
}

func (r *Range) computePoint(p Position) (XPathPoint, error) {
	xpath, err := dom.XPathOf(r.content.Root(), p.Marker.Node)
	if err != nil {
		return XPathPoint{}, err
	}
	_, preceding, err := dom.TextRunPosition(p.Marker.Node)
	if err != nil {
		return XPathPoint{}, err
	}
	return XPathPoint{XPath: xpath, Offset: preceding + p.Offset}, nil
}

// ResolveXPath is the inverse of ComputeXPath: it maps an XPath range onto
// positions over the current projection. Both endpoints must resolve to
// text nodes known to the projection.
func ResolveXPath(content *TextContent, xr XPathRange) (*Range, error) {
	start, err := resolvePoint(content, xr.Start)
	if err != nil {
		return nil, fmt.Errorf("resolve start: %w", err)
	}
	end, err := resolvePoint(content, xr.End)
	if err != nil {
		return nil, fmt.Errorf("resolve end: %w", err)
	}
	return NewRange(content, start, end)
}

func resolvePoint(content *TextContent, p XPathPoint) (Position, error) {
	first, err := dom.ElementAt(content.Root(), p.XPath)
	if err != nil {
		return Position{}, err
	}
	if !dom.IsText(first) {
		return Position{}, fmt.Errorf("xpath %q does not address a text node", p.XPath)
	}
	node, off, err := descendRun(first, p.Offset)
	if err != nil {
		return Position{}, fmt.Errorf("xpath %q: %w", p.XPath, err)
	}
	i := content.Find(node)
	if i < 0 {
		return Position{}, ErrUnknownNode
	}
	return Position{Marker: content.At(i), Offset: off}, nil
}

// descendRun walks the raw nodes of the logical run starting at first and
// converts a run-relative rune offset into a node plus intra-node offset.
func descendRun(first *html.Node, off int) (*html.Node, int, error) {
	if off < 0 {
		return nil, 0, fmt.Errorf("negative offset %d", off)
	}
	parent := dom.LogicalParent(first)
	if parent == nil {
		return nil, 0, fmt.Errorf("detached text node")
	}
	for _, run := range dom.TextRuns(parent) {
		if run[0] != first {
			continue
		}
		for _, n := range run {
			l := dom.RuneLen(n)
			if off < l {
				return n, off, nil
			}
			off -= l
		}
		return nil, 0, fmt.Errorf("offset beyond text run")
	}
	return nil, 0, fmt.Errorf("text node does not start a run")
}
