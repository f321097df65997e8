package highlight

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/gohighlight/pkg/dom"
)

// RangeHighlighter wraps the text spanned by a range in marker elements.
// One wrapper element is created per text node crossed; all wrappers of a
// range share the same highlight id.
type RangeHighlighter struct {
	id      int
	classes []string
}

// NewRangeHighlighter prepares a highlighter for one highlight id. The
// wrapper class list carries the shared highlight class, the rotating
// group class, optionally a per-query class, and the disabled class when
// the owning query set is disabled.
func NewRangeHighlighter(id, idHighlight int, enabled bool, queryName string) *RangeHighlighter {
	classes := []string{CSSHighlight, GroupClass(idHighlight)}
	if queryName != "" {
		classes = append(classes, QueryClass(queryName))
	}
	if !enabled {
		classes = append(classes, CSSDisabled)
	}
	return &RangeHighlighter{id: id, classes: classes}
}

// Do realizes the highlight in the DOM. The start node is split when the
// range begins mid-node, the end node is split after the last included
// rune, and every text node in between is wrapped. The owning TextContent
// is not updated; callers refresh it when they need the projection to
// reflect the new node boundaries.
func (h *RangeHighlighter) Do(r *Range) error {
	startNode := r.Start.Marker.Node
	endNode := r.End.Marker.Node
	endOff := r.End.Offset

	if r.Start.Offset > 0 {
		rest, err := dom.SplitText(startNode, r.Start.Offset)
		if err != nil {
			return fmt.Errorf("split start: %w", err)
		}
		if endNode == startNode {
			endNode = rest
			endOff -= r.Start.Offset
		}
		startNode = rest
	}
	if endOff+1 < dom.RuneLen(endNode) {
		if _, err := dom.SplitText(endNode, endOff+1); err != nil {
			return fmt.Errorf("split end: %w", err)
		}
	}

	root := r.Content().Root()
	for n := startNode; n != nil; {
		if dom.IsText(n) && n.Data != "" {
			if err := h.wrap(n); err != nil {
				return err
			}
		}
		if n == endNode {
			break
		}
		n = dom.Next(n, root)
	}
	return nil
}

func (h *RangeHighlighter) wrap(n *html.Node) error {
	parent := n.Parent
	if parent == nil {
		return fmt.Errorf("wrap: detached text node")
	}
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
	}
	for _, c := range h.classes {
		dom.AddClass(span, c)
	}
	dom.SetAttr(span, dom.MarkAttr, "")
	dom.SetAttr(span, dom.IDAttr, strconv.Itoa(h.id))
	parent.InsertBefore(span, n)
	parent.RemoveChild(n)
	span.AppendChild(n)
	return nil
}

// RangeUnhighlighter removes the wrapper elements of highlights under a
// container.
type RangeUnhighlighter struct {
	root *html.Node
}

// NewRangeUnhighlighter prepares an unhighlighter over the container.
func NewRangeUnhighlighter(root *html.Node) *RangeUnhighlighter {
	return &RangeUnhighlighter{root: root}
}

// Undo removes every wrapper carrying the given highlight id, replacing
// each with a single text node of its concatenated text and re-merging
// split siblings. Calling it with an id that does not exist is a no-op.
func (u *RangeUnhighlighter) Undo(id int) error {
	want := strconv.Itoa(id)
	var wrappers []*html.Node
	for n := dom.Next(u.root, u.root); n != nil; n = dom.Next(n, u.root) {
		if dom.IsWrapper(n) {
			if v, _ := dom.Attr(n, dom.IDAttr); v == want {
				wrappers = append(wrappers, n)
			}
		}
	}
	var errs []error
	for _, el := range wrappers {
		if err := dom.Unwrap(el); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
