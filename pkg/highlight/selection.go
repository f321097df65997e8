package highlight

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/dom"
)

// Selection describes a host selection over the container: anchor and
// focus endpoints plus the selected string as the host reports it. The
// focus may precede the anchor when the user selected right to left.
type Selection struct {
	AnchorNode   *html.Node
	AnchorOffset int
	FocusNode    *html.Node
	FocusOffset  int
	Text         string
}

// SetSelection stores the host's current selection.
func (h *Highlighter) SetSelection(sel *Selection) {
	h.selection = sel
}

// ClearSelection forgets the stored selection.
func (h *Highlighter) ClearSelection() {
	h.selection = nil
}

// SelectedRange converts the stored selection into a Range. It returns
// nil when there is no selection, when either endpoint is not a text
// node, or when the selection has zero length; an endpoint unknown to the
// projection is an error.
func (h *Highlighter) SelectedRange() (*Range, error) {
	sel := h.selection
	if sel == nil {
		return nil, nil
	}
	if !dom.IsText(sel.AnchorNode) || !dom.IsText(sel.FocusNode) {
		return nil, nil
	}

	var length int
	if sel.AnchorNode == sel.FocusNode {
		length = sel.FocusOffset - sel.AnchorOffset
		if length < 0 {
			length = -length
		}
	} else {
		length = len([]rune(sel.Text))
	}
	if length == 0 {
		return nil, nil
	}

	ai := h.content.Find(sel.AnchorNode)
	fi := h.content.Find(sel.FocusNode)
	if ai < 0 || fi < 0 {
		return nil, fmt.Errorf("selection: %w", ErrUnknownNode)
	}

	anchor := Position{Marker: h.content.At(ai), Offset: sel.AnchorOffset}
	focus := Position{Marker: h.content.At(fi), Offset: sel.FocusOffset}

	// Normalize orientation: a right-to-left selection reports its focus
	// before its anchor.
	start := anchor
	if focus.Abs() < anchor.Abs() {
		start = focus
	}
	startAbs := start.Abs()
	startPos, err := h.content.PositionAt(startAbs)
	if err != nil {
		return nil, err
	}
	endPos, err := h.content.PositionAt(startAbs + length - 1)
	if err != nil {
		return nil, err
	}
	return NewRange(h.content, startPos, endPos)
}
