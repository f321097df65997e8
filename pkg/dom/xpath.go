package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// The XPath dialect addresses nodes relative to a container element with
// paths of the form /tag[n]/…/text()[k]. Element indices are 1-based among
// siblings sharing the tag; highlight wrapper elements are invisible to
// indexing. The terminal text()[k] counts logical text runs: adjacent text
// nodes, including text inside wrapper elements, merge into a single run,
// matching what the tree looks like after all wrappers are removed and the
// parent is normalized.

// XPathOf computes the path of node relative to container. The node must be
// a text node or an element inside the container subtree.
func XPathOf(container, node *html.Node) (string, error) {
	if node == nil || !Contains(container, node) {
		return "", fmt.Errorf("xpath: node not under container")
	}
	var segments []string
	n := node
	if IsText(n) {
		parent := LogicalParent(n)
		k, _, err := textRunPosition(parent, n)
		if err != nil {
			return "", err
		}
		if k == 0 {
			segments = append(segments, "text()")
		} else {
			segments = append(segments, fmt.Sprintf("text()[%d]", k+1))
		}
		n = parent
	}
	for n != container {
		parent := n.Parent
		if parent == nil {
			return "", fmt.Errorf("xpath: node not under container")
		}
		idx := 1
		for sib := parent.FirstChild; sib != nil && sib != n; sib = sib.NextSibling {
			if IsElement(sib) && !IsWrapper(sib) && sib.Data == n.Data {
				idx++
			}
		}
		segments = append(segments, fmt.Sprintf("%s[%d]", strings.ToLower(n.Data), idx))
		n = parent
	}
	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segments[i])
	}
	return b.String(), nil
}

// ElementAt resolves a path produced by XPathOf (or supplied by a caller)
// back to a node. A terminal text() segment yields the first raw text node
// of the addressed logical run; callers needing a specific raw node within
// a split run adjust by the preceding siblings' lengths.
func ElementAt(container *html.Node, xpath string) (*html.Node, error) {
	segments, err := parseXPath(xpath)
	if err != nil {
		return nil, err
	}
	cur := container
	for _, seg := range segments {
		if seg.text {
			runs := TextRuns(cur)
			if seg.index-1 >= len(runs) {
				return nil, fmt.Errorf("xpath: %q: text run %d not found", xpath, seg.index)
			}
			return runs[seg.index-1][0], nil
		}
		var found *html.Node
		idx := 0
		for sib := cur.FirstChild; sib != nil; sib = sib.NextSibling {
			if IsElement(sib) && !IsWrapper(sib) && sib.Data == seg.tag {
				idx++
				if idx == seg.index {
					found = sib
					break
				}
			}
		}
		if found == nil {
			return nil, fmt.Errorf("xpath: %q: no %s[%d] under %s", xpath, seg.tag, seg.index, cur.Data)
		}
		cur = found
	}
	return cur, nil
}

// LogicalParent returns the nearest non-wrapper ancestor element of n.
func LogicalParent(n *html.Node) *html.Node {
	p := n.Parent
	for p != nil && IsWrapper(p) {
		p = p.Parent
	}
	return p
}

// TextRuns returns the logical text runs under parent: each run is the
// ordered slice of raw text nodes that would merge into one text node after
// unwrapping and normalization. Wrapper elements are transparent; any other
// element terminates a run.
func TextRuns(parent *html.Node) [][]*html.Node {
	var runs [][]*html.Node
	var current []*html.Node
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch {
			case IsText(child):
				current = append(current, child)
			case IsWrapper(child):
				walk(child)
			default:
				flush()
			}
		}
	}
	walk(parent)
	flush()
	return runs
}

// TextRunPosition locates a raw text node within its logical run: the
// 0-based run ordinal under the logical parent and the number of runes
// contributed by earlier nodes of the same run.
func TextRunPosition(node *html.Node) (run, preceding int, err error) {
	parent := LogicalParent(node)
	if parent == nil {
		return 0, 0, fmt.Errorf("xpath: detached text node")
	}
	return textRunPosition(parent, node)
}

func textRunPosition(parent, node *html.Node) (run, preceding int, err error) {
	for k, nodes := range TextRuns(parent) {
		preceding = 0
		for _, t := range nodes {
			if t == node {
				return k, preceding, nil
			}
			preceding += RuneLen(t)
		}
	}
	return 0, 0, fmt.Errorf("xpath: text node not found under its parent")
}

type xpathSegment struct {
	tag   string
	index int
	text  bool
}

func parseXPath(xpath string) ([]xpathSegment, error) {
	trimmed := strings.Trim(xpath, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("xpath: empty path %q", xpath)
	}
	parts := strings.Split(trimmed, "/")
	segments := make([]xpathSegment, 0, len(parts))
	for i, part := range parts {
		seg := xpathSegment{index: 1}
		name := part
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("xpath: malformed segment %q", part)
			}
			idx, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || idx < 1 {
				return nil, fmt.Errorf("xpath: malformed index in segment %q", part)
			}
			seg.index = idx
			name = part[:open]
		}
		if name == "text()" {
			seg.text = true
			if i != len(parts)-1 {
				return nil, fmt.Errorf("xpath: text() segment must be terminal in %q", xpath)
			}
		} else {
			seg.tag = strings.ToLower(name)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
