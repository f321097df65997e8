package dom

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// RuneLen returns the length of a text node's data in runes.
func RuneLen(n *html.Node) int {
	return utf8.RuneCountInString(n.Data)
}

// ByteIndex converts a rune offset within s to a byte index. A rune offset
// equal to the rune count maps to len(s).
func ByteIndex(s string, runeOff int) (int, bool) {
	if runeOff < 0 {
		return 0, false
	}
	count := 0
	for i := range s {
		if count == runeOff {
			return i, true
		}
		count++
	}
	if count == runeOff {
		return len(s), true
	}
	return 0, false
}

// RuneIndex converts a byte index within s to a rune offset. The byte index
// must fall on a rune boundary.
func RuneIndex(s string, byteOff int) (int, bool) {
	if byteOff < 0 || byteOff > len(s) {
		return 0, false
	}
	return utf8.RuneCountInString(s[:byteOff]), true
}

// SliceRunes returns s[start:end) measured in runes.
func SliceRunes(s string, start, end int) string {
	sb, ok := ByteIndex(s, start)
	if !ok {
		return ""
	}
	eb, ok := ByteIndex(s, end)
	if !ok {
		eb = len(s)
	}
	if sb > eb {
		return ""
	}
	return s[sb:eb]
}

// SplitText splits a text node at the given rune offset, leaving the first
// part in n and inserting a new sibling text node holding the remainder
// immediately after it. The remainder node is returned. Offsets of 0 or the
// full node length are rejected: both sides of a split must be non-empty.
func SplitText(n *html.Node, runeOff int) (*html.Node, error) {
	if !IsText(n) {
		return nil, fmt.Errorf("split: not a text node")
	}
	if n.Parent == nil {
		return nil, fmt.Errorf("split: detached text node")
	}
	b, ok := ByteIndex(n.Data, runeOff)
	if !ok || b == 0 || b == len(n.Data) {
		return nil, fmt.Errorf("split: offset %d out of range for node of length %d", runeOff, RuneLen(n))
	}
	rest := &html.Node{Type: html.TextNode, Data: n.Data[b:]}
	n.Data = n.Data[:b]
	n.Parent.InsertBefore(rest, n.NextSibling)
	return rest, nil
}

// MergeText merges runs of adjacent text-node children of parent into
// single nodes and drops empty text children. Only direct children are
// touched.
func MergeText(parent *html.Node) {
	child := parent.FirstChild
	for child != nil {
		next := child.NextSibling
		if IsText(child) {
			if child.Data == "" {
				parent.RemoveChild(child)
			} else {
				for next != nil && IsText(next) {
					child.Data += next.Data
					after := next.NextSibling
					parent.RemoveChild(next)
					next = after
				}
				next = child.NextSibling
			}
		}
		child = next
	}
}

// Normalize recursively merges adjacent text nodes and removes empty text
// nodes throughout the subtree rooted at n, mirroring the DOM normalize()
// operation.
func Normalize(n *html.Node) {
	MergeText(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if IsElement(child) {
			Normalize(child)
		}
	}
}

// Unwrap replaces element el with a single text node holding its
// concatenated text, then merges the resulting adjacent text siblings.
func Unwrap(el *html.Node) error {
	parent := el.Parent
	if parent == nil {
		return fmt.Errorf("unwrap: detached element")
	}
	text := &html.Node{Type: html.TextNode, Data: TextOf(el)}
	parent.InsertBefore(text, el)
	parent.RemoveChild(el)
	MergeText(parent)
	return nil
}
