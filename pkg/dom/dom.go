// Package dom provides tree utilities over golang.org/x/net/html nodes:
// document-order traversal, class and attribute manipulation, text-node
// splitting and merging, and the XPath dialect used to address text
// positions relative to a container element.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkAttr is the attribute that identifies a highlight wrapper element.
// Wrapper detection uses this attribute rather than a class name so that
// user content carrying highlight-like classes cannot desynchronize
// sibling indexing.
const MarkAttr = "data-hh"

// IDAttr carries the numeric highlight id on a wrapper element.
const IDAttr = "data-hh-id"

// IsText returns true if n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// IsElement returns true if n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsWrapper returns true if n is a highlight wrapper element.
func IsWrapper(n *html.Node) bool {
	if !IsElement(n) {
		return false
	}
	_, ok := Attr(n, MarkAttr)
	return ok
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether the element's class list contains name.
func HasClass(n *html.Node, name string) bool {
	cls, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(cls) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the element's class list if absent.
func AddClass(n *html.Node, name string) {
	if HasClass(n, name) {
		return
	}
	cls, ok := Attr(n, "class")
	if !ok || cls == "" {
		SetAttr(n, "class", name)
		return
	}
	SetAttr(n, "class", cls+" "+name)
}

// RemoveClass removes name from the element's class list.
func RemoveClass(n *html.Node, name string) {
	cls, ok := Attr(n, "class")
	if !ok {
		return
	}
	fields := strings.Fields(cls)
	kept := fields[:0]
	for _, c := range fields {
		if c != name {
			kept = append(kept, c)
		}
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// Next returns the document-order successor of n within the subtree rooted
// at root, or nil once the subtree is exhausted.
func Next(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil && n != root {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// WalkText visits every text node under root in document order. Returning
// false from visit stops the walk.
func WalkText(root *html.Node, visit func(*html.Node) bool) {
	for n := Next(root, root); n != nil; n = Next(n, root) {
		if IsText(n) {
			if !visit(n) {
				return
			}
		}
	}
}

// NextText returns the first text node after n in document order within
// the subtree rooted at root, or nil.
func NextText(n, root *html.Node) *html.Node {
	for x := Next(n, root); x != nil; x = Next(x, root) {
		if IsText(x) {
			return x
		}
	}
	return nil
}

// TextOf returns the concatenated raw text of every text node under n, in
// document order. For a text node it is the node's data.
func TextOf(n *html.Node) string {
	if IsText(n) {
		return n.Data
	}
	var b strings.Builder
	WalkText(n, func(t *html.Node) bool {
		b.WriteString(t.Data)
		return true
	})
	return b.String()
}

// Contains reports whether node is root or a descendant of root.
func Contains(root, node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// ParseDocument parses a full HTML document.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// ParseDocumentBytes parses a full HTML document from a byte slice.
func ParseDocumentBytes(data []byte) (*html.Node, error) {
	return ParseDocument(bytes.NewReader(data))
}

// Body returns the <body> element of a parsed document, or nil.
func Body(doc *html.Node) *html.Node {
	for n := doc; n != nil; n = Next(n, doc) {
		if IsElement(n) && n.DataAtom == atom.Body {
			return n
		}
	}
	return nil
}

// Render serializes the subtree rooted at n as HTML.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderString serializes the subtree rooted at n into a string.
func RenderString(n *html.Node) (string, error) {
	var b bytes.Buffer
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
