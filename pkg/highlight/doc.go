// Package highlight implements the text-offset model and range-to-DOM
// mapping engine for marking textual queries inside parsed HTML documents.
//
// A TextContent is a flat, text-only projection of a container subtree
// that assigns a global rune offset to every text node. Finders yield
// Ranges — pairs of position descriptors over a TextContent — for literal,
// regular-expression, or XPath subjects. A RangeHighlighter realizes a
// Range in the DOM by splitting and wrapping text nodes; the Highlighter
// registry coordinates named query sets, the globally sorted highlight
// list, and the cursor over enabled highlights.
package highlight
