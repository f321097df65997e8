// Package mdrender renders Markdown input to HTML so it can be
// highlighted like any other document.
package mdrender

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Render converts Markdown source to an HTML fragment. GitHub Flavored
// Markdown extensions are enabled; raw HTML blocks in the source pass
// through unchanged.
func Render(src []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
