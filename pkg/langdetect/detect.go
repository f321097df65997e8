// Package langdetect classifies input documents so the runner can pick a
// parse path. Detection is delegated to go-enry with a small sniff
// fallback for extensionless input.
package langdetect

import (
	"bytes"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Format is the recognized input kind.
type Format int

const (
	FormatUnknown Format = iota
	FormatHTML
	FormatMarkdown
	FormatText
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Detect classifies content, using the filename when one is available.
func Detect(filename string, content []byte) Format {
	if filename != "" {
		switch lang := enry.GetLanguage(filepath.Base(filename), content); lang {
		case "HTML":
			return FormatHTML
		case "Markdown":
			return FormatMarkdown
		case "Text":
			return FormatText
		}
	}
	return sniff(content)
}

// sniff inspects the head of the content for an HTML document marker.
func sniff(content []byte) Format {
	head := bytes.ToLower(bytes.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	for _, marker := range [][]byte{
		[]byte("<!doctype html"),
		[]byte("<html"),
		[]byte("<body"),
		[]byte("<div"),
		[]byte("<p"),
	} {
		if bytes.HasPrefix(head, marker) || bytes.Contains(head, marker) {
			return FormatHTML
		}
	}
	if len(head) == 0 {
		return FormatUnknown
	}
	return FormatText
}
