package highlight

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Finder yields the lazy sequence of ranges matching a subject. Next
// returns false once the sequence is exhausted.
type Finder interface {
	Next() (*Range, bool)
}

// NewFinder dispatches on the subject kind: strings and regular
// expressions scan the flat projection, an XPathRange resolves to exactly
// one hit. Any other subject is rejected with ErrBadSubject.
func NewFinder(content *TextContent, subject any) (Finder, error) {
	switch s := subject.(type) {
	case string:
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(s))
		if err != nil {
			return nil, fmt.Errorf("compile literal %q: %w", s, err)
		}
		return &textFinder{content: content, re: re}, nil
	case *regexp.Regexp:
		if s == nil {
			return nil, ErrBadSubject
		}
		return &textFinder{content: content, re: s}, nil
	case XPathRange:
		return newXPathFinder(content, s)
	case *XPathRange:
		if s == nil {
			return nil, ErrBadSubject
		}
		return newXPathFinder(content, *s)
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadSubject, subject)
	}
}

// textFinder scans the flat projection left to right, yielding
// non-overlapping matches. Literal subjects are matched case-insensitively.
type textFinder struct {
	content *TextContent
	re      *regexp.Regexp
	pos     int // byte offset of the scan head
	runePos int // rune offset of the scan head
}

// Next returns the next matching range, or false when the projection is
// exhausted.
func (f *textFinder) Next() (*Range, bool) {
	text := f.content.Text()
	for f.pos <= len(text) {
		loc := f.re.FindStringIndex(text[f.pos:])
		if loc == nil {
			return nil, false
		}
		startB := f.pos + loc[0]
		endB := f.pos + loc[1]
		if startB == endB {
			// Zero-width match: step one rune and retry.
			_, w := utf8.DecodeRuneInString(text[endB:])
			if w == 0 {
				return nil, false
			}
			f.runePos += utf8.RuneCountInString(text[f.pos : endB+w])
			f.pos = endB + w
			continue
		}
		startR := f.runePos + utf8.RuneCountInString(text[f.pos:startB])
		matchRunes := utf8.RuneCountInString(text[startB:endB])
		f.pos = endB
		f.runePos = startR + matchRunes
		start, err := f.content.PositionAt(startR)
		if err != nil {
			return nil, false
		}
		end, err := f.content.PositionAt(startR + matchRunes - 1)
		if err != nil {
			return nil, false
		}
		r, err := NewRange(f.content, start, end)
		if err != nil {
			return nil, false
		}
		return r, true
	}
	return nil, false
}

// xpathFinder yields the single range its subject resolves to, then
// reports exhaustion on every later call.
type xpathFinder struct {
	result *Range
	done   bool
}

func newXPathFinder(content *TextContent, subject XPathRange) (*xpathFinder, error) {
	r, err := ResolveXPath(content, subject)
	if err != nil {
		return nil, err
	}
	return &xpathFinder{result: r}, nil
}

// Next returns the resolved range once.
func (f *xpathFinder) Next() (*Range, bool) {
	if f.done {
		return nil, false
	}
	f.done = true
	return f.result, true
}
