package highlight

import "fmt"

// CSS class names emitted and removed by the highlighter. Wrapper elements
// are identified by the dom.MarkAttr attribute, not by these classes, so a
// document that happens to carry them is still indexed correctly.
const (
	// CSSHighlight is the base class present on every wrapper element.
	CSSHighlight = "hh-highlight"

	// CSSDisabled marks wrappers of a disabled query set.
	CSSDisabled = "hh-disabled"

	// CSSEnabled marks UI nodes of an enabled query set.
	CSSEnabled = "hh-enabled"
)

// GroupClass returns the rotating group class for an id_highlight value.
func GroupClass(idHighlight int) string {
	return fmt.Sprintf("highlight-id_%d", idHighlight)
}

// QueryClass returns the optional per-query class for a set name.
func QueryClass(name string) string {
	return "highlight-" + name
}
