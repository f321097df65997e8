package highlight

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/yaklabco/gohighlight/pkg/dom"
)

// Options configures a Highlighter.
type Options struct {
	// Container is the root element whose subtree is searched and marked.
	Container *html.Node

	// MaxHighlight bounds the rotating id_highlight values; the group CSS
	// class cycles through [0, MaxHighlight). Values below 1 become 1.
	MaxHighlight int

	// UseQueryAsClass adds a per-query CSS class to every wrapper.
	UseQueryAsClass bool

	// Normalise merges split text nodes throughout the container after a
	// query set is removed. Outstanding ranges are invalidated. The
	// projection is rebuilt after every removal either way.
	Normalise bool

	// Observer receives state-change notifications. Defaults to
	// NopObserver.
	Observer Observer

	// Logger receives transaction and wrap failures. Defaults to the
	// package-global logger.
	Logger *log.Logger
}

// Stats are the global statistics over all query sets.
type Stats struct {
	// Queries is the number of registered query sets.
	Queries int

	// Total is the number of highlights across all enabled sets.
	Total int

	// Highlight is the next id_highlight value to assign.
	Highlight int
}

// querySet is one named bundle of queries. Highlight ids owned by the set
// are the contiguous range [id, id+length).
type querySet struct {
	name        string
	enabled     bool
	idHighlight int
	id          int
	length      int
	reserve     int // -1 when no reservation
}

// Mark pins one highlight on the globally sorted list.
type Mark struct {
	set    *querySet
	index  int
	offset int
}

// Query returns the name of the owning query set.
func (m Mark) Query() string { return m.set.name }

// Index returns the highlight's ordinal within its query set.
func (m Mark) Index() int { return m.index }

// Offset returns the highlight's absolute start offset.
func (m Mark) Offset() int { return m.offset }

// ID returns the highlight's wrapper id.
func (m Mark) ID() int { return m.set.id + m.index }

// Enabled reports whether the owning query set is enabled.
func (m Mark) Enabled() bool { return m.set.enabled }

// SetInfo is a read-only snapshot of a query set.
type SetInfo struct {
	Name        string
	Enabled     bool
	ID          int
	IDHighlight int
	Length      int
	Reserve     int
}

// Highlighter is the registry of query sets. Mutating operations enqueue
// deferred actions; Apply drains the queue in order, logging and skipping
// failed actions without rolling back earlier ones.
type Highlighter struct {
	container       *html.Node
	maxHighlight    int
	useQueryAsClass bool
	normalise       bool
	observer        Observer
	logger          *log.Logger

	content   *TextContent
	sets      map[string]*querySet
	marks     []Mark
	cursor    *Cursor
	queue     []action
	lastID    int
	stats     Stats
	selection *Selection
}

// New creates a Highlighter over the container given in opts.
func New(opts Options) (*Highlighter, error) {
	if opts.Container == nil {
		return nil, fmt.Errorf("highlighter: nil container")
	}
	if opts.MaxHighlight < 1 {
		opts.MaxHighlight = 1
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	h := &Highlighter{
		container:       opts.Container,
		maxHighlight:    opts.MaxHighlight,
		useQueryAsClass: opts.UseQueryAsClass,
		normalise:       opts.Normalise,
		observer:        opts.Observer,
		logger:          opts.Logger,
		content:         NewTextContent(opts.Container),
		sets:            make(map[string]*querySet),
	}
	h.cursor = newCursor(h)
	return h, nil
}

// Content returns the current text projection.
func (h *Highlighter) Content() *TextContent {
	return h.content
}

// Stats returns the current global statistics.
func (h *Highlighter) Stats() Stats {
	return h.stats
}

// Cursor returns the cursor over enabled highlights.
func (h *Highlighter) Cursor() *Cursor {
	return h.cursor
}

// Marks returns the globally sorted highlight list.
func (h *Highlighter) Marks() []Mark {
	return h.marks
}

// Sets returns snapshots of all query sets ordered by first highlight id.
func (h *Highlighter) Sets() []SetInfo {
	infos := make([]SetInfo, 0, len(h.sets))
	for _, q := range h.sets {
		infos = append(infos, SetInfo{
			Name:        q.name,
			Enabled:     q.enabled,
			ID:          q.id,
			IDHighlight: q.idHighlight,
			Length:      q.length,
			Reserve:     q.reserve,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Empty reports whether no highlights exist.
func (h *Highlighter) Empty() bool {
	return len(h.marks) == 0
}

// LastIDOf returns the highest highlight id allocated to the named set.
func (h *Highlighter) LastIDOf(name string) (int, error) {
	q, ok := h.sets[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchSet, name)
	}
	return q.id + q.length - 1, nil
}

// Has reports whether a query set with the given name exists.
func (h *Highlighter) Has(name string) bool {
	_, ok := h.sets[name]
	return ok
}

// Refresh rebuilds the text projection from the current DOM state.
func (h *Highlighter) Refresh() {
	h.content.Refresh()
}

// SetIterableQueries restricts cursor movement to the named sets; nil
// restores all sets.
func (h *Highlighter) SetIterableQueries(names []string) {
	h.cursor.SetIterable(names)
}

// Next moves the cursor to the next enabled highlight.
func (h *Highlighter) Next() {
	h.cursor.Next()
}

// Prev moves the cursor to the previous enabled highlight.
func (h *Highlighter) Prev() {
	h.cursor.Prev()
}

// ---------------------------------------------------------------------------
// Deferred transactions
// ---------------------------------------------------------------------------

type actionKind uint8

const (
	actionAdd actionKind = iota
	actionAppend
	actionRemove
	actionEnable
	actionDisable
	actionClear
)

func (k actionKind) String() string {
	switch k {
	case actionAdd:
		return "add"
	case actionAppend:
		return "append"
	case actionRemove:
		return "remove"
	case actionEnable:
		return "enable"
	case actionDisable:
		return "disable"
	case actionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// action is one tagged transaction record. The drain loop in Apply is a
// switch over kind; no closures are queued.
type action struct {
	kind    actionKind
	name    string
	queries []any
	enabled bool
	reserve int
	reset   bool
}

// Add enqueues creation of a query set. Queries may be strings (literal,
// case-insensitive), *regexp.Regexp, or XPathRange values. An existing set
// with the same name is removed first. A non-negative reserve caps the
// set's highlight count and reserves id space for later appends.
func (h *Highlighter) Add(name string, queries []any, enabled bool, reserve int) {
	h.queue = append(h.queue, action{
		kind:    actionAdd,
		name:    name,
		queries: queries,
		enabled: enabled,
		reserve: reserve,
	})
}

// Append enqueues additional queries for an existing set. Added hits
// consume the set's reserved slack when present; hits beyond the
// reservation are dropped with an error log.
func (h *Highlighter) Append(name string, queries []any) {
	h.queue = append(h.queue, action{kind: actionAppend, name: name, queries: queries})
}

// Remove enqueues removal of a query set and all its highlights.
func (h *Highlighter) Remove(name string) {
	h.queue = append(h.queue, action{kind: actionRemove, name: name})
}

// Enable enqueues enabling of a query set. Idempotent.
func (h *Highlighter) Enable(name string) {
	h.queue = append(h.queue, action{kind: actionEnable, name: name})
}

// Disable enqueues disabling of a query set. Idempotent.
func (h *Highlighter) Disable(name string) {
	h.queue = append(h.queue, action{kind: actionDisable, name: name})
}

// Clear enqueues removal of every query set. With reset, highlight id
// allocation and the id_highlight rotation restart from zero.
func (h *Highlighter) Clear(reset bool) {
	h.queue = append(h.queue, action{kind: actionClear, reset: reset})
}

// Apply drains the transaction queue in enqueue order. A failed action is
// logged and skipped; later actions still run and observe the effects of
// earlier ones.
func (h *Highlighter) Apply() {
	queue := h.queue
	h.queue = nil
	for _, act := range queue {
		if err := h.run(act); err != nil {
			h.logger.Error("highlight action failed",
				"action", act.kind.String(), "name", act.name, "error", err)
		}
	}
}

func (h *Highlighter) run(act action) error {
	switch act.kind {
	case actionAdd:
		return h.doAdd(act.name, act.queries, act.enabled, act.reserve)
	case actionAppend:
		return h.doAppend(act.name, act.queries)
	case actionRemove:
		return h.doRemove(act.name)
	case actionEnable:
		return h.doSetEnabled(act.name, true)
	case actionDisable:
		return h.doSetEnabled(act.name, false)
	case actionClear:
		return h.doClear(act.reset)
	default:
		return fmt.Errorf("unknown action kind %d", act.kind)
	}
}

// ---------------------------------------------------------------------------
// Action implementations
// ---------------------------------------------------------------------------

func (h *Highlighter) doAdd(name string, queries []any, enabled bool, reserve int) error {
	if len(queries) == 0 {
		return fmt.Errorf("add %q: %w", name, ErrEmptyQueries)
	}
	if _, ok := h.sets[name]; ok {
		if err := h.doRemove(name); err != nil {
			return fmt.Errorf("replace %q: %w", name, err)
		}
	}
	q := &querySet{
		name:        name,
		enabled:     enabled,
		idHighlight: h.stats.Highlight,
		id:          h.lastID,
		reserve:     -1,
	}
	count := h.addQueries(q, queries, reserve)
	h.sets[name] = q
	h.stats.Queries++
	if reserve >= 0 && reserve > count {
		h.lastID += reserve
		q.reserve = reserve
	} else {
		h.lastID += count
	}
	h.stats.Highlight = (h.stats.Highlight + 1) % h.maxHighlight
	h.cursor.Clear()
	h.observer.StatsUpdated(h.stats)
	return nil
}

func (h *Highlighter) doAppend(name string, queries []any) error {
	if len(queries) == 0 {
		return fmt.Errorf("append %q: %w", name, ErrEmptyQueries)
	}
	q, ok := h.sets[name]
	if !ok {
		return fmt.Errorf("append %q: %w", name, ErrNoSuchSet)
	}
	h.addQueries(q, queries, q.reserve)
	h.cursor.Clear()
	h.observer.StatsUpdated(h.stats)
	return nil
}

// addQueries streams every hit of every query into the set, wrapping each
// and recording a mark. A non-negative limit caps the set's highlight
// count; the overflow is logged once and no further hits are accepted.
// The number of accepted hits is returned.
func (h *Highlighter) addQueries(q *querySet, queries []any, limit int) int {
	count := 0
	for _, subject := range queries {
		finder, err := NewFinder(h.content, subject)
		if err != nil {
			h.logger.Error("finder construction failed",
				"name", q.name, "subject", fmt.Sprintf("%v", subject), "error", err)
			continue
		}
		for {
			if limit >= 0 && q.length >= limit {
				h.logger.Error("highlight reserve exceeded",
					"name", q.name, "reserve", limit, "error", ErrReserveExceeded)
				return count
			}
			r, ok := finder.Next()
			if !ok {
				break
			}
			if err := h.insertHit(q, r); err != nil {
				h.logger.Error("highlight wrap failed", "name", q.name, "error", err)
				continue
			}
			count++
		}
	}
	return count
}

// insertHit wraps one hit and inserts its mark into the globally sorted
// list. The mark is only inserted after a successful wrap.
func (h *Highlighter) insertHit(q *querySet, r *Range) error {
	off := r.Start.Abs()
	wrapper := NewRangeHighlighter(q.id+q.length, q.idHighlight, q.enabled, h.queryClass(q))
	if err := wrapper.Do(r); err != nil {
		return err
	}
	// Ties insert after existing equal offsets.
	i := sort.Search(len(h.marks), func(j int) bool {
		return h.marks[j].offset > off
	})
	h.marks = append(h.marks, Mark{})
	copy(h.marks[i+1:], h.marks[i:])
	h.marks[i] = Mark{set: q, index: q.length, offset: off}
	q.length++
	if q.enabled {
		h.stats.Total++
	}
	return nil
}

func (h *Highlighter) queryClass(q *querySet) string {
	if h.useQueryAsClass {
		return q.name
	}
	return ""
}

func (h *Highlighter) doRemove(name string) error {
	q, ok := h.sets[name]
	if !ok {
		return fmt.Errorf("remove %q: %w", name, ErrNoSuchSet)
	}
	un := NewRangeUnhighlighter(h.container)
	for id := q.id; id < q.id+q.length; id++ {
		if err := un.Undo(id); err != nil {
			h.logger.Error("unhighlight failed", "name", name, "id", id, "error", err)
		}
	}
	kept := h.marks[:0]
	for _, m := range h.marks {
		if m.set != q {
			kept = append(kept, m)
		}
	}
	h.marks = kept
	h.stats.Queries--
	if q.enabled {
		h.stats.Total -= q.length
	}
	delete(h.sets, name)
	if h.normalise {
		dom.Normalize(h.container)
	}
	// Unwrapping replaced the set's text nodes, so the projection is rebuilt
	// whether or not the container was normalised.
	h.content.Refresh()
	h.cursor.Clear()
	h.observer.StatsUpdated(h.stats)
	return nil
}

func (h *Highlighter) doSetEnabled(name string, enabled bool) error {
	q, ok := h.sets[name]
	if !ok {
		return fmt.Errorf("%s %q: %w", enabledWord(enabled), name, ErrNoSuchSet)
	}
	if q.enabled == enabled {
		return nil
	}
	h.eachWrapper(q, func(el *html.Node) {
		if enabled {
			dom.RemoveClass(el, CSSDisabled)
		} else {
			dom.AddClass(el, CSSDisabled)
		}
	})
	q.enabled = enabled
	if enabled {
		h.stats.Total += q.length
	} else {
		h.stats.Total -= q.length
	}
	h.cursor.Clear()
	h.observer.StatsUpdated(h.stats)
	return nil
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enable"
	}
	return "disable"
}

// eachWrapper visits every wrapper element whose id lies in the set's
// range.
func (h *Highlighter) eachWrapper(q *querySet, visit func(*html.Node)) {
	for n := dom.Next(h.container, h.container); n != nil; n = dom.Next(n, h.container) {
		if !dom.IsWrapper(n) {
			continue
		}
		v, _ := dom.Attr(n, dom.IDAttr)
		id, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if id >= q.id && id < q.id+q.length {
			visit(n)
		}
	}
}

func (h *Highlighter) doClear(reset bool) error {
	names := make([]string, 0, len(h.sets))
	for name := range h.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.doRemove(name); err != nil {
			h.logger.Error("clear: remove failed", "name", name, "error", err)
		}
	}
	if len(h.sets) != 0 {
		return fmt.Errorf("clear: %d query sets left in registry", len(h.sets))
	}
	if reset {
		h.lastID = 0
		h.stats.Highlight = 0
	}
	return nil
}
