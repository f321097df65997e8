package highlight

// Cursor models a position over the union of enabled highlights, ordered
// by global offset with ties broken by insertion order. An optional
// whitelist restricts which query sets contribute.
type Cursor struct {
	hl       *Highlighter
	index    int
	total    int
	iterable map[string]bool // nil means all sets
}

func newCursor(hl *Highlighter) *Cursor {
	c := &Cursor{hl: hl, index: -1}
	c.total = c.count()
	return c
}

// Clear resets the cursor to no position and recomputes the total.
func (c *Cursor) Clear() {
	c.index = -1
	c.total = c.count()
	c.hl.observer.CursorMoved(c.index, c.total)
}

// SetIterable restricts the cursor to the named query sets. A nil slice
// restores iteration over all sets. The cursor is cleared either way.
func (c *Cursor) SetIterable(names []string) {
	if names == nil {
		c.iterable = nil
	} else {
		c.iterable = make(map[string]bool, len(names))
		for _, n := range names {
			c.iterable[n] = true
		}
	}
	c.Clear()
}

// Set positions the cursor at index i modulo the current total, rolling
// forward on overflow and backward on underflow.
func (c *Cursor) Set(i int) {
	c.total = c.count()
	if c.total == 0 {
		c.index = -1
		c.hl.observer.CursorMoved(c.index, c.total)
		return
	}
	c.index = ((i % c.total) + c.total) % c.total
	c.hl.observer.CursorMoved(c.index, c.total)
}

// Next advances the cursor, rolling over past the last highlight.
func (c *Cursor) Next() {
	c.Set(c.index + 1)
}

// Prev moves the cursor back, rolling over before the first highlight.
func (c *Cursor) Prev() {
	c.Set(c.index - 1)
}

// Index returns the current position, or -1 when there are no iterable
// highlights.
func (c *Cursor) Index() int {
	return c.index
}

// Total returns the number of iterable highlights.
func (c *Cursor) Total() int {
	return c.total
}

// Current returns the mark under the cursor.
func (c *Cursor) Current() (Mark, bool) {
	if c.index < 0 {
		return Mark{}, false
	}
	seen := 0
	for _, m := range c.hl.marks {
		if !c.contributes(m) {
			continue
		}
		if seen == c.index {
			return m, true
		}
		seen++
	}
	return Mark{}, false
}

func (c *Cursor) count() int {
	n := 0
	for _, m := range c.hl.marks {
		if c.contributes(m) {
			n++
		}
	}
	return n
}

func (c *Cursor) contributes(m Mark) bool {
	if !m.set.enabled {
		return false
	}
	return c.iterable == nil || c.iterable[m.set.name]
}
