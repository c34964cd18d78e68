package ring

// Cursor walks a ring forward from its anchor. The successor is prefetched
// before the current slot is yielded, so the current slot may be unlinked or
// recycled mid-walk without derailing the traversal.
type Cursor struct {
	r       *Ring
	anchor  Handle
	current Handle
	next    Handle
}

// Scan starts a fresh forward walk over the ring anchored at anchor. Each
// call returns an independent cursor, so walks are restartable.
func (r *Ring) Scan(anchor Handle) *Cursor {
	return &Cursor{
		r:       r,
		anchor:  anchor,
		current: None,
		next:    r.nodes[anchor].next,
	}
}

// Next advances to the following slot. It returns false once the anchor is
// revisited; the walk is finite on any valid ring.
func (c *Cursor) Next() bool {
	if c.next == c.anchor {
		c.current = None
		return false
	}
	c.current = c.next
	c.next = c.r.nodes[c.next].next
	return true
}

// Handle returns the slot the cursor currently rests on, or None before the
// first Next and after the walk ends.
func (c *Cursor) Handle() Handle {
	return c.current
}

// Unlink removes the current slot from the ring and continues the walk from
// the prefetched successor. The slot is not recycled.
func (c *Cursor) Unlink() {
	if c.current == None {
		return
	}
	c.r.Remove(c.current)
	c.current = None
}
