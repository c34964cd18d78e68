package ring

// Handle addresses a slot inside the arena. Handles stay valid for the
// lifetime of the ring; recycled slots are handed out again by Alloc.
type Handle int32

// None marks the absence of a slot. Removed nodes have both links reset to
// None so stale ring membership cannot be followed.
const None Handle = -1

type node struct {
	next Handle
	prev Handle
}

// Ring is a sentinel-anchored circular doubly-linked list whose links are
// slot indices into a growable arena. The sentinel occupies slot 0, never
// carries a payload, and is self-linked while the ring is empty. Freed slots
// go onto an explicit free list and are recycled before the arena grows.
//
// The ring knows nothing about payloads; callers keep per-slot data in
// parallel storage indexed by Handle and order elements through the
// comparator passed to SortFunc.
type Ring struct {
	nodes []node
	free  []Handle
}

// New creates a ring containing only the sentinel.
func New(options ...Option) *Ring {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	capacity := opts.capacityHint + 1
	if capacity < 1 {
		capacity = 1
	}

	r := &Ring{nodes: make([]node, 1, capacity)}
	r.init(0)
	return r
}

// Sentinel returns the handle of the anchor slot.
func (r *Ring) Sentinel() Handle {
	return 0
}

// Cap returns the total number of slots the arena holds, free or linked.
func (r *Ring) Cap() int {
	return len(r.nodes)
}

// init makes h a one-element ring.
func (r *Ring) init(h Handle) {
	r.nodes[h].next = h
	r.nodes[h].prev = h
}

// Alloc reserves a slot and returns its handle. A recycled slot is preferred
// over growing the arena. The slot comes back self-linked, exactly as if
// init had been called on it.
func (r *Ring) Alloc() Handle {
	var h Handle
	if n := len(r.free); n > 0 {
		h = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		h = Handle(len(r.nodes))
		r.nodes = append(r.nodes, node{})
	}
	r.init(h)
	return h
}

// Recycle returns an unlinked slot to the free list. The caller must have
// removed the slot from the ring first; recycling a linked slot corrupts the
// arena.
func (r *Ring) Recycle(h Handle) {
	r.nodes[h].next = None
	r.nodes[h].prev = None
	r.free = append(r.free, h)
}

// Recycled reports how many slots currently sit on the free list.
func (r *Ring) Recycled() int {
	return len(r.free)
}

// InsertAfter links n immediately after ref. Four index writes, O(1).
func (r *Ring) InsertAfter(n, ref Handle) {
	next := r.nodes[ref].next
	r.nodes[n].prev = ref
	r.nodes[n].next = next
	r.nodes[next].prev = n
	r.nodes[ref].next = n
}

// InsertBefore links n immediately before ref.
func (r *Ring) InsertBefore(n, ref Handle) {
	r.InsertAfter(n, r.nodes[ref].prev)
}

// Remove unlinks h by relinking its neighbours to each other. The slot is
// neither recycled nor reinitialised; its own links are reset to None so the
// caller cannot follow them back into the ring.
func (r *Ring) Remove(h Handle) {
	next := r.nodes[h].next
	prev := r.nodes[h].prev
	r.nodes[prev].next = next
	r.nodes[next].prev = prev
	r.nodes[h].next = None
	r.nodes[h].prev = None
}

// MoveAfter unlinks n from its current position and reinserts it immediately
// after anchor. Combined O(1) primitive used by reversal and pair swapping.
func (r *Ring) MoveAfter(n, anchor Handle) {
	r.Remove(n)
	r.InsertAfter(n, anchor)
}

// IsEmpty reports whether anchor is the only slot in its ring.
func (r *Ring) IsEmpty(anchor Handle) bool {
	return r.nodes[anchor].next == anchor
}

// IsSingular reports whether exactly one slot besides anchor is linked.
func (r *Ring) IsSingular(anchor Handle) bool {
	next := r.nodes[anchor].next
	return next != anchor && next == r.nodes[anchor].prev
}

// Next returns the successor of h.
func (r *Ring) Next(h Handle) Handle {
	return r.nodes[h].next
}

// Prev returns the predecessor of h.
func (r *Ring) Prev(h Handle) Handle {
	return r.nodes[h].prev
}
