package sortablequeue

import (
	"github.com/timzifer/sortable_queue/internal/ring"
	"github.com/timzifer/sortable_queue/internal/telemetry"
)

// Queue is a double-ended queue of strings over an arena-backed circular
// ring. The ring stores only slot links; the payloads live in parallel
// storage indexed by slot handle. All operations degrade to a safe no-op,
// false, nil or zero result on a nil receiver instead of panicking.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	ring   *ring.Ring
	values []string
}

// Element is an entry removed from a queue. The removed string is moved out
// of the arena into the element, so the element keeps its value regardless
// of what happens to the queue afterwards. The caller owns the element and
// must hand it back via Release to make its slot reusable.
type Element struct {
	value string
	slot  ring.Handle
}

// Value returns the string the element carries.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// CopyValue copies the element's value into buf and returns the number of
// bytes copied. A nil element or empty buffer copies nothing.
func (e *Element) CopyValue(buf []byte) int {
	if e == nil {
		return 0
	}
	return copy(buf, e.value)
}

// NewQueue creates an empty queue. Options may pre-size the slot arena and
// seed the queue with initial values in tail order.
func NewQueue(options ...Option) *Queue {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	hint := opts.capacityHint
	if n := len(opts.initialValues); n > hint {
		hint = n
	}

	q := &Queue{
		ring:   ring.New(ring.WithCapacityHint(hint)),
		values: make([]string, 1, hint+1),
	}
	for _, v := range opts.initialValues {
		q.InsertTail(v)
	}
	return q
}

// Free releases every element still owned by the queue, returning all slots
// to the arena free list. The queue stays usable as an empty queue. Calling
// Free on a nil or already-empty queue does nothing.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	c := q.ring.Scan(q.ring.Sentinel())
	for c.Next() {
		h := c.Handle()
		c.Unlink()
		q.releaseSlot(h)
	}
}

// InsertHead stores s in a new element at the front of the queue. It
// reports false only when the queue handle is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	h := q.allocSlot(s)
	q.ring.InsertAfter(h, q.ring.Sentinel())
	return true
}

// InsertTail stores s in a new element at the back of the queue. It reports
// false only when the queue handle is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	h := q.allocSlot(s)
	q.ring.InsertBefore(h, q.ring.Sentinel())
	return true
}

// RemoveHead unlinks the front element and transfers ownership of it to the
// caller. It returns nil on a nil or empty queue. Removing never releases:
// the caller must pass the element to Release once done with it.
func (q *Queue) RemoveHead() *Element {
	if q == nil || q.ring.IsEmpty(q.ring.Sentinel()) {
		return nil
	}
	return q.detach(q.ring.Next(q.ring.Sentinel()))
}

// RemoveTail unlinks the back element and transfers ownership of it to the
// caller. It returns nil on a nil or empty queue.
func (q *Queue) RemoveTail() *Element {
	if q == nil || q.ring.IsEmpty(q.ring.Sentinel()) {
		return nil
	}
	return q.detach(q.ring.Prev(q.ring.Sentinel()))
}

// Release hands an element removed from this queue back to the arena so its
// slot can be reused. Releasing nil or an already-released element does
// nothing.
func (q *Queue) Release(e *Element) {
	if q == nil || e == nil || e.slot == ring.None {
		return
	}
	slot := e.slot
	e.slot = ring.None
	q.releaseSlot(slot)
}

// Size returns the number of elements in the queue, or 0 for a nil queue.
// The count comes from a full traversal; no cached counter is kept.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	n := 0
	s := q.ring.Sentinel()
	for h := q.ring.Next(s); h != s; h = q.ring.Next(h) {
		n++
	}
	return n
}

// DeleteMiddle removes and releases the element at index ⌊n/2⌋ (0-based).
// For even lengths that is the later of the two middle candidates. It
// reports false on a nil or empty queue.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.ring.IsEmpty(q.ring.Sentinel()) {
		return false
	}

	s := q.ring.Sentinel()
	mid := q.ring.Next(s)
	for fast := q.ring.Next(s); fast != s && q.ring.Next(fast) != s; fast = q.ring.Next(q.ring.Next(fast)) {
		mid = q.ring.Next(mid)
	}

	q.ring.Remove(mid)
	q.releaseSlot(mid)
	return true
}

// DeleteDuplicates removes every element whose value occurs more than once,
// keeping only values that were unique. The queue must already be sorted in
// ascending order; behaviour on an unsorted queue is unspecified. It reports
// false only when the queue handle is nil.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil {
		return false
	}

	s := q.ring.Sentinel()
	cur := q.ring.Next(s)
	for cur != s {
		next := q.ring.Next(cur)
		if next != s && q.values[cur] == q.values[next] {
			// Drop the whole run, the trailing copy included.
			v := q.values[cur]
			for cur != s && q.values[cur] == v {
				n := q.ring.Next(cur)
				q.ring.Remove(cur)
				q.releaseSlot(cur)
				cur = n
			}
		} else {
			cur = next
		}
	}
	return true
}

// SwapPairs exchanges every two adjacent elements from the front. An odd
// trailing element stays in place. A nil queue is a no-op.
func (q *Queue) SwapPairs() {
	if q == nil {
		return
	}
	s := q.ring.Sentinel()
	for l := q.ring.Next(s); l != s && q.ring.Next(l) != s; l = q.ring.Next(l) {
		q.ring.MoveAfter(l, q.ring.Next(l))
	}
}

// Reverse reverses the element order in place. Every node is moved to the
// front in traversal order; nothing is allocated or released. A nil or
// empty queue is a no-op.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	s := q.ring.Sentinel()
	c := q.ring.Scan(s)
	for c.Next() {
		q.ring.MoveAfter(c.Handle(), s)
	}
}

// Sort orders the elements ascending by byte-wise string comparison using a
// stable merge sort over the ring links. Nil, empty and single-element
// queues are left untouched. Sorting relinks; it never allocates, releases
// or copies element values.
func (q *Queue) Sort() {
	if q == nil {
		return
	}
	q.ring.SortFunc(q.ring.Sentinel(), func(a, b ring.Handle) bool {
		return q.values[a] < q.values[b]
	})
}

// allocSlot reserves an arena slot holding s.
func (q *Queue) allocSlot(s string) ring.Handle {
	reused := q.ring.Recycled() > 0
	h := q.ring.Alloc()
	for int(h) >= len(q.values) {
		q.values = append(q.values, "")
	}
	q.values[h] = s
	telemetry.DefaultAllocMetrics().ElementAllocated(reused)
	return h
}

// detach moves the value out of a slot and hands it to the caller as an
// owned element. The slot stays reserved until Release.
func (q *Queue) detach(h ring.Handle) *Element {
	e := &Element{value: q.values[h], slot: h}
	q.values[h] = ""
	q.ring.Remove(h)
	return e
}

// releaseSlot clears and recycles a slot that is no longer linked.
func (q *Queue) releaseSlot(h ring.Handle) {
	q.values[h] = ""
	q.ring.Recycle(h)
	telemetry.DefaultAllocMetrics().ElementReleased()
}
