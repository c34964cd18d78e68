// Package ring provides a sentinel-anchored circular doubly-linked list
// whose links are slot indices into a growable arena rather than pointers.
// Unlinking a node is pure index rewriting, removed slots have their links
// reset so they cannot be followed back into the ring, and freed slots are
// recycled through an explicit free list instead of being deallocated
// individually.
//
// The package supplies the O(1) splice primitives (insert, remove, move), a
// mutation-tolerant forward cursor that prefetches its successor so the
// current slot may be unlinked mid-walk, and a comparator-driven merge sort
// that detaches the ring into a singly-linked chain, sorts it recursively
// and rethreads the result back into a ring.
//
// The ring carries no payload. Callers keep per-slot data in parallel
// storage indexed by Handle and inject ordering through the SortFunc
// comparator, so the primitive layer never learns what it is linking.
package ring
