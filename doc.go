// Package sortablequeue implements a double-ended string queue over an
// arena-backed circular doubly-linked ring, together with a family of
// whole-queue transformations: middle-element deletion, removal of
// duplicated values from a sorted queue, pairwise swapping, reversal and a
// stable merge sort by byte-wise string comparison.
//
// Removal and release are distinct steps. RemoveHead and RemoveTail only
// unlink the boundary element and transfer ownership of it to the caller;
// the element's arena slot becomes reusable when the caller passes it to
// Release. The delete operations perform both steps themselves.
//
// Every operation tolerates a nil queue handle and degrades to a no-op,
// false, nil or zero result. The queue is single-threaded by design.
package sortablequeue
