package ring

// SortFunc sorts the ring anchored at anchor into ascending order under
// less. Empty and singular rings are left untouched. The sort is stable:
// slots that compare equal keep their relative order.
//
// The ring is first detached into a None-terminated chain threaded through
// the next links, that chain is merge sorted recursively, and a final
// forward pass rebuilds the prev links and reconnects both ends to the
// anchor. Only index rewriting happens; the arena is never grown and no
// slot changes identity.
func (r *Ring) SortFunc(anchor Handle, less func(a, b Handle) bool) {
	if r.IsEmpty(anchor) || r.IsSingular(anchor) {
		return
	}

	first := r.nodes[anchor].next
	r.nodes[r.nodes[anchor].prev].next = None

	first = r.mergeSort(first, less)

	// Rethread: one forward pass restores prev and closes the ring.
	prev := anchor
	r.nodes[anchor].next = first
	h := first
	for r.nodes[h].next != None {
		r.nodes[h].prev = prev
		prev = h
		h = r.nodes[h].next
	}
	r.nodes[h].prev = prev
	r.nodes[h].next = anchor
	r.nodes[anchor].prev = h
}

// mergeSort sorts a None-terminated chain and returns its new head.
// Splitting uses the fast/slow walk: severing after the slow slot halves
// the chain when the fast slot runs out.
func (r *Ring) mergeSort(head Handle, less func(a, b Handle) bool) Handle {
	if head == None || r.nodes[head].next == None {
		return head
	}

	slow := head
	for fast := r.nodes[head].next; fast != None && r.nodes[fast].next != None; fast = r.nodes[r.nodes[fast].next].next {
		slow = r.nodes[slow].next
	}
	right := r.nodes[slow].next
	r.nodes[slow].next = None

	left := r.mergeSort(head, less)
	right = r.mergeSort(right, less)

	return r.merge(left, right, less)
}

// merge combines two sorted chains. Equal heads are taken from the first
// chain, which is what makes the overall sort stable. The survivor chain is
// appended wholesale once the other runs out.
func (r *Ring) merge(l1, l2 Handle, less func(a, b Handle) bool) Handle {
	head := None
	tail := None

	appendTo := func(h Handle) {
		if head == None {
			head = h
		} else {
			r.nodes[tail].next = h
		}
		tail = h
	}

	for l1 != None && l2 != None {
		if less(l2, l1) {
			next := r.nodes[l2].next
			appendTo(l2)
			l2 = next
		} else {
			next := r.nodes[l1].next
			appendTo(l1)
			l1 = next
		}
	}

	rest := l1
	if rest == None {
		rest = l2
	}
	if head == None {
		return rest
	}
	r.nodes[tail].next = rest
	return head
}
