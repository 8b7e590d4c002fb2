package forwardlist

// Sort sorts the list in place so that less(a, b) holds for no pair where b
// precedes a. less must be a strict weak ordering. The sort is stable: equal
// elements keep their relative order.
//
// Sort is a bottom-up merge sort. Each pass merges adjacent runs of gap
// elements by relinking nodes, and gap doubles after each pass, so it runs
// in O(n log n) time with a constant number of cursors and no recursion.
// A nil less leaves the list unchanged.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if less == nil || l.len < 2 {
		return
	}

	for gap := 1; gap < l.len; gap *= 2 {
		prev := &l.head // last node of the merged prefix
		cur := l.head.next
		for cur != nil {
			leftEnd := walk(cur, gap)
			right := leftEnd.next
			if right == nil {
				// Lone final run, already in order.
				prev.next = cur
				prev = leftEnd
				break
			}
			rightEnd := walk(right, gap)
			next := rightEnd.next

			leftEnd.next = nil
			rightEnd.next = nil
			first, last := merge(cur, leftEnd, right, rightEnd, less)

			prev.next = first
			prev = last
			cur = next
		}
		l.tail = prev
	}
}

// IsSorted reports whether the list is sorted according to less.
func (l *List[T]) IsSorted(less func(a, b T) bool) bool {
	for n := l.head.next; n != nil && n.next != nil; n = n.next {
		if less(n.next.value, n.value) {
			return false
		}
	}
	return true
}

// Merge merges the sorted list src into the sorted list l by relinking
// nodes; src is left empty. The merge is stable and elements of l precede
// equal elements of src. Merging a list with itself does nothing.
func (l *List[T]) Merge(src *List[T], less func(a, b T) bool) {
	if src == l || less == nil || src.len == 0 {
		return
	}
	if l.len == 0 {
		l.SpliceList(l.BeforeBegin(), src)
		return
	}

	first, last := merge(l.head.next, l.tail, src.head.next, src.tail, less)
	l.head.next = first
	l.tail = last
	l.len += src.len

	src.reset()
}

// walk returns the node gap-1 steps after n, or the last node of the chain.
func walk[T any](n *node[T], gap int) *node[T] {
	for i := 1; i < gap && n.next != nil; i++ {
		n = n.next
	}
	return n
}

// merge merges the nil terminated sorted chains a..aEnd and b..bEnd and
// returns the first and last node of the result. On ties the node from a
// goes first.
func merge[T any](a, aEnd, b, bEnd *node[T], less func(a, b T) bool) (first, last *node[T]) {
	var head node[T]
	t := &head
	for a != nil && b != nil {
		if less(b.value, a.value) {
			t.next = b
			b = b.next
		} else {
			t.next = a
			a = a.next
		}
		t = t.next
	}

	if a != nil {
		t.next = a
		return head.next, aEnd
	}
	t.next = b
	if b != nil {
		return head.next, bEnd
	}
	return head.next, t
}
