package forwardlist

// Remove removes every element equal to v according to equal and returns
// the number of elements removed. The remaining elements keep their order.
func (l *List[T]) Remove(v T, equal func(a, b T) bool) int {
	return l.RemoveIf(func(e T) bool {
		return equal(v, e)
	})
}

// RemoveIf removes every element for which pred holds and returns the number
// of elements removed. pred must not modify the list.
func (l *List[T]) RemoveIf(pred func(v T) bool) int {
	if l.len == 0 {
		return 0
	}

	removed := 0
	for at := &l.head; at.next != nil; {
		if pred(at.next.value) {
			release(l.unlinkAfter(at))
			removed++
			continue
		}
		at = at.next
	}
	return removed
}

// Unique keeps only the first element of every run of consecutive elements
// that are equal according to equal, and returns the number of elements
// removed. Equal elements that are not adjacent are kept.
func (l *List[T]) Unique(equal func(a, b T) bool) int {
	if l.len < 2 {
		return 0
	}

	removed := 0
	for at := l.head.next; at.next != nil; {
		if equal(at.value, at.next.value) {
			release(l.unlinkAfter(at))
			removed++
			continue
		}
		at = at.next
	}
	return removed
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	if l.len < 2 {
		return
	}

	first := l.head.next
	var prev *node[T]
	for n := first; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head.next = prev
	l.tail = first
}

// Swap exchanges the elements of l and other in constant time. Each list
// keeps its own limit and its own before-first position.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.tail, other.tail = other.tail, l.tail
	l.len, other.len = other.len, l.len
}
