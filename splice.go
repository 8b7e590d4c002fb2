package forwardlist

// SpliceList moves every element of src after pos in l, in constant time.
// src is left empty. Nodes are moved, not copied, so positions into src
// remain valid and now refer to elements of l. Splicing a list into itself
// does nothing.
func (l *List[T]) SpliceList(pos Position[T], src *List[T]) {
	if src == l || src.len == 0 {
		return
	}

	at := pos.n
	src.tail.next = at.next
	at.next = src.head.next
	if src.tail.next == nil {
		l.tail = src.tail
	}
	l.len += src.len

	src.reset()
}

// SpliceElement moves the element following srcBefore in src to the point
// after pos in l, in constant time. It does nothing if srcBefore has no
// successor. l and src may be the same list.
func (l *List[T]) SpliceElement(pos Position[T], src *List[T], srcBefore Position[T]) {
	if srcBefore.n == nil || srcBefore.n.next == nil {
		return
	}
	// Moving an element after itself leaves it where it is.
	if src == l && pos.n == srcBefore.n.next {
		return
	}
	n := src.unlinkAfter(srcBefore.n)
	l.linkAfter(pos.n, n)
}

// SpliceRange moves the elements strictly between srcBefore and srcLast in
// src to the point after pos in l, preserving their order. The cost is
// proportional to the number of moved elements. srcLast may be the end
// position of src.
//
// When l and src are the same list, pos must not lie inside the range.
func (l *List[T]) SpliceRange(pos Position[T], src *List[T], srcBefore, srcLast Position[T]) {
	if srcBefore.n == nil || srcBefore == srcLast {
		return
	}
	if src == l && pos.n == srcBefore.n {
		return
	}

	at := pos.n
	for srcBefore.n.next != srcLast.n {
		n := src.unlinkAfter(srcBefore.n)
		if n == nil {
			return
		}
		l.linkAfter(at, n)
		at = n
	}
}
