package forwardlist

import "fmt"

// EraseAfter removes the elements strictly between before and last, and
// returns last. last may be the end position.
func (l *List[T]) EraseAfter(before, last Position[T]) Position[T] {
	if before.n == nil {
		return last
	}
	for before.n.next != nil && before.n.next != last.n {
		release(l.unlinkAfter(before.n))
	}
	return last
}

// Clear removes every element from the list.
func (l *List[T]) Clear() {
	if l.len == 0 {
		return
	}
	l.truncate(&l.head)
}

// Resize changes the length of the list to n. Shrinking drops the elements
// past the n-th; growing appends zero values of T at the back. Growth is
// all-or-nothing: if the nodes cannot be allocated the list is unchanged.
func (l *List[T]) Resize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: resize to %d", ErrNegativeSize, n)
	case n == l.len:
		return nil
	case n == 0:
		l.Clear()
		return nil
	case n < l.len:
		l.shrink(n)
		return nil
	}

	if err := l.reserve(n - l.len); err != nil {
		return err
	}
	var zero T
	at := l.last()
	for l.len < n {
		at = l.insertAfter(at, zero)
	}
	return nil
}

// shrink keeps the first n elements, 0 < n < l.len.
func (l *List[T]) shrink(n int) {
	at := l.head.next
	for i := 1; i < n; i++ {
		at = at.next
	}
	l.truncate(at)
}
