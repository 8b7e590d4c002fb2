package forwardlist

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) error {
	_, err := l.InsertAfter(l.BeforeBegin(), v)
	return err
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) error {
	_, err := l.InsertAfter(l.Last(), v)
	return err
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	v, ok := l.RemoveAfter(l.BeforeBegin())
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// PopBack removes and returns the last element. It walks the list to find
// the node preceding the tail and therefore takes O(n) time.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	prev := &l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	v, _ := l.RemoveAfter(Position[T]{n: prev})
	return v, nil
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.head.next == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.next.value, nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}
