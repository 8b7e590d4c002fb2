package forwardlist

import (
	"fmt"
	"iter"
)

// node holds one element and the link to its successor. The placeholder at
// the head of every list is a node whose value is never used.
type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly linked list of elements of type T.
type List[T any] struct {
	head  node[T]  // placeholder, head.next is the first element
	tail  *node[T] // last element, nil when the list is empty
	len   int
	limit int
}

// New creates an empty list configured by opts.
func New[T any](opts ...Option) (*List[T], error) {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	if o.limit < 0 {
		return nil, fmt.Errorf("%w: limit %d", ErrNegativeSize, o.limit)
	}

	return &List[T]{limit: o.limit}, nil
}

// Of creates an unlimited list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	l := &List[T]{}
	at := &l.head
	for _, v := range vs {
		at = l.insertAfter(at, v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Limit returns the node limit of the list, 0 if it has none.
func (l *List[T]) Limit() int {
	return l.limit
}

// BeforeBegin returns the position preceding the first element.
func (l *List[T]) BeforeBegin() Position[T] {
	return Position[T]{n: &l.head, before: true}
}

// Begin returns the position of the first element, or End if the list is empty.
func (l *List[T]) Begin() Position[T] {
	return Position[T]{n: l.head.next}
}

// Last returns the position of the last element. For an empty list it
// returns BeforeBegin, so that InsertAfter(Last(), v) always appends.
func (l *List[T]) Last() Position[T] {
	if l.tail == nil {
		return l.BeforeBegin()
	}
	return Position[T]{n: l.tail}
}

// End returns the position following the last element.
func (l *List[T]) End() Position[T] {
	return Position[T]{}
}

// InsertAfter inserts v immediately after pos and returns the position of
// the new element. No other position is invalidated.
func (l *List[T]) InsertAfter(pos Position[T], v T) (Position[T], error) {
	if err := l.reserve(1); err != nil {
		return pos, err
	}
	return Position[T]{n: l.insertAfter(pos.n, v)}, nil
}

// InsertAfterValues inserts vs in order after pos and returns the position of
// the last inserted element, or pos if vs is empty. Either all values are
// inserted or, on error, none.
func (l *List[T]) InsertAfterValues(pos Position[T], vs ...T) (Position[T], error) {
	if err := l.reserve(len(vs)); err != nil {
		return pos, err
	}
	for _, v := range vs {
		pos = Position[T]{n: l.insertAfter(pos.n, v)}
	}
	return pos, nil
}

// RemoveAfter removes the element following pos and returns it. It reports
// false, and does nothing, if pos has no successor.
func (l *List[T]) RemoveAfter(pos Position[T]) (T, bool) {
	n := l.unlinkAfter(pos.n)
	if n == nil {
		var zero T
		return zero, false
	}
	v := n.value
	release(n)
	return v, true
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Positions returns an iterator over the positions of the elements from
// front to back. The successor is read before each position is yielded, so
// the yielded node may be spliced away during the iteration.
func (l *List[T]) Positions() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for n := l.head.next; n != nil; {
			next := n.next
			if !yield(Position[T]{n: n}) {
				return
			}
			n = next
		}
	}
}

// Clone returns a new list with the same limit holding copies of the elements.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{limit: l.limit}
	at := &c.head
	for n := l.head.next; n != nil; n = n.next {
		at = c.insertAfter(at, n.value)
	}
	return c
}

// Assign replaces the contents of the list with vs, reusing existing nodes.
func (l *List[T]) Assign(vs ...T) error {
	if err := l.reserve(len(vs) - l.len); err != nil {
		return err
	}

	at := &l.head
	for _, v := range vs {
		if at.next == nil {
			at = l.insertAfter(at, v)
			continue
		}
		at = at.next
		at.value = v
	}
	l.truncate(at)
	return nil
}

// reserve fails if n more nodes would exceed the limit.
func (l *List[T]) reserve(n int) error {
	if l.limit == 0 || n <= 0 || l.len+n <= l.limit {
		return nil
	}
	return fmt.Errorf("%w: %d nodes requested, %d of %d in use", ErrNoMemory, n, l.len, l.limit)
}

func (l *List[T]) insertAfter(at *node[T], v T) *node[T] {
	n := &node[T]{value: v}
	l.linkAfter(at, n)
	return n
}

// linkAfter links the detached node n after at.
func (l *List[T]) linkAfter(at, n *node[T]) {
	n.next = at.next
	at.next = n
	if n.next == nil {
		l.tail = n
	}
	l.len++
}

// unlinkAfter detaches and returns the node following at, or nil.
func (l *List[T]) unlinkAfter(at *node[T]) *node[T] {
	if at == nil || at.next == nil {
		return nil
	}
	n := at.next
	at.next = n.next
	if l.tail == n {
		if at == &l.head {
			l.tail = nil
		} else {
			l.tail = at
		}
	}
	l.len--
	n.next = nil
	return n
}

// last returns the node after which an append happens.
func (l *List[T]) last() *node[T] {
	if l.tail == nil {
		return &l.head
	}
	return l.tail
}

// truncate releases every node after at, making at the last node.
func (l *List[T]) truncate(at *node[T]) {
	for n := at.next; n != nil; {
		next := n.next
		release(n)
		l.len--
		n = next
	}
	at.next = nil
	if at == &l.head {
		l.tail = nil
	} else {
		l.tail = at
	}
}

func (l *List[T]) reset() {
	l.head.next = nil
	l.tail = nil
	l.len = 0
}

// release clears a detached node so that neither its value nor its former
// successors stay reachable through stale positions.
func release[T any](n *node[T]) {
	*n = node[T]{}
}
