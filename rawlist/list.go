package rawlist

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"github.com/davidvella/forwardlist"
)

var (
	// ErrInvalidWidth is returned when a list is created with a width below one.
	ErrInvalidWidth = errors.New("rawlist: invalid element width")
	// ErrWidthMismatch is returned when a value, or another list, does not
	// have the width of the list.
	ErrWidthMismatch = errors.New("rawlist: element width mismatch")
)

// Position identifies the point after which list operations take place.
// Value and Ref return the element storage itself; writing through it
// updates the element in place. Use List.Set to replace a whole element.
type Position = forwardlist.Position[[]byte]

// List is a singly linked list of fixed-width byte elements.
type List struct {
	width int
	list  *forwardlist.List[[]byte]
}

// New creates an empty list of elements width bytes wide.
func New(width int, opts ...forwardlist.Option) (*List, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	l, err := forwardlist.New[[]byte](opts...)
	if err != nil {
		return nil, err
	}
	return &List{width: width, list: l}, nil
}

// Width returns the element width of the list.
func (l *List) Width() int { return l.width }

// Len returns the number of elements in the list.
func (l *List) Len() int { return l.list.Len() }

// Empty reports whether the list holds no elements.
func (l *List) Empty() bool { return l.list.Empty() }

// BeforeBegin returns the position preceding the first element.
func (l *List) BeforeBegin() Position { return l.list.BeforeBegin() }

// Begin returns the position of the first element.
func (l *List) Begin() Position { return l.list.Begin() }

// Last returns the position of the last element, or BeforeBegin if empty.
func (l *List) Last() Position { return l.list.Last() }

// End returns the position following the last element.
func (l *List) End() Position { return l.list.End() }

// All returns an iterator over the element storage from front to back.
func (l *List) All() iter.Seq[[]byte] { return l.list.All() }

// InsertAfter inserts a copy of v after pos.
func (l *List) InsertAfter(pos Position, v []byte) (Position, error) {
	if err := l.check(v); err != nil {
		return pos, err
	}
	return l.list.InsertAfter(pos, bytes.Clone(v))
}

// Set copies v over the element at pos.
func (l *List) Set(pos Position, v []byte) error {
	if err := l.check(v); err != nil {
		return err
	}
	copy(*pos.Ref(), v)
	return nil
}

// RemoveAfter removes the element following pos and returns its storage.
func (l *List) RemoveAfter(pos Position) ([]byte, bool) {
	return l.list.RemoveAfter(pos)
}

// PushFront inserts a copy of v at the front.
func (l *List) PushFront(v []byte) error {
	_, err := l.InsertAfter(l.BeforeBegin(), v)
	return err
}

// PushBack inserts a copy of v at the back.
func (l *List) PushBack(v []byte) error {
	_, err := l.InsertAfter(l.Last(), v)
	return err
}

// PopFront removes and returns the first element.
func (l *List) PopFront() ([]byte, error) { return l.list.PopFront() }

// PopBack removes and returns the last element in O(n).
func (l *List) PopBack() ([]byte, error) { return l.list.PopBack() }

// Front returns the storage of the first element.
func (l *List) Front() ([]byte, error) { return l.list.Front() }

// Back returns the storage of the last element.
func (l *List) Back() ([]byte, error) { return l.list.Back() }

// EraseAfter removes the elements strictly between before and last.
func (l *List) EraseAfter(before, last Position) Position {
	return l.list.EraseAfter(before, last)
}

// Clear removes every element.
func (l *List) Clear() { l.list.Clear() }

// Resize changes the length of the list to n, appending zero-filled
// elements when it grows.
func (l *List) Resize(n int) error {
	if n <= l.list.Len() {
		return l.list.Resize(n)
	}
	fill := make([][]byte, n-l.list.Len())
	for i := range fill {
		fill[i] = make([]byte, l.width)
	}
	_, err := l.list.InsertAfterValues(l.list.Last(), fill...)
	return err
}

// SpliceList moves every element of src after pos.
func (l *List) SpliceList(pos Position, src *List) error {
	if err := l.compatible(src); err != nil {
		return err
	}
	l.list.SpliceList(pos, src.list)
	return nil
}

// SpliceElement moves the element following srcBefore in src after pos.
func (l *List) SpliceElement(pos Position, src *List, srcBefore Position) error {
	if err := l.compatible(src); err != nil {
		return err
	}
	l.list.SpliceElement(pos, src.list, srcBefore)
	return nil
}

// SpliceRange moves the elements strictly between srcBefore and srcLast in
// src after pos.
func (l *List) SpliceRange(pos Position, src *List, srcBefore, srcLast Position) error {
	if err := l.compatible(src); err != nil {
		return err
	}
	l.list.SpliceRange(pos, src.list, srcBefore, srcLast)
	return nil
}

// Swap exchanges the elements of l and other.
func (l *List) Swap(other *List) error {
	if err := l.compatible(other); err != nil {
		return err
	}
	l.list.Swap(other.list)
	return nil
}

// Merge merges the sorted list src into the sorted list l; src is left empty.
func (l *List) Merge(src *List, less func(a, b []byte) bool) error {
	if err := l.compatible(src); err != nil {
		return err
	}
	l.list.Merge(src.list, less)
	return nil
}

// Sort sorts the list stably according to less.
func (l *List) Sort(less func(a, b []byte) bool) { l.list.Sort(less) }

// Remove removes every element equal to v according to equal, or byte-wise
// when equal is nil, and returns the number removed.
func (l *List) Remove(v []byte, equal func(a, b []byte) bool) int {
	if equal == nil {
		equal = bytes.Equal
	}
	return l.list.Remove(v, equal)
}

// RemoveIf removes every element for which pred holds.
func (l *List) RemoveIf(pred func(v []byte) bool) int { return l.list.RemoveIf(pred) }

// Unique collapses runs of consecutive equal elements, compared with equal
// or byte-wise when equal is nil, and returns the number removed.
func (l *List) Unique(equal func(a, b []byte) bool) int {
	if equal == nil {
		equal = bytes.Equal
	}
	return l.list.Unique(equal)
}

// Reverse reverses the order of the elements.
func (l *List) Reverse() { l.list.Reverse() }

func (l *List) check(v []byte) error {
	if len(v) != l.width {
		return fmt.Errorf("%w: value of %d bytes in list of width %d", ErrWidthMismatch, len(v), l.width)
	}
	return nil
}

func (l *List) compatible(other *List) error {
	if other.width != l.width {
		return fmt.Errorf("%w: widths %d and %d", ErrWidthMismatch, l.width, other.width)
	}
	return nil
}
