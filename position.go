package forwardlist

// Position identifies the point after which list operations take place.
// It is either the before-first position of a list, the position of one of
// its elements, or the end position, which follows the last element.
//
// The zero Position is the end position. Positions are comparable with ==.
type Position[T any] struct {
	n      *node[T]
	before bool // n is the list's placeholder
}

// IsEnd reports whether p is the end position.
func (p Position[T]) IsEnd() bool {
	return p.n == nil
}

// IsBeforeBegin reports whether p is the before-first position of a list.
func (p Position[T]) IsBeforeBegin() bool {
	return p.before
}

// Next returns the position following p. The position following the last
// element, and following the end position, is the end position.
func (p Position[T]) Next() Position[T] {
	if p.n == nil {
		return p
	}
	return Position[T]{n: p.n.next}
}

// Advance moves n steps forward, stopping at the end position.
func (p Position[T]) Advance(n int) Position[T] {
	for ; n > 0 && p.n != nil; n-- {
		p = p.Next()
	}
	return p
}

// Value returns the element at p.
func (p Position[T]) Value() T {
	return *p.Ref()
}

// Set replaces the element at p.
func (p Position[T]) Set(v T) {
	*p.Ref() = v
}

// Ref returns a pointer to the element storage at p. The pointer stays valid
// for as long as the node is part of a list.
//
// Ref panics for the before-first and end positions, which hold no element.
func (p Position[T]) Ref() *T {
	switch {
	case p.n == nil:
		panic("forwardlist: element access at end position")
	case p.before:
		panic("forwardlist: element access at before-first position")
	}
	return &p.n.value
}
