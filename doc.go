// Package forwardlist implements a generic singly linked list with constant
// time insertion and removal at any known position, together with the
// algorithms that are specific to linked lists: splicing between lists,
// stable in-place merge sort, value and predicate removal, collapsing of
// consecutive duplicates, reversal and resizing.
//
// Positions:
//
// Operations are expressed relative to a Position, which denotes "the point
// after which the operation happens". Every list owns a permanent placeholder
// node that precedes the first element; BeforeBegin resolves to it, so
// inserting or removing at the front is the same operation as inserting or
// removing anywhere else:
//
//	l := forwardlist.Of(2, 3)
//	_, _ = l.InsertAfter(l.BeforeBegin(), 1) // 1 2 3
//	l.RemoveAfter(l.Begin())                 // 1 3
//
// A Position stays valid until the node it refers to is removed from, or
// spliced out of, its list. Passing a position that belongs to another list,
// or one that has been invalidated, is a contract violation whose behaviour
// is undefined; the list does not detect it.
//
// Key features:
//   - Generic over the element type, no reflection and no boxing
//   - O(1) InsertAfter, RemoveAfter, PushFront, PushBack, PopFront
//   - O(1) SpliceList and SpliceElement, O(k) SpliceRange and EraseAfter
//   - Stable bottom-up merge sort in O(n log n) time and O(1) extra space
//   - Stable two-way Merge and k-way MergeAll of sorted lists by relinking
//   - Iterator-based traversal using Go's iter.Seq
//
// PopBack is the one O(n) operation: a singly linked list has to walk to the
// node preceding the tail. Callers that pop from the back frequently should
// use a doubly linked list instead.
//
// Errors:
//
// Reading or popping from an empty list returns ErrEmpty. A list created
// with WithLimit refuses to allocate more nodes than the limit and returns
// ErrNoMemory, leaving the list unchanged. Splices move existing nodes and
// are not subject to the limit.
//
// Lists are not safe for concurrent use. Values stored in a list are never
// inspected beyond the callbacks supplied by the caller; pointer values are
// neither dereferenced nor released.
//
// The zero value of List is an empty, unlimited list ready to use. A List
// must not be copied after first use.
package forwardlist
