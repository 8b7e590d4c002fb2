// Package rawlist provides a type-erased singly linked list whose elements
// are fixed-width byte strings. It is built on forwardlist.List and is meant
// for callers that only know the element layout at run time, such as values
// decoded from a wire format or a table schema.
//
// Every list has a width fixed at construction. Inserted values must be
// exactly that wide and are copied into storage owned by the list. Splices,
// swaps and merges between lists of different widths fail with
// ErrWidthMismatch and leave both lists untouched.
//
// Basic usage:
//
//	l, err := rawlist.New(8)
//	if err != nil {
//	    return err
//	}
//	for _, v := range []uint64{3, 1, 2} {
//	    if err := l.PushBack(rawlist.EncodeUint64(v)); err != nil {
//	        return err
//	    }
//	}
//	l.Sort(func(a, b []byte) bool {
//	    return rawlist.DecodeUint64(a) < rawlist.DecodeUint64(b)
//	})
//
// Elements grown by Resize are zero-filled.
package rawlist
