package forwardlist

import "errors"

var (
	// ErrNoMemory is returned when a list cannot allocate the nodes an
	// operation needs because its node limit has been reached.
	ErrNoMemory = errors.New("forwardlist: out of memory")
	// ErrEmpty is returned when an element is read or popped from an empty list.
	ErrEmpty = errors.New("forwardlist: list is empty")
	// ErrNegativeSize is returned for a negative length or limit.
	ErrNegativeSize = errors.New("forwardlist: negative size")
)
