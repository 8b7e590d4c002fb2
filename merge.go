package forwardlist

import (
	"iter"

	"github.com/davidvella/forwardlist/internal/loser"
)

// chain is a detached run of nodes fed to the loser tree.
type chain[T any] struct {
	first *node[T]
}

func (c chain[T]) All() iter.Seq[*node[T]] {
	return func(yield func(*node[T]) bool) {
		for n := c.first; n != nil; {
			// Read the successor first, the consumer relinks n.
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// MergeAll merges l and the sorted lists srcs into l, which must be sorted
// as well, by relinking nodes. Every list in srcs is left empty. The merge is
// stable: equal elements keep their relative order and elements of earlier
// lists, l first, precede equal elements of later ones. Lists appearing more
// than once, and l itself among srcs, are merged once.
func (l *List[T]) MergeAll(less func(a, b T) bool, srcs ...*List[T]) {
	if less == nil {
		return
	}

	lists := []*List[T]{l}
	seen := map[*List[T]]bool{l: true}
	for _, src := range srcs {
		if src == nil || seen[src] || src.len == 0 {
			continue
		}
		seen[src] = true
		lists = append(lists, src)
	}
	if len(lists) == 1 {
		return
	}

	sequences := make([]loser.Sequence[*node[T]], 0, len(lists))
	for _, src := range lists {
		sequences = append(sequences, chain[T]{first: src.head.next})
		src.reset()
	}

	// nil is the sentinel of exhausted chains and sorts after every node.
	tree := loser.New[*node[T]](sequences, nil, func(a, b *node[T]) bool {
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return less(a.value, b.value)
	})

	at := &l.head
	for n := range tree.All() {
		n.next = nil
		l.linkAfter(at, n)
		at = n
	}
}
