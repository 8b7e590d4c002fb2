package forwardlist

import "fmt"

// CheckInvariants verifies the structural invariants of l: the length
// matches the chain, the tail is the last reachable node and an empty list
// has neither first nor last node.
func CheckInvariants[T any](l *List[T]) error {
	count := 0
	var last *node[T]
	for n := l.head.next; n != nil; n = n.next {
		count++
		last = n
		if count > l.len {
			return fmt.Errorf("chain longer than len %d", l.len)
		}
	}
	if count != l.len {
		return fmt.Errorf("len %d, chain holds %d nodes", l.len, count)
	}
	if l.tail != last {
		return fmt.Errorf("tail does not point at the last node")
	}
	if l.len == 0 && (l.head.next != nil || l.tail != nil) {
		return fmt.Errorf("empty list still links nodes")
	}
	return nil
}
