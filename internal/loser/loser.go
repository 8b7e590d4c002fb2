// Package loser implements a tournament tree (also known as a loser tree) for
// merging several sorted sequences into one. The structure follows Bryan
// Boreham's go-loser (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree laid out in a slice. Each internal node
// records the loser of the game between its children and node 0 records the
// overall winner, so producing the next element only replays the games on
// the path from the winner's leaf to the root: O(log k) comparisons for k
// sequences.
//
// The merge is stable: when two sequences offer equal values the one that
// comes first in the sequences slice wins.
package loser

import (
	"iter"
)

// Sequence is a sorted source of values.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// New creates a tree merging sequences according to less. maxVal must not be
// less than any value the sequences produce; exhausted sequences are parked
// on it.
func New[E any](sequences []Sequence[E], maxVal E, less func(E, E) bool) *Tree[E] {
	return &Tree[E]{
		maxVal:    maxVal,
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
}

// Tree merges sorted sequences. Leaves are stored in positions M...2M-1 for M
// sequences, internal nodes in 1..M-1 with the children of N at 2N and 2N+1.
// Node 0 holds the winner of the contest.
type Tree[E any] struct {
	maxVal    E
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // Leaf position of the loser, or of the winner for node 0. -1 marks an exhausted leaf.
	value E                // Current value, only meaningful for leaves.
	next  func() (E, bool) // Only populated for leaves.
}

// All returns an iterator over the merged values.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			t.nodes[m+i].next = next
			t.moveNext(m + i)
		}
		t.nodes[0].index = t.playGame(1)
		for winner := t.nodes[0].index; t.nodes[winner].index != -1; winner = t.nodes[0].index {
			if !yield(t.nodes[winner].value) {
				return
			}
			t.moveNext(winner)
			t.replayGames(winner)
		}
	}
}

// moveNext loads the next value of the leaf at pos.
func (t *Tree[E]) moveNext(pos int) {
	n := &t.nodes[pos]
	if v, ok := n.next(); ok {
		n.value = v
		n.index = 0
		return
	}
	n.value = t.maxVal
	n.index = -1
}

// beats reports whether the leaf at a wins against the leaf at b.
func (t *Tree[E]) beats(a, b int) bool {
	va, vb := t.nodes[a].value, t.nodes[b].value
	switch {
	case t.less(va, vb):
		return true
	case t.less(vb, va):
		return false
	}
	// Equal values: live leaves beat exhausted ones, then lower positions win.
	if ea, eb := t.nodes[a].index == -1, t.nodes[b].index == -1; ea != eb {
		return eb
	}
	return a < b
}

// playGame returns the winning leaf below pos and records the losers.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := left, right
	if t.beats(right, left) {
		winner, loser = right, left
	}
	t.nodes[pos].index = loser
	return winner
}

// replayGames re-runs the games from the leaf at pos, whose value changed,
// up to the root.
func (t *Tree[E]) replayGames(pos int) {
	for n := parent(pos); n != 0; n = parent(n) {
		if t.beats(t.nodes[n].index, pos) {
			// The stored loser wins now; pos becomes the loser here.
			t.nodes[n].index, pos = pos, t.nodes[n].index
		}
	}
	t.nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
