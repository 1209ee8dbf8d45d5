// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// sequence_primitives.go - pure insertion-order generators shared by constructors.

package builder

// AscendingSeq returns start, start+1, ..., start+n-1.
// Returns nil for n <= 0.
func AscendingSeq(start, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// DescendingSeq returns start+n-1, ..., start+1, start.
// Returns nil for n <= 0.
func DescendingSeq(start, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + n - 1 - i
	}

	return out
}

// BalancedSeq returns start..start+n-1 ordered so that inserting them into an
// empty tree yields the minimal height ceil(log2(n+1)): the midpoint of each
// range comes before both halves. Ranges are expanded breadth-first, so the
// result is also the level-order sequence of the tree it builds.
// Returns nil for n <= 0.
func BalancedSeq(start, n int) []int {
	if n <= 0 {
		return nil
	}
	type span struct{ lo, hi int } // inclusive bounds
	out := make([]int, 0, n)
	queue := []span{{start, start + n - 1}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.lo > s.hi {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		out = append(out, mid)
		queue = append(queue, span{s.lo, mid - 1}, span{mid + 1, s.hi})
	}

	return out
}
