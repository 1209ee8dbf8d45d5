// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshot copies of a tree.
// Concurrency:
//   - Clone reads the source only; the copy shares no nodes with it, so the
//     source may be mutated again while readers walk the copy.

package core

// Clone returns a deep copy of the tree with the same shape, values and
// comparator.
//
// Complexity: O(n) time, O(h) stack.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root: cloneNode(t.root),
		cmp:  t.cmp,
		size: t.size,
	}
}

func cloneNode[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	return &Node[T]{
		value: n.value,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}
