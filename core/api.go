// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a Tree.
// Policy:
//   - No mutation here.
//   - Every exported function documents its complexity.

package core

// Root returns the root node, or nil for an empty tree.
// Traversal engines read the whole structure through Root, Node.Left and
// Node.Right; callers must not retain nodes across a mutation.
//
// Complexity: O(1).
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values stored in the tree.
//
// Complexity: O(1).
func (t *Tree[T]) Len() int {
	return t.size
}

// Compare exposes the tree's ordering so callers can check sequences
// (e.g. in-order output) against the same total order.
func (t *Tree[T]) Compare() CompareFunc[T] {
	return t.cmp
}

// Height returns the number of levels in the tree: 0 for an empty tree,
// 1 for a lone root.
//
// Complexity: O(n) time, O(h) stack.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	lh, rh := height(n.left), height(n.right)
	if lh < rh {
		return rh + 1
	}

	return lh + 1
}

// Min returns the smallest value (the leftmost node) and true, or the zero
// value and false for an empty tree.
//
// Complexity: O(h).
func (t *Tree[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, true
}

// Max returns the largest value (the rightmost node) and true, or the zero
// value and false for an empty tree. With duplicates, the returned value is
// the last one inserted among the equal maxima.
//
// Complexity: O(h).
func (t *Tree[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}
