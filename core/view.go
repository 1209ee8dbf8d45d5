// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Structural self-check of the node graph.

package core

import "fmt"

// bound is an optional limit on the values allowed in a subtree.
type bound[T any] struct {
	value T
	set   bool
}

// Validate walks every node reachable from the root and checks:
//
//   - ordering: left descendants < node <= right descendants, against every
//     ancestor on the path, not just the parent;
//   - ownership: no node is reachable twice (no sharing, no cycles);
//   - accounting: the reachable node count equals Len().
//
// It returns nil for a healthy tree, or an error wrapping ErrCorruptTree.
//
// Complexity: O(n) time, O(n) space for the seen set.
func (t *Tree[T]) Validate() error {
	seen := make(map[*Node[T]]struct{}, t.size)
	if err := t.validate(t.root, bound[T]{}, bound[T]{}, seen); err != nil {
		return err
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: %d reachable nodes, Len() = %d", ErrCorruptTree, len(seen), t.size)
	}

	return nil
}

// validate checks n against lo (inclusive) and hi (exclusive).
func (t *Tree[T]) validate(n *Node[T], lo, hi bound[T], seen map[*Node[T]]struct{}) error {
	if n == nil {
		return nil
	}
	if _, dup := seen[n]; dup {
		return fmt.Errorf("%w: node %v reachable from two slots", ErrCorruptTree, n.value)
	}
	seen[n] = struct{}{}

	if lo.set && t.cmp(n.value, lo.value) < 0 {
		return fmt.Errorf("%w: %v in right subtree of %v", ErrCorruptTree, n.value, lo.value)
	}
	if hi.set && t.cmp(n.value, hi.value) >= 0 {
		return fmt.Errorf("%w: %v in left subtree of %v", ErrCorruptTree, n.value, hi.value)
	}

	here := bound[T]{value: n.value, set: true}
	if err := t.validate(n.left, lo, here, seen); err != nil {
		return err
	}

	return t.validate(n.right, here, hi, seen)
}
