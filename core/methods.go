// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Insert, Lookup and Remove.
// Determinism:
//   - Shape depends only on the insertion/removal sequence; no rebalancing.
//   - Equal values route right on Insert; Remove takes the first match on the descent.

package core

// Insert adds v to the tree. An empty tree takes v as its root; otherwise the
// descent goes left while v < node and right otherwise, and a new node is
// attached at the first empty slot.
//
// Complexity: O(h), where h degenerates to n for sorted input.
func (t *Tree[T]) Insert(v T) {
	// 1) Walk slots, not nodes: the slot we stop on is where the node goes.
	slot := &t.root
	for *slot != nil {
		if t.cmp(v, (*slot).value) < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}

	// 2) Attach and account.
	*slot = &Node[T]{value: v}
	t.size++
}

// Lookup returns the first node whose value compares equal to v, following
// the same descent rule as Insert. It returns (nil, false) when the descent
// reaches an empty slot.
//
// Complexity: O(h).
func (t *Tree[T]) Lookup(v T) (*Node[T], bool) {
	n := t.root
	for n != nil {
		switch c := t.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, true
		}
	}

	return nil, false
}

// Contains reports whether a value equal to v is stored in the tree.
//
// Complexity: O(h).
func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.Lookup(v)
	return ok
}

// Remove deletes the first node equal to v met on the descent and reports
// whether one was found. The tree is unchanged when v is absent.
//
// The replacement for the matched node is chosen by its right child:
//
//   - no right child: the left child (possibly nil) takes the slot;
//   - right child without a left child: the right child is promoted and
//     adopts the matched node's left subtree;
//   - otherwise: the in-order successor (leftmost node of the right subtree)
//     is detached, its right subtree filling the gap under its parent, and it
//     adopts both subtrees of the matched node.
//
// The slot holding the matched node is tracked directly, so the parent's
// left/right choice never depends on comparing equal values.
//
// Complexity: O(h).
func (t *Tree[T]) Remove(v T) bool {
	// 1) Locate the slot holding the first match.
	slot := t.find(v)
	if slot == nil {
		return false
	}
	target := *slot

	// 2) Pick the replacement.
	var repl *Node[T]
	switch {
	case target.right == nil:
		repl = target.left

	case target.right.left == nil:
		repl = target.right
		repl.left = target.left

	default:
		parent, succ := target.right, target.right.left
		for succ.left != nil {
			parent, succ = succ, succ.left
		}
		parent.left = succ.right
		succ.left, succ.right = target.left, target.right
		repl = succ
	}

	// 3) Install it (root slot included) and drop the removed node's links.
	*slot = repl
	target.left, target.right = nil, nil
	t.size--

	return true
}

// find returns the slot that holds the first node equal to v, or nil.
func (t *Tree[T]) find(v T) **Node[T] {
	slot := &t.root
	for *slot != nil {
		switch c := t.cmp(v, (*slot).value); {
		case c < 0:
			slot = &(*slot).left
		case c > 0:
			slot = &(*slot).right
		default:
			return slot
		}
	}

	return nil
}

// Clear drops every node. The comparator is kept.
//
// Complexity: O(1).
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}
