// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Tree and CompareFunc declarations, sentinel errors and constructors.

package core

import (
	"cmp"
	"errors"
)

// ErrCorruptTree indicates that the node graph reachable from the root no
// longer satisfies the tree invariants. It signals a construction bug, not a
// runtime condition, and is only reported by Validate.
var ErrCorruptTree = errors.New("core: corrupt tree")

// CompareFunc is a three-way comparison defining a total order over T.
// It returns a negative number if a < b, zero if a == b and a positive
// number if a > b.
type CompareFunc[T any] func(a, b T) int

// Node is a single tree entry. A Node is owned by exactly one slot of its
// Tree and is only created by Insert.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of n, or nil. A nil receiver yields nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child of n, or nil. A nil receiver yields nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}

	return n.right
}

// Tree is an unbalanced binary search tree ordered by a CompareFunc.
//
// The zero value is not usable; construct trees with NewTree or NewTreeFunc.
type Tree[T any] struct {
	root *Node[T]       // sole entry point; nil for an empty tree
	cmp  CompareFunc[T] // total order over T
	size int            // number of reachable nodes
}

// NewTree returns an empty tree ordered by cmp.Compare.
func NewTree[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: cmp.Compare[T]}
}

// NewTreeFunc returns an empty tree ordered by fn.
// Panics if fn is nil: a tree without a total order cannot hold its invariants.
func NewTreeFunc[T any](fn CompareFunc[T]) *Tree[T] {
	if fn == nil {
		panic("core: NewTreeFunc(nil)")
	}

	return &Tree[T]{cmp: fn}
}
