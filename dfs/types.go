// Package dfs defines types and options for depth-first traversal,
// including visit order, hooks, depth limiting and the walker choice.
package dfs

import (
	"errors"
	"fmt"
)

// Order selects where a node is visited relative to its subtrees.
type Order int

const (
	Pre  Order = iota // Pre: node, left, right.
	In                // In: left, node, right.
	Post              // Post: left, right, node.
)

// String returns the lower-case name of o.
func (o Order) String() string {
	switch o {
	case Pre:
		return "pre"
	case In:
		return "in"
	case Post:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to DFS.
	ErrTreeNil = errors.New("dfs: tree is nil")

	// ErrUnknownOrder indicates an Order value other than Pre, In or Post.
	ErrUnknownOrder = errors.New("dfs: unknown traversal order")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(t, order, opts...).
type Option[T any] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions[T any] struct {
	// OnVisit, if non-nil, is invoked when a value is emitted, with its depth
	// below the root. Returning an error aborts traversal with that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// Iterative selects the explicit-stack walker instead of recursion.
	Iterative bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No OnVisit hook
//   - No depth limit (MaxDepth = -1)
//   - Recursive walker (Iterative = false)
func DefaultOptions[T any]() DFSOptions[T] {
	return DFSOptions[T]{
		OnVisit:   nil,
		MaxDepth:  -1,
		Iterative: false,
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited.
func WithMaxDepth[T any](limit int) Option[T] {
	return func(o *DFSOptions[T]) {
		o.MaxDepth = limit
	}
}

// WithIterative returns an Option that selects the explicit-stack walker.
// Use it for deep, degenerate trees where recursion depth is a concern.
func WithIterative[T any]() Option[T] {
	return func(o *DFSOptions[T]) {
		o.Iterative = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[T any] struct {
	// Order records values in the sequence they were visited.
	Order []T

	// Depths[i] is the depth of Order[i] below the root.
	Depths []int
}
