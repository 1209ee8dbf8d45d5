// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Tree.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("bfs: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T any] func(*BFSOptions[T])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[T any] struct {
	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth (the root is depth 0).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions[T any]() BFSOptions[T] {
	return BFSOptions[T]{
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to nodes at depth <= d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *BFSOptions[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: values visited, in visit sequence.
//   - Levels: Levels[d] lists the values at depth d, left to right.
type BFSResult[T any] struct {
	Order  []T
	Levels [][]T
}

// Width returns the size of the widest level, i.e. the peak queue length
// the traversal needed.
func (r *BFSResult[T]) Width() int {
	w := 0
	for _, lvl := range r.Levels {
		if len(lvl) > w {
			w = len(lvl)
		}
	}

	return w
}
