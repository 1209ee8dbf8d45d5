// Package dfs implements depth-first traversal of a core.Tree.
//
// Options:
//
//   - WithOnVisit(fn)       hook on each emitted value; error aborts traversal.
//   - WithMaxDepth(limit)   stops descending beyond the given depth (>=0).
//   - WithIterative()       explicit-stack walker instead of recursion.
//
// Errors:
//
//   - ErrTreeNil         if t is nil.
//   - ErrUnknownOrder    if order is not Pre, In or Post.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/bstree/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any] struct {
	order Order         // where the node sits relative to its subtrees
	opts  DFSOptions[T] // traversal options
	res   *DFSResult[T] // result collector
}

// DFS performs a depth-first traversal of t in the given order.
// An empty tree yields an empty result. On a hook error the partial Order
// is discarded.
func DFS[T any](t *core.Tree[T], order Order, opts ...Option[T]) (*DFSResult[T], error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrTreeNil
	}
	if order < Pre || order > Post {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	// 2. Apply options
	dopts := DefaultOptions[T]()
	var fn Option[T]
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := t.Len()
	res := &DFSResult[T]{
		Order:  make([]T, 0, n),
		Depths: make([]int, 0, n),
	}
	walker := &dfsWalker[T]{order: order, opts: dopts, res: res}

	// 4. Traverse
	var err error
	if dopts.Iterative {
		err = walker.walkStack(t.Root())
	} else {
		err = walker.traverse(t.Root(), 0)
	}
	if err != nil {
		res.Order, res.Depths = nil, nil

		return res, err
	}

	return res, nil
}

// PreOrder returns the values of t in pre-order. A nil tree yields an empty slice.
func PreOrder[T any](t *core.Tree[T]) []T {
	return values(t, Pre)
}

// InOrder returns the values of t in in-order, which is non-decreasing for
// any valid tree. A nil tree yields an empty slice.
func InOrder[T any](t *core.Tree[T]) []T {
	return values(t, In)
}

// PostOrder returns the values of t in post-order. A nil tree yields an empty slice.
func PostOrder[T any](t *core.Tree[T]) []T {
	return values(t, Post)
}

func values[T any](t *core.Tree[T], order Order) []T {
	res, err := DFS(t, order)
	if err != nil {
		return []T{}
	}

	return res.Order
}

// traverse walks the subtree rooted at n, found at the given depth.
func (w *dfsWalker[T]) traverse(n *core.Node[T], depth int) error {
	// 1. Empty slot or depth limit exceeded
	if n == nil || w.exceeds(depth) {
		return nil
	}

	// 2. Pre-order visit
	if w.order == Pre {
		if err := w.visit(n, depth); err != nil {
			return err
		}
	}

	// 3. Left subtree
	if err := w.traverse(n.Left(), depth+1); err != nil {
		return err
	}

	// 4. In-order visit
	if w.order == In {
		if err := w.visit(n, depth); err != nil {
			return err
		}
	}

	// 5. Right subtree
	if err := w.traverse(n.Right(), depth+1); err != nil {
		return err
	}

	// 6. Post-order visit
	if w.order == Post {
		return w.visit(n, depth)
	}

	return nil
}

// exceeds reports whether depth lies beyond MaxDepth.
func (w *dfsWalker[T]) exceeds(depth int) bool {
	return w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth
}

// visit records n and runs the OnVisit hook.
func (w *dfsWalker[T]) visit(n *core.Node[T], depth int) error {
	v := n.Value()
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v (%s-order): %w", v, w.order, err)
		}
	}
	w.res.Order = append(w.res.Order, v)
	w.res.Depths = append(w.res.Depths, depth)

	return nil
}
