// Package bfs provides breadth-first (level-order) traversal over a core.Tree,
// returning the visit order and the values grouped by depth.
//
// What
//
//   - Visits the root first, then every node at depth 1 left to right, then
//     depth 2, and so on.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Levels: Levels[d] holds the values at depth d, left to right
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Why
//
//   - Level-order output pins down tree shape in a single sequence, which
//     makes it the natural fixture format for structural tests.
//   - Width and per-level inspection (e.g. printing a tree row by row).
//
// Determinism
//
//	Children are enqueued left before right, so the sequence depends only on
//	the tree's shape. Repeated calls over an unmodified tree are identical.
//
// Complexity (n = nodes, w = maximum level width)
//
//   - Time:   O(n)
//   - Memory: O(w) for the queue, plus O(n) for the result
//
// Usage
//
//	// The plain sequence:
//	order := bfs.Values(t)
//
//	// With functional options:
//	res, err := bfs.BFS(t,
//	    bfs.WithMaxDepth[int](2),
//	    bfs.WithOnVisit(func(v int, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrTreeNil          if the tree pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// The traversal never mutates the tree; any number of traversals may run
// concurrently over a tree that is not being modified.
package bfs
