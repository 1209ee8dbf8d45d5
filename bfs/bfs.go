// Package bfs provides breadth-first traversal over a core.Tree,
// returning the level-order visit sequence.
//
// BFS seeds a FIFO queue with the root, then repeatedly dequeues a node,
// records it, and enqueues its left then right child when present.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/bstree/core"
)

// queueItem pairs a node with its depth below the root.
type queueItem[T any] struct {
	node  *core.Node[T]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	opts  BFSOptions[T]
	queue []queueItem[T]
	res   *BFSResult[T]
}

// BFS runs a level-order traversal of t, applying any number of functional
// Options. An empty tree yields an empty result.
// Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS[T any](t *core.Tree[T], opts ...Option[T]) (*BFSResult[T], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	n := t.Len()
	w := &walker[T]{
		opts: o,
		res: &BFSResult[T]{
			Order:  make([]T, 0, n),
			Levels: [][]T{},
		},
	}

	// Seed queue with the root (if any)
	if root := t.Root(); root != nil {
		w.enqueue(root, 0)
	}
	// Main loop
	return w.res, w.loop()
}

// Values returns the level-order sequence of t. A nil or empty tree yields an
// empty slice.
func Values[T any](t *core.Tree[T]) []T {
	res, err := BFS(t)
	if err != nil {
		return []T{}
	}

	return res.Order
}

// enqueue appends node at depth d to the queue.
func (w *walker[T]) enqueue(node *core.Node[T], d int) {
	w.queue = append(w.queue, queueItem[T]{node: node, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue[0] = queueItem[T]{} // release the node reference
	w.queue = w.queue[1:]
	return item
}

// visit records the value in Order and Levels and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	v := item.node.Value()
	w.res.Order = append(w.res.Order, v)
	if item.depth == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[item.depth] = append(w.res.Levels[item.depth], v)
	if err := w.opts.OnVisit(v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v (depth %d): %w", v, item.depth, err)
	}
	return nil
}

// enqueueChildren enqueues the left then right child, honoring MaxDepth.
func (w *walker[T]) enqueueChildren(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	if l := item.node.Left(); l != nil {
		w.enqueue(l, nextDepth)
	}
	if r := item.node.Right(); r != nil {
		w.enqueue(r, nextDepth)
	}
}
