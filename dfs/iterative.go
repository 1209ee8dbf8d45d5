// SPDX-License-Identifier: MIT
//
// File: iterative.go
// Role: Explicit-stack depth-first walker.
// Determinism:
//   - Emits exactly the sequence the recursive walker emits for the same order.

package dfs

import (
	"github.com/Nigel2392/go-datastructures/stack"

	"github.com/katalvlaran/bstree/core"
)

// frame is one pending unit of work: expand a node into its parts, or emit it.
type frame[T any] struct {
	node  *core.Node[T]
	depth int
	emit  bool
}

// walkStack walks the tree rooted at root without recursion.
//
// Popping an unexpanded frame pushes the node's parts in reverse of the
// order they must be processed, the node itself as an emit frame:
//
//	Pre:  right, left, self
//	In:   right, self, left
//	Post: self, right, left
//
// Stack height stays within O(h): each level contributes at most three frames.
func (w *dfsWalker[T]) walkStack(root *core.Node[T]) error {
	if root == nil || w.exceeds(0) {
		return nil
	}

	var s stack.Stack[frame[T]]
	s.Push(frame[T]{node: root})

	for f, ok := s.PopOK(); ok; f, ok = s.PopOK() {
		if f.emit {
			if err := w.visit(f.node, f.depth); err != nil {
				return err
			}
			continue
		}

		self := frame[T]{node: f.node, depth: f.depth, emit: true}
		switch w.order {
		case Pre:
			w.pushChild(&s, f.node.Right(), f.depth+1)
			w.pushChild(&s, f.node.Left(), f.depth+1)
			s.Push(self)
		case In:
			w.pushChild(&s, f.node.Right(), f.depth+1)
			s.Push(self)
			w.pushChild(&s, f.node.Left(), f.depth+1)
		case Post:
			s.Push(self)
			w.pushChild(&s, f.node.Right(), f.depth+1)
			w.pushChild(&s, f.node.Left(), f.depth+1)
		}
	}

	return nil
}

// pushChild pushes an unexpanded frame for n unless it is empty or too deep.
func (w *dfsWalker[T]) pushChild(s *stack.Stack[frame[T]], n *core.Node[T], depth int) {
	if n == nil || w.exceeds(depth) {
		return
	}
	s.Push(frame[T]{node: n, depth: depth})
}
