// Package bstree is an in-memory binary search tree with removal and the
// four classic traversals.
//
// What is in the box?
//
//	• core:    Tree[T] with Insert, Lookup, Remove, Min/Max, Clone, Validate
//	• bfs:     level-order traversal with per-level grouping and hooks
//	• dfs:     pre/in/post-order traversal, recursive or explicit-stack
//	• builder: deterministic and seeded-random tree fixtures
//	• render:  branch diagrams for terminals and test failures
//
// The command in cmd/bstree builds a tree from flags and prints its
// traversals, lookups or diagram.
//
// Quick ASCII example, inserting 9, 4, 6, 20, 170, 15, 1:
//
//	        9
//	    4       20
//	  1   6   15  170
//
//	level: 9 4 20 1 6 15 170
//	pre:   9 4 1 6 20 15 170
//	in:    1 4 6 9 15 20 170
//	post:  1 6 4 15 170 20 9
//
// Trees are not safe for concurrent mutation. Share a Clone with readers
// instead.
//
//	go get github.com/katalvlaran/bstree
package bstree
