// Package core provides an ordered, unbalanced binary search tree with a
// minimal, composable API surface.
//
// The Tree[T] keeps a single-owner pointer graph of Node[T] values:
//
//   - Every node lives in exactly one slot: the tree's root slot or a
//     parent's left/right slot. No parent pointers are stored.
//   - Values in a node's left subtree are strictly less than the node's value;
//     values in its right subtree are greater than or equal to it.
//     Duplicates therefore always route right.
//   - Ordering is supplied by the caller as a three-way CompareFunc[T];
//     NewTree wires cmp.Compare for any cmp.Ordered type.
//
// Why use core.Tree?
//
//   - Generic: any value type with a total order, resolved at compile time.
//   - Predictable: no rotations, so shape depends only on insertion order.
//   - Traversal-friendly: Root, Node.Left and Node.Right expose structure
//     read-only, which is all the bfs and dfs packages need.
//   - Snapshot support: Clone produces an independent deep copy for readers.
//
// Core Methods:
//
//	// Construction
//	NewTree[T cmp.Ordered]() *Tree[T]               // O(1)
//	NewTreeFunc[T any](fn CompareFunc[T]) *Tree[T]  // O(1), panics on nil fn
//
//	// Mutation
//	Insert(v T)                    // O(h)
//	Remove(v T) bool               // O(h), three-case structural surgery
//	Clear()                        // O(1)
//
//	// Query
//	Lookup(v T) (*Node[T], bool)   // O(h)
//	Contains(v T) bool             // O(h)
//	Min() (T, bool), Max() (T, bool) // O(h)
//	Len() int                      // O(1)
//	Height() int                   // O(n)
//	Root() *Node[T]                // O(1)
//
//	// Maintenance
//	Clone() *Tree[T]               // O(n)
//	Validate() error               // O(n)
//
// where h is the tree height; h degenerates to n for sorted insertion order.
//
// Concurrency:
//
//	Tree performs no locking. At most one goroutine may mutate a tree, and no
//	reader may run concurrently with a mutation. Readers that need to keep
//	working while the tree changes should traverse a Clone.
//
// Errors:
//
//	ErrCorruptTree – Validate found a broken ordering invariant, a node
//	                 reachable from two slots, or a size mismatch.
//
// Lookup and Remove report absence through their boolean results; a missing
// value is never an error.
package core
