// Package dfs implements depth-first traversal of a core.Tree in pre-order,
// in-order and post-order.
//
// What:
//
//   - Pre-order (Pre):   visit node, then left subtree, then right subtree.
//   - In-order (In):     left subtree, node, right subtree. For any valid
//     BST this yields values in non-decreasing order.
//   - Post-order (Post): left subtree, right subtree, then node.
//   - Two walkers produce identical sequences:
//   - recursive (default), bounded by the call stack
//   - explicit stack (WithIterative), bounded by heap memory
//   - OnVisit hook with error abort, depth limiting via WithMaxDepth.
//
// Why:
//   - Pre-order reproduces a tree when re-inserted into an empty tree.
//   - In-order is the canonical sortedness check.
//   - Post-order visits children before parents (bottom-up aggregation,
//     safe teardown order).
//
// Key Types & Constants:
//
//   - Order: Pre, In, Post
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds OnVisit, MaxDepth, Iterative
//   - DFSResult: collects Order and the depth of each visited value
//
// Complexity (n = nodes, h = height):
//
//   - Time O(n), auxiliary memory O(h) for either walker.
//
// Errors:
//
//   - ErrTreeNil       tree pointer is nil
//   - ErrUnknownOrder  order is not Pre, In or Post
//   - hook errors      propagated from OnVisit
//
// Functions:
//
//   - DFS(t \*core.Tree[T], order Order, opts ...Option[T]) (\*DFSResult[T], error)
//   - PreOrder(t), InOrder(t), PostOrder(t) - the plain value sequences
//   - IsSorted(vals, cmp) - sortedness law helper
//   - DefaultOptions(), WithOnVisit(), WithMaxDepth(), WithIterative()
//
// Traversals never mutate the tree; any number may run concurrently over a
// tree that is not being modified.
package dfs
