// Package dfs provides helper functions used alongside depth-first traversals.
package dfs

import (
	"slices"

	"github.com/katalvlaran/bstree/core"
)

// IsSorted reports whether vals is non-decreasing under fn. Applied to the
// in-order sequence of a tree, it is the sortedness check for the BST
// ordering invariant.
// Time Complexity: O(n).
func IsSorted[T any](vals []T, fn core.CompareFunc[T]) bool {
	return slices.IsSortedFunc(vals, fn)
}
