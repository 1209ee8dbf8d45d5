// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// impl_ranges.go - Ascending, Descending, Balanced and Values constructors.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewValues); n == 0 inserts nothing.
//   - Values start at cfg.start.
//
// Complexity:
//   - Ascending/Descending: O(n²) inserts (degenerate spine).
//   - Balanced: O(n log n).

package builder

import "github.com/katalvlaran/bstree/core"

const (
	methodAscending  = "Ascending"
	methodDescending = "Descending"
	methodBalanced   = "Balanced"
)

// Ascending returns a Constructor inserting n increasing values; the tree
// degenerates to a chain of right children.
func Ascending(n int) Constructor {
	return ranged(methodAscending, n, AscendingSeq)
}

// Descending returns a Constructor inserting n decreasing values; the tree
// degenerates to a chain of left children.
func Descending(n int) Constructor {
	return ranged(methodDescending, n, DescendingSeq)
}

// Balanced returns a Constructor inserting n consecutive values in
// midpoint-first order, producing a tree of minimal height.
func Balanced(n int) Constructor {
	return ranged(methodBalanced, n, BalancedSeq)
}

func ranged(method string, n int, seq func(start, n int) []int) Constructor {
	return func(t *core.Tree[int], cfg builderConfig) error {
		if n < 0 {
			return builderErrorf(method, ErrTooFewValues, "n=%d < 0", n)
		}
		insertAll(t, seq(cfg.start, n))

		return nil
	}
}

// Values returns a Constructor inserting vs exactly as given.
func Values(vs ...int) Constructor {
	// copy so later changes to the caller's slice do not leak into the tree
	vals := append([]int(nil), vs...)
	return func(t *core.Tree[int], _ builderConfig) error {
		insertAll(t, vals)

		return nil
	}
}
