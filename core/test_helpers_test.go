// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for bstree/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Tree.
//   - Keep structural walkers local so core tests do not depend on bfs/dfs.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstree/core"
)

// scenarioValues is the insertion order of the reference tree:
//
//	        9
//	    4       20
//	  1   6   15  170
var scenarioValues = []int{9, 4, 6, 20, 170, 15, 1}

// Values absent from the reference tree.
const (
	Missing171 = 171
	Missing0   = 0
)

// buildTree inserts vals into a fresh int tree in order.
func buildTree(vals ...int) *core.Tree[int] {
	t := core.NewTree[int]()
	for _, v := range vals {
		t.Insert(v)
	}

	return t
}

// preorder collects values node, left, right.
func preorder[T any](n *core.Node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = append(out, n.Value())
	out = preorder(n.Left(), out)

	return preorder(n.Right(), out)
}

// inorder collects values left, node, right.
func inorder[T any](n *core.Node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = inorder(n.Left(), out)
	out = append(out, n.Value())

	return inorder(n.Right(), out)
}

// requireShape asserts the pre-order and in-order sequences of t, which
// together pin down the exact shape, and that t passes Validate.
func requireShape(t *testing.T, tr *core.Tree[int], wantPre, wantIn []int) {
	t.Helper()
	require.Equal(t, wantPre, preorder(tr.Root(), []int{}), "pre-order")
	require.Equal(t, wantIn, inorder(tr.Root(), []int{}), "in-order")
	require.NoError(t, tr.Validate())
	require.Equal(t, len(wantIn), tr.Len())
}
