package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bstree/core"
	"github.com/katalvlaran/bstree/dfs"
)

func randomTree(n int) *core.Tree[int] {
	t := core.NewTree[int]()
	for _, v := range rand.New(rand.NewSource(1)).Perm(n) {
		t.Insert(v)
	}

	return t
}

// BenchmarkDFS_Recursive measures the recursive in-order walker.
func BenchmarkDFS_Recursive(b *testing.B) {
	t := randomTree(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(t, dfs.In)
	}
}

// BenchmarkDFS_Iterative measures the explicit-stack in-order walker.
func BenchmarkDFS_Iterative(b *testing.B) {
	t := randomTree(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(t, dfs.In, dfs.WithIterative[int]())
	}
}
