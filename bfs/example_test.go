package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/bstree/bfs"
	"github.com/katalvlaran/bstree/core"
)

// ExampleValues prints the level-order sequence of the reference tree:
//
//	        9
//	    4       20
//	  1   6   15  170
func ExampleValues() {
	t := core.NewTree[int]()
	for _, v := range []int{9, 4, 6, 20, 170, 15, 1} {
		t.Insert(v)
	}
	fmt.Println(bfs.Values(t))
	// Output:
	// [9 4 20 1 6 15 170]
}

// ExampleBFS prints the tree row by row.
func ExampleBFS() {
	t := core.NewTree[string]()
	for _, v := range []string{"m", "f", "t", "a", "h", "z"} {
		t.Insert(v)
	}
	res, err := bfs.BFS(t)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for depth, row := range res.Levels {
		fmt.Println(depth, row)
	}
	// Output:
	// 0 [m]
	// 1 [f t]
	// 2 [a h z]
}
