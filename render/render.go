// Package render draws a core.Tree as an indented branch diagram.
//
//	9
//	├── L 4
//	│   ├── L 1
//	│   └── R 6
//	└── R 20
//	    ├── L 15
//	    └── R 170
//
// Each child is tagged L or R so a lone child's side stays visible.
package render

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/bstree/core"
)

// Empty is the rendering of a tree with no nodes.
const Empty = "(empty)\n"

// Render returns the diagram of t. A nil or empty tree renders as Empty.
func Render[T any](t *core.Tree[T]) string {
	if t == nil || t.Root() == nil {
		return Empty
	}
	root := t.Root()
	out := treeprint.NewWithRoot(fmt.Sprintf("%v", root.Value()))
	addChildren(out, root)

	return out.String()
}

// addChildren attaches n's children to branch, left first.
func addChildren[T any](branch treeprint.Tree, n *core.Node[T]) {
	addChild(branch, "L", n.Left())
	addChild(branch, "R", n.Right())
}

func addChild[T any](branch treeprint.Tree, side string, n *core.Node[T]) {
	if n == nil {
		return
	}
	label := fmt.Sprintf("%s %v", side, n.Value())
	if n.Left() == nil && n.Right() == nil {
		branch.AddNode(label)
		return
	}
	addChildren(branch.AddBranch(label), n)
}
