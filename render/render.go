// Package render draws binary trees as indented ASCII diagrams.
//
// Rendering works on a bst.Shape snapshot and never touches the tree it came
// from. Every child is labelled "L:" or "R:"; when a node has only one child
// the absent side is drawn as "∅" so the two sides cannot be confused.
//
//	50
//	├── L: 30
//	│   ├── L: 20
//	│   └── R: 40
//	└── R: 70
package render

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/lvtree/bst"
)

// Empty is the rendering of a tree with no nodes.
const Empty = "(empty)"

const absent = "∅"

// Of renders a snapshot of t.
func Of[T any](t *bst.Tree[T]) string {
	return Tree(t.Shape())
}

// Tree renders s. A nil shape renders as Empty.
func Tree[T any](s *bst.Shape[T]) string {
	if s == nil {
		return Empty
	}
	root := treeprint.NewWithRoot(fmt.Sprint(s.Value))
	addChildren(root, s)
	return root.String()
}

func addChildren[T any](branch treeprint.Tree, s *bst.Shape[T]) {
	if s.Left == nil && s.Right == nil {
		return
	}
	addSide(branch, "L", s.Left)
	addSide(branch, "R", s.Right)
}

func addSide[T any](branch treeprint.Tree, side string, s *bst.Shape[T]) {
	if s == nil {
		branch.AddNode(side + ": " + absent)
		return
	}
	label := fmt.Sprintf("%s: %v", side, s.Value)
	if s.Left == nil && s.Right == nil {
		branch.AddNode(label)
		return
	}
	addChildren(branch.AddBranch(label), s)
}
