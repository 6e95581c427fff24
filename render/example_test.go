package render_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/bst"
	"github.com/katalvlaran/lvtree/render"
)

// ExampleOf draws a small search tree.
func ExampleOf() {
	t := bst.From(50, 30, 70, 20, 40)
	fmt.Print(render.Of(t))
	// Output:
	// 50
	// ├── L: 30
	// │   ├── L: 20
	// │   └── R: 40
	// └── R: 70
}
