package bst

// MaxDepth returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a lone root.
func (t *Tree[T]) MaxDepth() int {
	return depth(t.root)
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// CountFullNodes returns how many nodes have both a left and a right child.
func (t *Tree[T]) CountFullNodes() int {
	return countFull(t.root)
}

func countFull[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	count := countFull(n.left) + countFull(n.right)
	if n.left != nil && n.right != nil {
		count++
	}
	return count
}

// FullNodes returns the values of the nodes counted by CountFullNodes,
// in pre-order.
func (t *Tree[T]) FullNodes() []T {
	out := make([]T, 0)
	var collect func(n *node[T])
	collect = func(n *node[T]) {
		if n == nil {
			return
		}
		if n.left != nil && n.right != nil {
			out = append(out, n.value)
		}
		collect(n.left)
		collect(n.right)
	}
	collect(t.root)
	return out
}

// IsSymmetric reports whether the root's left and right subtrees mirror each
// other in both shape and values. An empty tree is symmetric. Values are
// compared with the tree's comparator; BST ordering plays no part.
func (t *Tree[T]) IsSymmetric() bool {
	if t.root == nil {
		return true
	}
	return t.mirrors(t.root.left, t.root.right)
}

func (t *Tree[T]) mirrors(a, b *node[T]) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	case t.cmp()(a.value, b.value) != 0:
		return false
	}
	return t.mirrors(a.left, b.right) && t.mirrors(a.right, b.left)
}
