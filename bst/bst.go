package bst

// Insert adds value as a new leaf. Duplicates are kept and routed right.
func (t *Tree[T]) Insert(value T) {
	compare := t.cmp()
	leaf := &node[T]{value: value}
	if t.root == nil {
		t.root = leaf
		return
	}

	cur := t.root
	for {
		if compare(value, cur.value) < 0 {
			if cur.left == nil {
				cur.left = leaf
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = leaf
				return
			}
			cur = cur.right
		}
	}
}

// Contains reports whether a value equal to value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	compare := t.cmp()
	for cur := t.root; cur != nil; {
		c := compare(value, cur.value)
		switch {
		case c == 0:
			return true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}

// Delete removes one node holding value. Missing values are a no-op.
func (t *Tree[T]) Delete(value T) {
	t.root = deleteFrom(t.cmp(), t.root, value)
}

// deleteFrom removes value from the subtree rooted at n and returns the
// subtree's new root, which the caller stores back into its child slot.
func deleteFrom[T any](compare CompareFunc[T], n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	c := compare(value, n.value)
	switch {
	case c < 0:
		n.left = deleteFrom(compare, n.left, value)
		return n
	case c > 0:
		n.right = deleteFrom(compare, n.right, value)
		return n
	}

	// found: at most one child splices straight in
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	// two children: take the successor's value, then delete it by value
	succ := minNode(n.right)
	n.value = succ.value
	n.right = deleteFrom(compare, n.right, succ.value)
	return n
}

// Min returns the smallest value, or false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).value, true
}

// Max returns the largest value, or false if the tree is empty.
// With duplicates this is the rightmost copy.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// Clear releases every node.
func (t *Tree[T]) Clear() { t.root = nil }

// minNode follows left links down from n. n must be non-nil.
func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}
