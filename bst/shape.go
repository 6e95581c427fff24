package bst

import "cmp"

// NewFromShape returns a Tree ordered by compare whose nodes copy s exactly.
// The shape is taken as given: it may break the search ordering, in which
// case Insert, Delete and Contains lose their guarantees while traversals,
// MaxDepth, CountFullNodes and IsSymmetric still describe the structure.
// A nil s yields an empty tree. It panics if compare is nil.
func NewFromShape[T any](compare CompareFunc[T], s *Shape[T]) *Tree[T] {
	t := NewFunc(compare)
	t.root = fromShape(s)
	return t
}

// NewOrderedFromShape is NewFromShape with cmp.Compare ordering.
func NewOrderedFromShape[T cmp.Ordered](s *Shape[T]) *Tree[T] {
	return NewFromShape[T](cmp.Compare[T], s)
}

func fromShape[T any](s *Shape[T]) *node[T] {
	if s == nil {
		return nil
	}
	return &node[T]{
		value: s.Value,
		left:  fromShape(s.Left),
		right: fromShape(s.Right),
	}
}

// FromSorted builds a height-balanced tree from ascending values by making
// the middle element of every range its subtree root. values must be
// ascending. With duplicates an equal copy may land in a left subtree,
// which Insert never produces.
func FromSorted[T cmp.Ordered](values []T) *Tree[T] {
	t := New[T]()
	t.root = buildBalanced(values)
	return t
}

func buildBalanced[T any](values []T) *node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := (len(values) - 1) / 2
	return &node[T]{
		value: values[mid],
		left:  buildBalanced(values[:mid]),
		right: buildBalanced(values[mid+1:]),
	}
}

// Shape returns a deep copy of the tree's structure, or nil if it is empty.
func (t *Tree[T]) Shape() *Shape[T] {
	return toShape(t.root)
}

func toShape[T any](n *node[T]) *Shape[T] {
	if n == nil {
		return nil
	}
	return &Shape[T]{
		Value: n.value,
		Left:  toShape(n.left),
		Right: toShape(n.right),
	}
}
