package bst

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Walk.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bst: invalid option supplied")

	// ErrUnknownOrder is returned when Walk is given an unsupported Order.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")

	// ErrVisitAborted wraps an error returned by a Walk hook.
	ErrVisitAborted = errors.New("bst: visit aborted")
)

// Order selects a traversal shape.
type Order int

const (
	// InOrder visits left subtree, node, right subtree.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits breadth-first, left to right within a level.
	LevelOrder
)

// String returns the order's name.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// Option configures Walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Walk is invoked.
type Option func(*WalkOptions)

// WalkOptions holds parameters that tune a Walk.
type WalkOptions struct {
	// Ctx allows cancellation; it is checked before every visit.
	Ctx context.Context

	// MaxDepth, if > 0, skips nodes deeper than this (the root is depth 1).
	// 0 means no limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns WalkOptions with a background context and no
// depth limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to nodes at depth <= d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// CompareFunc is a three-way comparison: negative if a < b, zero if a == b,
// positive if a > b. It must define a total order.
type CompareFunc[T any] func(a, b T) int

// node owns its value and up to two children. There is no parent link.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree.
// Size is not tracked; counts and depth are computed on demand.
//
// The zero value has no comparator and is not usable: create trees with
// New, NewFunc, From, FromSorted or NewFromShape. Insert, Contains and
// Delete on a zero Tree panic with "bst: Tree used without New/NewFunc".
type Tree[T any] struct {
	root    *node[T]
	compare CompareFunc[T]
}

// cmp returns the tree's comparator, panicking on a zero Tree.
func (t *Tree[T]) cmp() CompareFunc[T] {
	if t.compare == nil {
		panic("bst: Tree used without New/NewFunc")
	}
	return t.compare
}

// Shape is a plain, detached description of a tree: a value and two optional
// subtrees. It is used to assemble trees by hand and to snapshot them.
// Shapes never share memory with a Tree.
type Shape[T any] struct {
	Value T
	Left  *Shape[T]
	Right *Shape[T]
}

// New returns an empty Tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{compare: cmp.Compare[T]}
}

// NewFunc returns an empty Tree ordered by compare.
// It panics if compare is nil.
func NewFunc[T any](compare CompareFunc[T]) *Tree[T] {
	if compare == nil {
		panic("bst: nil compare function")
	}
	return &Tree[T]{compare: compare}
}

// From returns a Tree built by inserting values in order.
func From[T cmp.Ordered](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}
