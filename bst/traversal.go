package bst

import (
	"fmt"

	"github.com/katalvlaran/lvtree/dlist"
)

// InOrder returns all values left-root-right, i.e. in non-decreasing order.
func (t *Tree[T]) InOrder() []T {
	return t.collect(InOrder)
}

// PreOrder returns all values root-left-right.
func (t *Tree[T]) PreOrder() []T {
	return t.collect(PreOrder)
}

// PostOrder returns all values left-right-root.
func (t *Tree[T]) PostOrder() []T {
	return t.collect(PostOrder)
}

// LevelOrder returns all values breadth-first, left to right per level.
func (t *Tree[T]) LevelOrder() []T {
	return t.collect(LevelOrder)
}

func (t *Tree[T]) collect(order Order) []T {
	out := make([]T, 0)
	_ = t.Walk(order, func(v T, _ int) error {
		out = append(out, v)
		return nil
	})
	return out
}

// Levels returns the level-order sequence grouped by depth; Levels()[0]
// holds the root alone. An empty tree yields an empty slice.
func (t *Tree[T]) Levels() [][]T {
	levels := make([][]T, 0)
	_ = t.Walk(LevelOrder, func(v T, depth int) error {
		if depth > len(levels) {
			levels = append(levels, nil)
		}
		levels[depth-1] = append(levels[depth-1], v)
		return nil
	})
	return levels
}

// Walk calls visit for every value in the given order together with the
// node's depth (the root is depth 1), applying any number of Options.
// Returns ErrUnknownOrder for an unsupported order, ErrOptionViolation for
// bad options, the context's error on cancellation, or the hook's error
// wrapped in ErrVisitAborted. The tree must not be mutated from inside visit.
func (t *Tree[T]) Walk(order Order, visit func(v T, depth int) error, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	w := &walker[T]{order: order, opts: o, visit: visit}
	switch order {
	case InOrder, PreOrder, PostOrder:
		return w.walk(t.root, 1)
	case LevelOrder:
		return w.walkLevels(t.root)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}
}

// walker carries the hook and options through one traversal.
type walker[T any] struct {
	order Order
	opts  WalkOptions
	visit func(T, int) error
}

// levelItem pairs a queued node with its depth.
type levelItem[T any] struct {
	n     *node[T]
	depth int
}

func (w *walker[T]) tooDeep(depth int) bool {
	return w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth
}

func (w *walker[T]) walk(n *node[T], depth int) error {
	if n == nil || w.tooDeep(depth) {
		return nil
	}
	if w.order == PreOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.walk(n.left, depth+1); err != nil {
		return err
	}
	if w.order == InOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.walk(n.right, depth+1); err != nil {
		return err
	}
	if w.order == PostOrder {
		return w.emit(n, depth)
	}
	return nil
}

// walkLevels is the breadth-first walk: an explicit FIFO seeded with the
// root, children enqueued left then right.
func (w *walker[T]) walkLevels(root *node[T]) error {
	if root == nil {
		return nil
	}

	q := dlist.NewQueue[levelItem[T]]()
	q.Enqueue(levelItem[T]{n: root, depth: 1})
	for !q.IsEmpty() {
		item, _ := q.Dequeue()
		if err := w.emit(item.n, item.depth); err != nil {
			return err
		}
		if w.tooDeep(item.depth + 1) {
			continue
		}
		if item.n.left != nil {
			q.Enqueue(levelItem[T]{n: item.n.left, depth: item.depth + 1})
		}
		if item.n.right != nil {
			q.Enqueue(levelItem[T]{n: item.n.right, depth: item.depth + 1})
		}
	}
	return nil
}

// emit checks for cancellation, then runs the hook.
func (w *walker[T]) emit(n *node[T], depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if err := w.visit(n.value, depth); err != nil {
		return fmt.Errorf("%w: %s at %v: %w", ErrVisitAborted, w.order, n.value, err)
	}
	return nil
}
