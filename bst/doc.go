// Package bst implements an unbalanced binary search tree over any totally
// ordered value type.
//
// What
//
//   - Insert, Delete, Contains on a mutable Tree[T].
//   - Four traversal orders returned as fresh slices: InOrder, PreOrder,
//     PostOrder and LevelOrder (plus Levels, grouped by depth).
//   - Walk visits values and depths in any Order through a hook that may
//     abort, tuned by functional Options (WithContext, WithMaxDepth).
//   - Structural analytics: MaxDepth, CountFullNodes / FullNodes, IsSymmetric.
//   - Construction from an explicit Shape and balanced construction from a
//     sorted slice; Shape() takes a deep-copied snapshot.
//
// Ordering
//
//	Values smaller than a node go to its left subtree; everything else,
//	including duplicates, goes right. InOrder therefore yields a
//	non-decreasing sequence for any insertion history.
//
// Deletion
//
//	A node with at most one child is replaced by that child. A node with two
//	children takes the minimum value of its right subtree, and that value is
//	then deleted from the right subtree by value. Because ties are always
//	routed right, the by-value descent lands on the leftmost node of the right
//	subtree for every tree built through Insert. Trees assembled from a Shape
//	that breaks the ordering invariant get no such guarantee.
//
// Depth convention
//
//	MaxDepth counts nodes, not edges: an empty tree has depth 0 and a single
//	root has depth 1.
//
// Complexity (n = nodes, h = height)
//
//   - Insert, Delete, Contains, Min, Max: O(h), h = n in the degenerate case.
//   - Traversals and analytics:          O(n) time, O(h) recursion depth
//     (LevelOrder uses O(width) queue space instead).
//
// Errors
//
//   - ErrUnknownOrder     if Walk receives an Order it does not know.
//   - ErrVisitAborted     wraps the error a Walk hook returned.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - context errors      if the WithContext context is done mid-walk.
//
// A Tree is not safe for concurrent use. Embedders that share one across
// goroutines must guard the whole instance with a single lock.
package bst
