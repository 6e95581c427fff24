// Package lvtree is a small in-memory playground for ordered containers:
// an unbalanced binary search tree, a doubly linked list, and the stack and
// queue built on top of it.
//
// 🚀 What is lvtree?
//
//	A generic, zero-surprise collection of textbook structures:
//		• Binary search tree: insert, delete, contains, four traversals
//		• Tree analytics: max depth, full-node count, mirror symmetry
//		• Doubly linked list: positional access from the nearer end
//		• Stack & queue: O(1) adapters over the linked list
//		• ASCII rendering of tree snapshots
//
// ✨ Why choose lvtree?
//
//   - Generic – any cmp.Ordered type, or any type with a comparator
//   - Snapshots – traversals return fresh slices, never live views
//   - Honest – no hidden balancing, duplicates kept and routed right
//
// Packages:
//
//	bst/          binary search tree, traversals, analytics, shapes
//	dlist/        doubly linked list, Stack, Queue
//	render/       ASCII diagrams of bst snapshots
//	cmd/treelab/  demo CLI running every exercise
//
// Quick ASCII example (insert 50, 30, 70, 20, 40):
//
//	50
//	├── L: 30
//	│   ├── L: 20
//	│   └── R: 40
//	└── R: 70
//
// None of the containers synchronise internally; share them across
// goroutines only behind a lock.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
