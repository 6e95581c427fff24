// Package dlist provides a generic doubly linked list together with a stack
// and a queue built on top of it.
//
// What
//
//   - List[T]: head/tail linked nodes with a tracked length.
//   - Positional access (Get, Insert, Remove) walks from whichever end is
//     nearer to the requested index.
//   - Stack[T] pushes and pops at the tail; Queue[T] enqueues at the tail and
//     dequeues at the head. Both are O(1) per operation.
//
// Why
//
//   - Constant-time insertion and removal at both ends.
//   - Serves as the FIFO work queue for breadth-first walks elsewhere in lvtree.
//
// Complexity (n = Len())
//
//   - Append, Prepend, Push, Pop, Enqueue, Dequeue: O(1)
//   - Get, Insert, Remove:                          O(min(i, n-i))
//   - IndexOf, Contains, Reverse, Values:           O(n)
//
// Errors
//
//   - ErrIndexOutOfRange  if an index falls outside the list.
//   - ErrEmptyStack       on Pop/Peek of an empty Stack.
//   - ErrEmptyQueue       on Dequeue/Front of an empty Queue.
//
// A List is not safe for concurrent use; guard it externally if shared.
package dlist
