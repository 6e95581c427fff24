package dlist

// Stack is a LIFO container backed by a List. The top is the list tail.
type Stack[T comparable] struct {
	list List[T]
}

// NewStack returns an empty Stack.
func NewStack[T comparable]() *Stack[T] { return &Stack[T]{} }

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.list.Append(v) }

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	if s.list.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.list.Remove(s.list.Len() - 1)
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.list.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.list.tail.data, nil
}

// Len reports the number of stacked values.
func (s *Stack[T]) Len() int { return s.list.Len() }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }

// String renders the stack bottom to top.
func (s *Stack[T]) String() string { return s.list.String() }

// Queue is a FIFO container backed by a List. The front is the list head.
type Queue[T comparable] struct {
	list List[T]
}

// NewQueue returns an empty Queue.
func NewQueue[T comparable]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.list.Append(v) }

// Dequeue removes and returns the front value.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.list.Remove(0)
}

// Front returns the front value without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.list.head.data, nil
}

// Len reports the number of queued values.
func (q *Queue[T]) Len() int { return q.list.Len() }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// String renders the queue front to back.
func (q *Queue[T]) String() string { return q.list.String() }
