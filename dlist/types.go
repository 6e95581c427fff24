package dlist

import "errors"

// Sentinel errors for list, stack and queue operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside the list bounds.
	ErrIndexOutOfRange = errors.New("dlist: index out of range")

	// ErrEmptyStack is returned by Pop and Peek on an empty Stack.
	ErrEmptyStack = errors.New("dlist: stack is empty")

	// ErrEmptyQueue is returned by Dequeue and Front on an empty Queue.
	ErrEmptyQueue = errors.New("dlist: queue is empty")
)

// element is a single list cell.
type element[T comparable] struct {
	data T
	prev *element[T]
	next *element[T]
}

// List is a doubly linked list of comparable values.
// The zero value is an empty list ready to use.
//
// IndexOf and Contains compare elements with ==. For interface element
// types such as List[any] that comparison panics at run time when both
// operands hold the same non-comparable dynamic type (a slice, map or func).
// Positional operations never compare and are always safe.
type List[T comparable] struct {
	head   *element[T]
	tail   *element[T]
	length int
}

// New returns an empty List.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a List holding values in order.
func FromSlice[T comparable](values []T) *List[T] {
	l := New[T]()
	l.FromSlice(values)
	return l
}
