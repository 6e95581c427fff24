package dlist

import (
	"fmt"
	"iter"
	"strings"
)

// Len reports the number of elements in the list.
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Append adds v at the tail.
func (l *List[T]) Append(v T) {
	e := &element[T]{data: v}
	if l.IsEmpty() {
		l.head, l.tail = e, e
	} else {
		e.prev = l.tail
		l.tail.next = e
		l.tail = e
	}
	l.length++
}

// Prepend adds v at the head.
func (l *List[T]) Prepend(v T) {
	e := &element[T]{data: v}
	if l.IsEmpty() {
		l.head, l.tail = e, e
	} else {
		e.next = l.head
		l.head.prev = e
		l.head = e
	}
	l.length++
}

// Insert places v so that it ends up at position index.
// Valid indices are 0..Len(); Len() is equivalent to Append.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.length {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndexOutOfRange, index, l.length)
	}
	switch index {
	case 0:
		l.Prepend(v)
		return nil
	case l.length:
		l.Append(v)
		return nil
	}

	at := l.elementAt(index)
	e := &element[T]{data: v, prev: at.prev, next: at}
	at.prev.next = e
	at.prev = e
	l.length++
	return nil
}

// Get returns the value stored at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.elementAt(index).data, nil
}

// Remove unlinks the element at index and returns its value.
func (l *List[T]) Remove(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}

	e := l.elementAt(index)
	switch {
	case l.length == 1:
		l.head, l.tail = nil, nil
	case e == l.head:
		l.head = e.next
		l.head.prev = nil
	case e == l.tail:
		l.tail = e.prev
		l.tail.next = nil
	default:
		e.prev.next = e.next
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	l.length--
	return e.data, nil
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for e := l.head; e != nil; e = e.next {
		if e.data == v {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool { return l.IndexOf(v) != -1 }

// Clear drops every element.
func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
	l.length = 0
}

// Reverse flips the list in place by swapping each element's links.
func (l *List[T]) Reverse() {
	if l.length <= 1 {
		return
	}
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev = e.prev, next
		e = next
	}
	l.head, l.tail = l.tail, l.head
}

// Values returns a fresh slice of the elements from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.data)
	}
	return out
}

// FromSlice replaces the contents of l with values.
func (l *List[T]) FromSlice(values []T) {
	l.Clear()
	for _, v := range values {
		l.Append(v)
	}
}

// All yields the elements from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.data) {
				return
			}
		}
	}
}

// Backward yields the elements from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.data) {
				return
			}
		}
	}
}

// String renders the list as "[a <-> b <-> c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := l.head; e != nil; e = e.next {
		fmt.Fprint(&sb, e.data)
		if e.next != nil {
			sb.WriteString(" <-> ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.length {
		return fmt.Errorf("%w: index %d (len %d)", ErrIndexOutOfRange, index, l.length)
	}
	return nil
}

// elementAt walks from the nearer end. index must already be validated.
func (l *List[T]) elementAt(index int) *element[T] {
	if index < l.length/2 {
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e
	}
	e := l.tail
	for i := l.length - 1; i > index; i-- {
		e = e.prev
	}
	return e
}
