package dlist_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtree/dlist"
)

// ListSuite exercises positional access and structural edits on List.
type ListSuite struct {
	suite.Suite
	list *dlist.List[int]
}

// SetupTest seeds every test with [10 <-> 20 <-> 30 <-> 40 <-> 50].
func (s *ListSuite) SetupTest() {
	s.list = dlist.FromSlice([]int{10, 20, 30, 40, 50})
}

// TestGetFromBothEnds reads every index; the first half walks from the head,
// the rest from the tail.
func (s *ListSuite) TestGetFromBothEnds() {
	for i, want := range []int{10, 20, 30, 40, 50} {
		got, err := s.list.Get(i)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, got, "index %d", i)
	}
}

// TestIndexBounds rejects negative and past-the-end indices.
func (s *ListSuite) TestIndexBounds() {
	_, err := s.list.Get(-1)
	require.ErrorIs(s.T(), err, dlist.ErrIndexOutOfRange)
	_, err = s.list.Get(5)
	require.ErrorIs(s.T(), err, dlist.ErrIndexOutOfRange)
	_, err = s.list.Remove(5)
	require.ErrorIs(s.T(), err, dlist.ErrIndexOutOfRange)
	require.ErrorIs(s.T(), s.list.Insert(6, 0), dlist.ErrIndexOutOfRange)
	require.Equal(s.T(), 5, s.list.Len(), "failed edits must not change length")
}

// TestInsert covers head, middle and tail positions.
func (s *ListSuite) TestInsert() {
	require.NoError(s.T(), s.list.Insert(0, 5))
	require.NoError(s.T(), s.list.Insert(3, 25))
	require.NoError(s.T(), s.list.Insert(s.list.Len(), 55))
	require.Equal(s.T(), []int{5, 10, 20, 25, 30, 40, 50, 55}, s.list.Values())
	require.Equal(s.T(), 8, s.list.Len())
}

// TestRemove covers head, tail, middle and last-element removal.
func (s *ListSuite) TestRemove() {
	v, err := s.list.Remove(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, v)

	v, err = s.list.Remove(s.list.Len() - 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 50, v)

	v, err = s.list.Remove(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 30, v)
	require.Equal(s.T(), []int{20, 40}, s.list.Values())

	_, _ = s.list.Remove(0)
	_, _ = s.list.Remove(0)
	require.True(s.T(), s.list.IsEmpty())
	require.Equal(s.T(), "[]", s.list.String())
}

// TestSearch checks IndexOf and Contains, including duplicates.
func (s *ListSuite) TestSearch() {
	s.list.Append(20)
	require.Equal(s.T(), 1, s.list.IndexOf(20), "first occurrence wins")
	require.Equal(s.T(), -1, s.list.IndexOf(99))
	require.True(s.T(), s.list.Contains(50))
	require.False(s.T(), s.list.Contains(99))
}

// TestReverse flips links and keeps both directions consistent.
func (s *ListSuite) TestReverse() {
	s.list.Reverse()
	require.Equal(s.T(), []int{50, 40, 30, 20, 10}, s.list.Values())
	require.Equal(s.T(), []int{10, 20, 30, 40, 50}, slices.Collect(s.list.Backward()))

	v, err := s.list.Get(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 20, v)
}

// TestIterationEarlyStop ensures All honours a false yield.
func (s *ListSuite) TestIterationEarlyStop() {
	var seen []int
	for v := range s.list.All() {
		if v > 30 {
			break
		}
		seen = append(seen, v)
	}
	require.Equal(s.T(), []int{10, 20, 30}, seen)
}

// TestFromSliceReplaces ensures FromSlice clears previous contents.
func (s *ListSuite) TestFromSliceReplaces() {
	s.list.FromSlice([]int{1, 2})
	require.Equal(s.T(), []int{1, 2}, s.list.Values())
	require.Equal(s.T(), "[1 <-> 2]", s.list.String())
}

func TestListSuite(t *testing.T) {
	suite.Run(t, new(ListSuite))
}

// TestList_ZeroValue verifies the zero List is usable.
func TestList_ZeroValue(t *testing.T) {
	var l dlist.List[string]
	require.True(t, l.IsEmpty())
	l.Prepend("b")
	l.Prepend("a")
	l.Append("c")
	require.Equal(t, []string{"a", "b", "c"}, l.Values())
	l.Reverse()
	require.Equal(t, "[c <-> b <-> a]", l.String())
}

// TestList_InterfaceElements documents the == comparison used by IndexOf.
func TestList_InterfaceElements(t *testing.T) {
	l := dlist.FromSlice([]any{42, "hello", []int{1, 2}})

	v, err := l.Get(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, v)
	require.Equal(t, 1, l.IndexOf("hello"), "found before reaching the slice")
	require.Equal(t, -1, l.IndexOf(3.5), "different dynamic types compare unequal")
	require.Panics(t, func() { l.IndexOf([]int{1, 2}) })
}

// TestStack checks LIFO order and empty errors.
func TestStack(t *testing.T) {
	s := dlist.NewStack[int]()
	if _, err := s.Pop(); !errors.Is(err, dlist.ErrEmptyStack) {
		t.Fatalf("Pop on empty: want ErrEmptyStack, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, dlist.ErrEmptyStack) {
		t.Fatalf("Peek on empty: want ErrEmptyStack, got %v", err)
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, "[1 <-> 2 <-> 3]", s.String())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, top)

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, s.IsEmpty())
	require.Zero(t, s.Len())
}

// TestQueue checks FIFO order and empty errors.
func TestQueue(t *testing.T) {
	q := dlist.NewQueue[string]()
	if _, err := q.Dequeue(); !errors.Is(err, dlist.ErrEmptyQueue) {
		t.Fatalf("Dequeue on empty: want ErrEmptyQueue, got %v", err)
	}
	if _, err := q.Front(); !errors.Is(err, dlist.ErrEmptyQueue) {
		t.Fatalf("Front on empty: want ErrEmptyQueue, got %v", err)
	}

	q.Enqueue("A")
	q.Enqueue("B")
	q.Enqueue("C")
	require.Equal(t, 3, q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, "A", front)

	for _, want := range []string{"A", "B", "C"} {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())
}
