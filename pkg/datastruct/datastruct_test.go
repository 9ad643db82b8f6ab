package datastruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PopOrderIsReverseOfPush(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.IsEmpty())

	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	var popped []int
	for !s.IsEmpty() {
		v, _ := s.Pop()
		popped = append(popped, v)
	}
	assert.Equal(t, []int{3, 2, 1}, popped)

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestQueue_DequeueOrderMatchesEnqueue(t *testing.T) {
	var q Queue[string]
	for _, v := range []string{"a", "b", "c"} {
		q.Enqueue(v)
	}
	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", front)

	var out []string
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		out = append(out, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, out)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestSet_DeduplicatesByValue(t *testing.T) {
	type pair struct {
		a int
		b string
	}

	s := NewSet(pair{1, "x"}, pair{2, "y"}, pair{1, "x"})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(pair{1, "x"}))
	assert.False(t, s.Contains(pair{1, "y"}))

	assert.False(t, s.Add(pair{2, "y"}))
	assert.True(t, s.Add(pair{3, "z"}))
	assert.Equal(t, []pair{{1, "x"}, {2, "y"}, {3, "z"}}, s.Slice())
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[int]
	assert.False(t, s.Contains(1))
	assert.Empty(t, s.Slice())

	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1))
	assert.True(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{1}, s.Slice())
}

func TestLinkedList_Links(t *testing.T) {
	l := NewLinkedList(2, 3)
	l.PushFront(1)
	assert.Equal(t, 3, l.Len())

	var forward []int
	for n := l.Front(); n != nil; n = n.Next() {
		forward = append(forward, n.Value)
	}
	assert.Equal(t, []int{1, 2, 3}, forward)

	var backward []int
	for n := l.Back(); n != nil; n = n.Prev() {
		backward = append(backward, n.Value)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)
}

func TestLinkedList_Empty(t *testing.T) {
	var l LinkedList[int]
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	assert.Zero(t, l.Len())
}
