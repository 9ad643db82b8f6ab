package datastruct

// Queue is a FIFO queue backed by a slice. The zero value is ready to use.
// Dequeue re-slices, so the backing array is only reclaimed once the queue
// drains.
type Queue[T any] struct {
	items []T
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.items = append(q.items, v) }

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	front := q.items[0]
	q.items = q.items[1:]
	return front, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

func (q *Queue[T]) Len() int      { return len(q.items) }
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }
