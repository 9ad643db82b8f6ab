package datastruct

// Node is an element of a LinkedList.
type Node[T any] struct {
	Value T
	next  *Node[T]
	prev  *Node[T]
}

// Next returns the following node or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// LinkedList is a doubly-linked list. The zero value is an empty list.
type LinkedList[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// NewLinkedList builds a list holding vals in order.
func NewLinkedList[T any](vals ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v and returns its node.
func (l *LinkedList[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return n
}

// PushFront prepends v and returns its node.
func (l *LinkedList[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
	return n
}

func (l *LinkedList[T]) Front() *Node[T] { return l.head }
func (l *LinkedList[T]) Back() *Node[T]  { return l.tail }
func (l *LinkedList[T]) Len() int        { return l.size }
