package datastruct

// Set is a collection of unique values compared by ==.
// Slice returns members in the order they were first added.
// The zero value is ready to use.
type Set[T comparable] struct {
	m     map[T]struct{}
	order []T
}

// NewSet builds a set from vals, dropping duplicates.
func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.m) }

// Slice returns a copy of the members.
func (s *Set[T]) Slice() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
