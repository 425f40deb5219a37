package frontier

// Stack is a LIFO frontier backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty reports whether the stack holds no element.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Insert pushes v on top of the stack.
func (s *Stack[T]) Insert(v T) {
	s.items = append(s.items, v)
}

// RemoveNext pops the most recently inserted element.
func (s *Stack[T]) RemoveNext() T {
	n := len(s.items)
	if n == 0 {
		panic(ErrEmptyFrontier)
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference for the GC
	s.items = s.items[:n-1]

	return v
}
