package frontier

// compactAt is the minimum number of consumed slots before Queue reclaims them.
const compactAt = 32

// Queue is a FIFO frontier. Removed slots at the head are reclaimed lazily
// once they make up at least half of the backing slice.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// IsEmpty reports whether the queue holds no element.
func (q *Queue[T]) IsEmpty() bool { return q.head == len(q.items) }

// Len returns the number of stored elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Insert appends v at the tail.
func (q *Queue[T]) Insert(v T) {
	q.items = append(q.items, v)
}

// RemoveNext removes the earliest inserted element still present.
func (q *Queue[T]) RemoveNext() T {
	if q.IsEmpty() {
		panic(ErrEmptyFrontier)
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the backing array from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactAt && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v
}
