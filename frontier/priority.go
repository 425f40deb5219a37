package frontier

import (
	"cmp"
	"container/heap"
)

// entry pairs an element with the priority computed when it was inserted.
type entry[T, P any] struct {
	value T
	key   P
}

// entryHeap is a binary min-heap of entries ordered by less on their keys.
// It implements heap.Interface; PriorityQueue drives it through container/heap.
type entryHeap[T, P any] struct {
	items []entry[T, P]
	less  func(a, b P) bool
}

// Len returns the number of items in the heap.
func (h *entryHeap[T, P]) Len() int { return len(h.items) }

// Less defines the comparison: smaller key → higher priority.
func (h *entryHeap[T, P]) Less(i, j int) bool { return h.less(h.items[i].key, h.items[j].key) }

// Swap swaps two elements in the heap.
func (h *entryHeap[T, P]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push before sifting up.
func (h *entryHeap[T, P]) Push(x any) { h.items = append(h.items, x.(entry[T, P])) }

// Pop removes the last element; heap.Pop has already swapped the root there and sifted down.
func (h *entryHeap[T, P]) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items[n-1] = entry[T, P]{}
	h.items = h.items[:n-1]

	return it
}

// PriorityQueue is a min-priority frontier: RemoveNext returns the element
// with the smallest key. Keys are computed once, on Insert, by the priority
// function. Ties are broken by heap structure, not insertion order.
//
// Insert appends and sifts up while the parent key is greater; RemoveNext
// swaps the root with the last element, shrinks the heap and sifts down
// towards the smaller child while that child is strictly smaller.
type PriorityQueue[T, P any] struct {
	h        entryHeap[T, P]
	priority func(T) P
}

// NewPriorityQueue returns an empty PriorityQueue keyed by priority and
// ordered by less. It panics if either function is nil.
func NewPriorityQueue[T, P any](priority func(T) P, less func(a, b P) bool) *PriorityQueue[T, P] {
	if priority == nil || less == nil {
		panic("frontier: nil priority or less function")
	}

	return &PriorityQueue[T, P]{
		h:        entryHeap[T, P]{less: less},
		priority: priority,
	}
}

// NewMinPriorityQueue returns a PriorityQueue over an ordered key type using <.
func NewMinPriorityQueue[T any, P cmp.Ordered](priority func(T) P) *PriorityQueue[T, P] {
	return NewPriorityQueue(priority, cmp.Less[P])
}

// IsEmpty reports whether the queue holds no element.
func (pq *PriorityQueue[T, P]) IsEmpty() bool { return pq.h.Len() == 0 }

// Len returns the number of stored elements.
func (pq *PriorityQueue[T, P]) Len() int { return pq.h.Len() }

// Insert computes v's key and pushes it onto the heap. O(log n).
func (pq *PriorityQueue[T, P]) Insert(v T) {
	heap.Push(&pq.h, entry[T, P]{value: v, key: pq.priority(v)})
}

// RemoveNext pops the element with the smallest key. O(log n).
func (pq *PriorityQueue[T, P]) RemoveNext() T {
	if pq.h.Len() == 0 {
		panic(ErrEmptyFrontier)
	}

	return heap.Pop(&pq.h).(entry[T, P]).value
}

// Peek returns the smallest key without removing its element.
// ok is false when the queue is empty.
func (pq *PriorityQueue[T, P]) Peek() (key P, ok bool) {
	if pq.h.Len() == 0 {
		return key, false
	}

	return pq.h.items[0].key, true
}
