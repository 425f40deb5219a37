// Package frontier defines the Frontier contract used by the search engine
// together with its three standard disciplines.
package frontier

import "errors"

// ErrEmptyFrontier is the panic value of RemoveNext on an empty frontier.
// Callers must check IsEmpty first; reaching it is a programming error.
var ErrEmptyFrontier = errors.New("frontier: RemoveNext called on empty frontier")

// Frontier is an ordered container of not-yet-expanded elements.
// The order in which RemoveNext yields elements is the discipline.
type Frontier[T any] interface {
	// IsEmpty reports whether no element is stored.
	IsEmpty() bool
	// Insert adds v to the frontier.
	Insert(v T)
	// RemoveNext removes and returns the next element per the discipline.
	// It panics with ErrEmptyFrontier when the frontier is empty.
	RemoveNext() T
	// Len returns the number of stored elements.
	Len() int
}

// Discipline names a frontier ordering. It is used as a metric label and in logs.
type Discipline string

const (
	// LIFO removes the most recently inserted element (depth-first).
	LIFO Discipline = "lifo"
	// FIFO removes the earliest inserted element (breadth-first).
	FIFO Discipline = "fifo"
	// MinPriority removes the element with the smallest key (Dijkstra, A*).
	MinPriority Discipline = "min_priority"
)
