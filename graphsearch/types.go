// Package graphsearch turns shortest-path queries on weighted directed graphs
// into search problems and solves them with the presets of package search.
package graphsearch

import "errors"

// Sentinel errors for graph search.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("graphsearch: graph is nil")

	// ErrVertexNotFound is returned when the source vertex is absent.
	ErrVertexNotFound = errors.New("graphsearch: source vertex not found")

	// ErrMissingEdge is the panic value when a successor reported by a Graph
	// has no weight; it means the Graph implementation is inconsistent.
	ErrMissingEdge = errors.New("graphsearch: successor without edge weight")
)

// Graph is the minimal weighted directed graph the adapter needs.
type Graph[V comparable, W any] interface {
	// HasVertex reports whether v belongs to the graph.
	HasVertex(v V) bool
	// Successors returns the heads of v's outgoing edges in a stable order.
	Successors(v V) []V
	// Weight returns the weight of edge from→to; ok is false if absent.
	Weight(from, to V) (w W, ok bool)
}
