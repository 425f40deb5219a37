package graphsearch

import (
	"cmp"
	"fmt"

	"github.com/jyuhuan/Solid/monoid"
	"github.com/jyuhuan/Solid/search"
)

// Path is the search solution of a graph query: States are the vertices
// visited, Actions the same vertices minus the source, Cost the path weight.
type Path[V comparable, W any] = search.Solution[V, V, W]

// Option configures a graph search; it is a search.Option over vertices.
type Option[V comparable, W any] = search.Option[V, V, W]

// NewProblem builds the search problem "reach target from source in g":
// actions are successor vertices, applying one moves to it, and its cost is
// the edge weight, accumulated with m.
//
// Returns ErrNilGraph, ErrVertexNotFound (source only; an absent target is
// simply unreachable) or search.ErrNilMonoid.
func NewProblem[V comparable, W any](g Graph[V, W], source, target V, m monoid.Monoid[W]) (*search.Problem[V, V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	return search.NewProblem(
		source,
		func(v V) bool { return v == target },
		g.Successors,
		func(_ V, to V) V { return to },
		func(from, to V) W {
			w, ok := g.Weight(from, to)
			if !ok {
				panic(fmt.Errorf("%w: %v→%v", ErrMissingEdge, from, to))
			}
			return w
		},
		m,
	)
}

// DepthFirst finds some path from source to target, weights summed.
// ok is false when target is unreachable.
func DepthFirst[V comparable, W monoid.Number](g Graph[V, W], source, target V, opts ...Option[V, W]) (*Path[V, W], bool, error) {
	p, err := NewProblem(g, source, target, monoid.Sum[W]())
	if err != nil {
		return nil, false, err
	}

	return search.DepthFirst(p, opts...)
}

// BreadthFirst finds a path with the fewest edges, weights summed.
func BreadthFirst[V comparable, W monoid.Number](g Graph[V, W], source, target V, opts ...Option[V, W]) (*Path[V, W], bool, error) {
	p, err := NewProblem(g, source, target, monoid.Sum[W]())
	if err != nil {
		return nil, false, err
	}

	return search.BreadthFirst(p, opts...)
}

// Dijkstra finds a minimum-weight path. Weights must be non-negative.
func Dijkstra[V comparable, W monoid.Number](g Graph[V, W], source, target V, opts ...Option[V, W]) (*Path[V, W], bool, error) {
	p, err := NewProblem(g, source, target, monoid.Sum[W]())
	if err != nil {
		return nil, false, err
	}

	return search.Dijkstra(p, opts...)
}

// AStar finds a minimum-weight path guided by heuristic, which must not
// overestimate the remaining weight to target.
func AStar[V comparable, W monoid.Number](g Graph[V, W], source, target V, heuristic search.Heuristic[V, W], opts ...Option[V, W]) (*Path[V, W], bool, error) {
	p, err := NewProblem(g, source, target, monoid.Sum[W]())
	if err != nil {
		return nil, false, err
	}

	return search.AStar(p, heuristic, opts...)
}

// DijkstraWith is Dijkstra under an arbitrary accumulation rule, e.g.
// monoid.Max for bottleneck paths. m must never decrease an accumulated weight.
func DijkstraWith[V comparable, W cmp.Ordered](g Graph[V, W], source, target V, m monoid.Monoid[W], opts ...Option[V, W]) (*Path[V, W], bool, error) {
	p, err := NewProblem(g, source, target, m)
	if err != nil {
		return nil, false, err
	}

	return search.Dijkstra(p, opts...)
}
