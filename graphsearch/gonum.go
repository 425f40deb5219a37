package graphsearch

import (
	"slices"

	"gonum.org/v1/gonum/graph"
)

// Gonum adapts a gonum weighted directed graph to Graph. Vertices are gonum
// node IDs and weights are float64. Successors are sorted by ID because
// gonum iterates adjacency in map order.
type Gonum struct {
	g graph.WeightedDirected
}

// FromGonum wraps g. It returns nil for a nil g.
func FromGonum(g graph.WeightedDirected) *Gonum {
	if g == nil {
		return nil
	}

	return &Gonum{g: g}
}

// HasVertex reports whether g has a node with the given ID.
// A nil *Gonum has no vertices.
func (a *Gonum) HasVertex(id int64) bool {
	return a != nil && a.g.Node(id) != nil
}

// Successors returns the IDs of id's out-neighbours in ascending order.
func (a *Gonum) Successors(id int64) []int64 {
	it := a.g.From(id)
	ids := make([]int64, 0, max(it.Len(), 0))
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}

// Weight returns the weight of the edge from→to.
func (a *Gonum) Weight(from, to int64) (float64, bool) {
	if a.g.WeightedEdge(from, to) == nil {
		return 0, false
	}

	return a.g.Weight(from, to)
}

var _ Graph[int64, float64] = (*Gonum)(nil)
