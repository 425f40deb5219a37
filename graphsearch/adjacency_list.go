package graphsearch

// AdjacencyList is a map-backed weighted directed graph. Successors are
// reported in edge insertion order, which makes searches reproducible.
// Not safe for concurrent mutation.
type AdjacencyList[V comparable, W any] struct {
	order []V           // vertices in insertion order
	out   map[V][]V     // successors in insertion order
	w     map[V]map[V]W // from → to → weight
}

// NewAdjacencyList returns an empty graph.
func NewAdjacencyList[V comparable, W any]() *AdjacencyList[V, W] {
	return &AdjacencyList[V, W]{
		out: make(map[V][]V),
		w:   make(map[V]map[V]W),
	}
}

// AddVertex adds v if it is not present yet.
func (g *AdjacencyList[V, W]) AddVertex(v V) {
	if _, ok := g.w[v]; ok {
		return
	}
	g.order = append(g.order, v)
	g.w[v] = make(map[V]W)
}

// AddEdge adds from→to with weight w, adding missing endpoints. Re-adding an
// existing edge overwrites its weight and keeps its position.
func (g *AdjacencyList[V, W]) AddEdge(from, to V, w W) {
	g.AddVertex(from)
	g.AddVertex(to)
	if _, ok := g.w[from][to]; !ok {
		g.out[from] = append(g.out[from], to)
	}
	g.w[from][to] = w
}

// HasVertex reports whether v was added.
func (g *AdjacencyList[V, W]) HasVertex(v V) bool {
	_, ok := g.w[v]
	return ok
}

// Vertices returns all vertices in insertion order.
func (g *AdjacencyList[V, W]) Vertices() []V {
	return append([]V(nil), g.order...)
}

// Successors returns the heads of v's outgoing edges in insertion order.
func (g *AdjacencyList[V, W]) Successors(v V) []V {
	return g.out[v]
}

// Weight returns the weight of from→to.
func (g *AdjacencyList[V, W]) Weight(from, to V) (W, bool) {
	w, ok := g.w[from][to]
	return w, ok
}

// EdgeCount returns the number of directed edges.
func (g *AdjacencyList[V, W]) EdgeCount() int {
	n := 0
	for _, succ := range g.out {
		n += len(succ)
	}

	return n
}
