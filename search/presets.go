package search

import "cmp"

// DepthFirst solves p with a LIFO frontier. Not cost-optimal: it follows one
// branch to its end before backtracking.
func DepthFirst[S comparable, A, C any](p *Problem[S, A, C], opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewDepthFirstSearcher[S, A, C]().solve(p, opts)
}

// BreadthFirst solves p with a FIFO frontier. The returned path has the fewest
// actions, hence minimal cost when all action costs are equal.
func BreadthFirst[S comparable, A, C any](p *Problem[S, A, C], opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewBreadthFirstSearcher[S, A, C]().solve(p, opts)
}

// Dijkstra solves p with a min-priority frontier keyed by accumulated cost.
// Cost-optimal when action costs never decrease an accumulated cost
// (non-negative costs under Sum).
func Dijkstra[S comparable, A any, C cmp.Ordered](p *Problem[S, A, C], opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewDijkstraSearcher[S, A, C]().solve(p, opts)
}

// DijkstraFunc is Dijkstra for cost types ordered by less.
func DijkstraFunc[S comparable, A, C any](p *Problem[S, A, C], less func(a, b C) bool, opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewDijkstraSearcherFunc[S, A, C](less).solve(p, opts)
}

// AStar solves p with a min-priority frontier keyed by
// Monoid.Combine(accumulated cost, h(state)). Cost-optimal when h is
// admissible; h is not verified. Returns ErrNilHeuristic for a nil h.
func AStar[S comparable, A any, C cmp.Ordered](p *Problem[S, A, C], h Heuristic[S, C], opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewAStarSearcher[S, A, C](h).solve(p, opts)
}

// AStarFunc is AStar for cost types ordered by less.
func AStarFunc[S comparable, A, C any](p *Problem[S, A, C], h Heuristic[S, C], less func(a, b C) bool, opts ...Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	return NewAStarSearcherFunc[S, A, C](h, less).solve(p, opts)
}
