package search

import (
	"cmp"

	"github.com/jyuhuan/Solid/frontier"
)

// Searcher solves search problems with a fixed exploration strategy.
type Searcher[S comparable, A, C any] interface {
	// Solve searches p; see the package-level Solve for the result contract.
	Solve(p *Problem[S, A, C]) (*Solution[S, A, C], bool, error)
}

// frontierFactory builds an empty frontier for one run on p.
type frontierFactory[S comparable, A, C any] func(p *Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]]

// GenericSearcher is a Searcher whose traversal order is decided by the
// frontier it creates for each run. It holds no per-run state, so one value
// can serve any number of Solve calls.
type GenericSearcher[S comparable, A, C any] struct {
	name    frontier.Discipline
	factory frontierFactory[S, A, C]
	opts    []Option[S, A, C]
}

// NewGenericSearcher returns a Searcher exploring in the order of the
// frontiers built by factory. A WithFrontier option takes precedence.
func NewGenericSearcher[S comparable, A, C any](
	factory func() frontier.Frontier[*Node[S, A, C]],
	opts ...Option[S, A, C],
) *GenericSearcher[S, A, C] {
	var ff frontierFactory[S, A, C]
	if factory != nil {
		ff = func(*Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]] { return factory() }
	}

	return &GenericSearcher[S, A, C]{name: "custom", factory: ff, opts: opts}
}

// NewDepthFirstSearcher explores the most recently generated node first.
// Not cost-optimal.
func NewDepthFirstSearcher[S comparable, A, C any](opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	return &GenericSearcher[S, A, C]{
		name: frontier.LIFO,
		factory: func(*Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]] {
			return frontier.NewStack[*Node[S, A, C]]()
		},
		opts: opts,
	}
}

// NewBreadthFirstSearcher explores nodes in generation order.
// Optimal when every action has the same cost.
func NewBreadthFirstSearcher[S comparable, A, C any](opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	return &GenericSearcher[S, A, C]{
		name: frontier.FIFO,
		factory: func(*Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]] {
			return frontier.NewQueue[*Node[S, A, C]]()
		},
		opts: opts,
	}
}

// NewDijkstraSearcher explores the node with the smallest accumulated cost
// first. Cost-optimal for non-decreasing cost accumulation.
func NewDijkstraSearcher[S comparable, A any, C cmp.Ordered](opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	return NewDijkstraSearcherFunc(cmp.Less[C], opts...)
}

// NewDijkstraSearcherFunc is NewDijkstraSearcher for cost types ordered by less.
// less must be non-nil.
func NewDijkstraSearcherFunc[S comparable, A, C any](less func(a, b C) bool, opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	return &GenericSearcher[S, A, C]{
		name: frontier.MinPriority,
		factory: func(*Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]] {
			return frontier.NewPriorityQueue((*Node[S, A, C]).Cost, less)
		},
		opts: opts,
	}
}

// NewAStarSearcher explores the node minimising Combine(cost, h(state)) first.
// Cost-optimal when h is admissible.
func NewAStarSearcher[S comparable, A any, C cmp.Ordered](h Heuristic[S, C], opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	return NewAStarSearcherFunc(h, cmp.Less[C], opts...)
}

// NewAStarSearcherFunc is NewAStarSearcher for cost types ordered by less.
func NewAStarSearcherFunc[S comparable, A, C any](h Heuristic[S, C], less func(a, b C) bool, opts ...Option[S, A, C]) *GenericSearcher[S, A, C] {
	s := &GenericSearcher[S, A, C]{name: frontier.MinPriority, opts: opts}
	if h == nil {
		return s // factory stays nil; Solve reports ErrNilHeuristic
	}
	s.factory = func(p *Problem[S, A, C]) frontier.Frontier[*Node[S, A, C]] {
		m := p.Monoid
		return frontier.NewPriorityQueue(func(n *Node[S, A, C]) C {
			return m.Combine(n.cost, h(n.state))
		}, less)
	}

	return s
}

// Discipline reports the frontier discipline the searcher builds by default.
func (s *GenericSearcher[S, A, C]) Discipline() frontier.Discipline { return s.name }

// Solve searches p with a frontier built for this run only.
func (s *GenericSearcher[S, A, C]) Solve(p *Problem[S, A, C]) (*Solution[S, A, C], bool, error) {
	return s.solve(p, nil)
}

// solve applies the searcher's options followed by extra, picks the frontier
// and delegates to Solve.
func (s *GenericSearcher[S, A, C]) solve(p *Problem[S, A, C], extra []Option[S, A, C]) (*Solution[S, A, C], bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}
	opts := append(append([]Option[S, A, C]{}, s.opts...), extra...)
	o := buildOptions(opts)

	var f frontier.Frontier[*Node[S, A, C]]
	switch {
	case o.Frontier != nil:
		f = o.Frontier()
	case s.factory != nil:
		f = s.factory(p)
	case s.name == frontier.MinPriority:
		return nil, false, ErrNilHeuristic
	default:
		return nil, false, ErrNilFrontier
	}

	return Solve(p, f, opts...)
}

var _ Searcher[string, string, int] = (*GenericSearcher[string, string, int])(nil)
