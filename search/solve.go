package search

import (
	"log/slog"

	"github.com/jyuhuan/Solid/frontier"
)

// Solve runs best-first search on p, exploring nodes in the order dictated by f.
//
// The root node (initial state, no action, identity cost) is inserted into f;
// then, until f is empty, the next node is removed and goal-tested. A goal
// ends the run with its reconstructed path. Otherwise the node's state is
// marked visited and every action yields a successor whose cost is
// Combine(node cost, action cost); successors whose state was already
// visited are discarded. A removed node whose state was visited meanwhile is
// dropped without re-expansion.
//
// Returns:
//
//   - (solution, true, nil) when a goal is removed from the frontier.
//   - (nil, false, nil) when the frontier empties without reaching a goal.
//   - (nil, false, err) when p fails Validate or f is nil.
//
// f must be empty and is owned by the run. The WithFrontier option has no
// effect here; it is honoured by the presets and Searchers. A
// WithFrontierWrapper option decorates f. Solve does not
// terminate on an infinite state space without a reachable goal.
func Solve[S comparable, A, C any](
	p *Problem[S, A, C],
	f frontier.Frontier[*Node[S, A, C]],
	opts ...Option[S, A, C],
) (*Solution[S, A, C], bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}
	if f == nil {
		return nil, false, ErrNilFrontier
	}

	o := buildOptions(opts)
	if o.WrapFrontier != nil {
		if f = o.WrapFrontier(f); f == nil {
			return nil, false, ErrNilFrontier
		}
	}

	r := &runner[S, A, C]{
		p:       p,
		f:       f,
		opts:    o,
		visited: make(map[S]struct{}),
	}
	goal := r.run()
	if r.opts.Stats != nil {
		*r.opts.Stats = r.stats
	}
	if goal == nil {
		r.opts.Logger.Debug("search exhausted",
			slog.Int("expanded", r.stats.Expanded),
			slog.Int("generated", r.stats.Generated))
		return nil, false, nil
	}
	r.opts.Logger.Debug("search reached goal",
		slog.Any("goal", goal.state),
		slog.Int("depth", goal.depth),
		slog.Any("cost", goal.cost),
		slog.Int("expanded", r.stats.Expanded))

	return buildSolution(goal, r.stats), true, nil
}

// runner holds the mutable state of a single Solve execution.
type runner[S comparable, A, C any] struct {
	p       *Problem[S, A, C]
	f       frontier.Frontier[*Node[S, A, C]]
	opts    Options[S, A, C]
	visited map[S]struct{}
	stats   Stats
}

// run drives the expansion loop and returns the first goal node removed
// from the frontier, or nil once the frontier is exhausted.
func (r *runner[S, A, C]) run() *Node[S, A, C] {
	r.opts.Logger.Debug("search started", slog.Any("initial", r.p.InitialState))
	r.insert(newRoot[S, A, C](r.p.InitialState, r.p.Monoid.Identity()))

	for !r.f.IsEmpty() {
		cur := r.f.RemoveNext()
		r.stats.Removed++

		// Goal test at removal time keeps Dijkstra and A* optimal.
		if r.p.IsGoal(cur.state) {
			return cur
		}
		if _, seen := r.visited[cur.state]; seen {
			r.stats.Duplicates++
			continue
		}
		r.visited[cur.state] = struct{}{}
		r.expand(cur)
	}

	return nil
}

// expand generates the successors of cur and inserts the unvisited ones.
func (r *runner[S, A, C]) expand(cur *Node[S, A, C]) {
	r.stats.Expanded++
	r.opts.OnExpand(cur)

	for _, action := range r.p.Actions(cur.state) {
		next := r.p.Transition(cur.state, action)
		if _, seen := r.visited[next]; seen {
			r.stats.Skipped++
			r.opts.OnSkip(cur, next)
			continue
		}
		cost := r.p.Monoid.Combine(cur.cost, r.p.Cost(cur.state, action))
		n := cur.child(next, action, cost)
		r.insert(n)
		r.stats.Generated++
		r.opts.OnInsert(n)
	}
}

// insert adds n to the frontier and tracks the peak frontier size.
func (r *runner[S, A, C]) insert(n *Node[S, A, C]) {
	r.f.Insert(n)
	if size := r.f.Len(); size > r.stats.MaxFrontier {
		r.stats.MaxFrontier = size
	}
}
