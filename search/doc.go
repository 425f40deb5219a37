// Package search implements a generic best-first search engine: one expansion
// loop whose exploration order is decided by a pluggable frontier.
//
// What
//
//   - Problem describes a state space: initial state, goal predicate, action
//     generator, transition function, per-action cost and the monoid that folds
//     action costs into path costs.
//   - Solve runs the expansion loop over any frontier.Frontier.
//   - Presets wire the standard disciplines into Solve:
//   - DepthFirst   – LIFO stack
//   - BreadthFirst – FIFO queue
//   - Dijkstra     – min-heap keyed by accumulated cost
//   - AStar        – min-heap keyed by Combine(accumulated cost, heuristic)
//   - Searcher values (NewDepthFirstSearcher, ...) carry a preset and its
//     options so one strategy can be applied to many problems.
//   - Solution holds the states, actions and cost of the path found, plus run Stats.
//
// Why
//
//	DFS, BFS, Dijkstra and A* differ only in which unexplored node is taken
//	next. Keeping the loop in one place means the visited-set, the goal test
//	and path reconstruction are written and tested once, for any state,
//	action and cost types.
//
// Algorithm
//
//  1. Insert the root node (initial state, identity cost).
//  2. While the frontier is not empty: remove the next node; if its state is
//     a goal, rebuild the path and stop. Otherwise mark the state visited and
//     insert one successor per action whose resulting state is unvisited.
//  3. An empty frontier means there is no solution.
//
// The goal is tested when a node is removed, not when it is generated; this
// is what makes the first goal removed by Dijkstra and A* a cheapest one.
// A visited state is never expanded again, even if reached later at a lower
// cost, which is safe as long as accumulated costs never decrease.
//
// Determinism
//
//	Actions are explored in the order the Actions function returns them and
//	every frontier is deterministic, so repeated runs on the same problem
//	return identical solutions.
//
// Complexity (V = reachable states, E = generated transitions)
//
//   - DFS, BFS:        O(V + E) time
//   - Dijkstra, A*:    O((V + E) log E) time
//   - Memory:          O(V + E) for the visited set and frontier
//
// Options
//
//   - WithFrontier(factory):   replace a preset's frontier (tie-breaking).
//   - WithFrontierWrapper(fn): decorate the frontier in use (instrumentation).
//   - WithOnExpand(fn):        hook before a node's successors are generated.
//   - WithOnInsert(fn):        hook after a successor is inserted.
//   - WithOnSkip(fn):          hook when a successor is discarded as visited.
//   - WithLogger(l):           debug tracing via log/slog.
//   - WithStats(dst):          receive run counters even when no solution exists.
//
// Errors
//
//	"No solution" is reported as ok == false, never as an error. Errors are
//	returned only for invalid input: ErrNilProblem, ErrNilGoal, ErrNilActions,
//	ErrNilTransition, ErrNilCost, ErrNilMonoid, ErrNilFrontier, ErrNilHeuristic.
//
// Usage
//
//	p, err := search.NewNumericProblem(
//	    "a",
//	    func(s string) bool { return s == "d" },
//	    func(s string) []string { return next[s] },
//	    func(_ string, a string) string { return a },
//	    func(s, a string) int { return weight[s+a] },
//	)
//	if err != nil {
//	    // handle
//	}
//	sol, ok, err := search.Dijkstra(p)
//
// Concurrency
//
//	A run is single-threaded and owns its frontier and visited set. Searchers
//	hold no per-run state and may be shared between goroutines as long as the
//	Problem functions and option hooks are themselves safe to share.
package search
