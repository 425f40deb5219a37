package search

// Solution is a path from the initial state to a goal state.
//
//   - States: initial..goal inclusive, len ≥ 1.
//   - Actions: len(States)-1 actions, Actions[i] leads from States[i] to States[i+1].
//   - Cost: per-action costs folded along the path with the problem's monoid.
type Solution[S, A, C any] struct {
	States  []S
	Actions []A
	Cost    C
	Stats   Stats // counters of the run that found this solution
}

// Len returns the number of actions on the path.
func (s *Solution[S, A, C]) Len() int { return len(s.Actions) }

// Start returns the initial state.
func (s *Solution[S, A, C]) Start() S { return s.States[0] }

// Goal returns the goal state the path ends in.
func (s *Solution[S, A, C]) Goal() S { return s.States[len(s.States)-1] }

// Stats describes the work done by one search run.
type Stats struct {
	Removed     int // nodes taken out of the frontier
	Expanded    int // nodes whose successors were generated
	Generated   int // successor nodes inserted into the frontier
	Skipped     int // successors discarded because their state was already expanded
	Duplicates  int // removed nodes dropped because their state was already expanded
	MaxFrontier int // largest frontier size observed
}

// buildSolution walks predecessor links from goal back to the root and
// returns the path in forward order.
func buildSolution[S, A, C any](goal *Node[S, A, C], stats Stats) *Solution[S, A, C] {
	n := goal.depth
	states := make([]S, n+1)
	actions := make([]A, n)
	for cur := goal; cur != nil; cur = cur.prev {
		states[cur.depth] = cur.state
		if cur.hasAction {
			actions[cur.depth-1] = cur.action
		}
	}

	return &Solution[S, A, C]{
		States:  states,
		Actions: actions,
		Cost:    goal.cost,
		Stats:   stats,
	}
}
