package search

import (
	"errors"

	"github.com/jyuhuan/Solid/monoid"
)

// Sentinel errors returned by Solve, the presets and NewProblem.
var (
	// ErrNilProblem indicates that a nil *Problem was passed to a solver.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilGoal indicates that Problem.IsGoal is nil.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNilActions indicates that Problem.Actions is nil.
	ErrNilActions = errors.New("search: action generator is nil")

	// ErrNilTransition indicates that Problem.Transition is nil.
	ErrNilTransition = errors.New("search: transition function is nil")

	// ErrNilCost indicates that Problem.Cost is nil.
	ErrNilCost = errors.New("search: cost function is nil")

	// ErrNilMonoid indicates that Problem.Monoid is nil.
	ErrNilMonoid = errors.New("search: cost monoid is nil")

	// ErrNilFrontier indicates that Solve received a nil frontier, or that a
	// frontier factory returned nil.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrNilHeuristic indicates that A* was invoked without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")
)

// Problem is the declarative description of a state-space search instance.
//
// All functions must be pure and deterministic. Actions may return an empty
// slice, meaning the state has no successors. Monoid folds per-action costs
// into path costs; it must be associative with a two-sided identity, and for
// Dijkstra and A* it must never decrease an accumulated cost.
type Problem[S comparable, A, C any] struct {
	InitialState S                // state the search starts from
	IsGoal       func(S) bool     // reports whether a state is a goal
	Actions      func(S) []A      // actions available in a state, in exploration order
	Transition   func(S, A) S     // state reached by applying an action
	Cost         func(S, A) C     // cost of applying an action in a state
	Monoid       monoid.Monoid[C] // cost-accumulation rule
}

// NewProblem builds a Problem and validates that no field is nil.
func NewProblem[S comparable, A, C any](
	initial S,
	isGoal func(S) bool,
	actions func(S) []A,
	transition func(S, A) S,
	cost func(S, A) C,
	m monoid.Monoid[C],
) (*Problem[S, A, C], error) {
	p := &Problem[S, A, C]{
		InitialState: initial,
		IsGoal:       isGoal,
		Actions:      actions,
		Transition:   transition,
		Cost:         cost,
		Monoid:       m,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewNumericProblem is NewProblem for numeric costs accumulated by (0, +).
func NewNumericProblem[S comparable, A any, C monoid.Number](
	initial S,
	isGoal func(S) bool,
	actions func(S) []A,
	transition func(S, A) S,
	cost func(S, A) C,
) (*Problem[S, A, C], error) {
	return NewProblem(initial, isGoal, actions, transition, cost, monoid.Sum[C]())
}

// UnitCost is a cost function charging 1 for every action. Together with
// NewNumericProblem it turns path cost into hop count.
func UnitCost[S, A any, C monoid.Number](S, A) C { return 1 }

// Validate reports the first nil field of p, checked in declaration order.
// It is safe to call on a nil receiver.
func (p *Problem[S, A, C]) Validate() error {
	switch {
	case p == nil:
		return ErrNilProblem
	case p.IsGoal == nil:
		return ErrNilGoal
	case p.Actions == nil:
		return ErrNilActions
	case p.Transition == nil:
		return ErrNilTransition
	case p.Cost == nil:
		return ErrNilCost
	case p.Monoid == nil:
		return ErrNilMonoid
	}

	return nil
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// A* is cost-optimal only when the heuristic is admissible (never
// overestimates); this is assumed, not verified.
type Heuristic[S, C any] func(S) C
