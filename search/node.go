package search

// Node is an exploration record: a state together with the chain of actions
// that reached it. Nodes form a backward-only tree rooted at the initial
// state; siblings share their ancestors through the predecessor pointer.
// Nodes are immutable once created.
type Node[S, A, C any] struct {
	state     S
	action    A
	hasAction bool
	cost      C
	prev      *Node[S, A, C]
	depth     int
}

// newRoot returns the record of the initial state.
func newRoot[S, A, C any](state S, identity C) *Node[S, A, C] {
	return &Node[S, A, C]{state: state, cost: identity}
}

// child returns the record reached from n by action, with accumulated cost.
func (n *Node[S, A, C]) child(state S, action A, cost C) *Node[S, A, C] {
	return &Node[S, A, C]{
		state:     state,
		action:    action,
		hasAction: true,
		cost:      cost,
		prev:      n,
		depth:     n.depth + 1,
	}
}

// State returns the state this record reached.
func (n *Node[S, A, C]) State() S { return n.state }

// Action returns the action that produced this record.
// ok is false only for the root.
func (n *Node[S, A, C]) Action() (action A, ok bool) { return n.action, n.hasAction }

// Cost returns the accumulated cost from the initial state.
func (n *Node[S, A, C]) Cost() C { return n.cost }

// Predecessor returns the record this one was expanded from, or nil for the root.
func (n *Node[S, A, C]) Predecessor() *Node[S, A, C] { return n.prev }

// Depth returns the number of actions between the root and n.
func (n *Node[S, A, C]) Depth() int { return n.depth }
