package search

// Problem is generic over state type S and action type A.
// S must be comparable so it can key the explored bookkeeping.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S
	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool
	// Successors lists the states reachable from state in one action, in the
	// order the search should consider them.
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a plan. It is not used by the
	// search itself; callers use it to validate returned plans.
	CostOfActions(actions []A) float64
}

// Successor is one outgoing transition.
// Cost must be non-negative for UniformCost and AStar to be optimal.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic always returns zero, turning AStar into UniformCost.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }
