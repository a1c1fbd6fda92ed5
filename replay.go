package search

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is returned by Replay when an action matches no successor.
var ErrIllegalAction = errors.New("illegal action")

// Replay applies actions successor by successor from the start state and
// returns the state reached together with the summed step cost. When an
// action appears more than once among a state's successors the first one wins.
func Replay[S comparable, A comparable](problem Problem[S, A], actions []A) (S, float64, error) {
	state := problem.StartState()
	total := 0.0
	for i, action := range actions {
		next, ok := successorFor(problem, state, action)
		if !ok {
			return state, total, fmt.Errorf("step %d (%v): %w", i, action, ErrIllegalAction)
		}
		state = next.State
		total += next.Cost
	}
	return state, total, nil
}

func successorFor[S comparable, A comparable](problem Problem[S, A], state S, action A) (Successor[S, A], bool) {
	for _, successor := range problem.Successors(state) {
		if successor.Action == action {
			return successor, true
		}
	}
	return Successor[S, A]{}, false
}
