package search

// relaxProposal is the candidate produced for one successor of an expanded
// node: the child it would push and the frontier priority it would carry.
type relaxProposal[S comparable, A any] struct {
	Child    *Node[S, A]
	Priority float64
}

// propose builds the child for successor. Priority is the cumulative path
// cost, plus the heuristic estimate for A*; the child's Cost never includes
// the heuristic.
func (s *Stepper[S, A]) propose(parent *Node[S, A], successor Successor[S, A]) relaxProposal[S, A] {
	child := parent.child(successor)
	priority := child.Cost
	if s.strategy == StrategyAStar {
		priority += s.heuristic(child.State, s.problem)
	}
	return relaxProposal[S, A]{Child: child, Priority: priority}
}

// improves reports whether proposal beats the best cost recorded for its
// state, and records it when it does.
func (s *Stepper[S, A]) improves(proposal relaxProposal[S, A]) bool {
	best, seen := s.bestCost[proposal.Child.State]
	if seen && proposal.Child.Cost >= best {
		return false
	}
	s.bestCost[proposal.Child.State] = proposal.Child.Cost
	return true
}
