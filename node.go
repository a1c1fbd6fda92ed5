package search

import "slices"

// Node is an immutable snapshot of a search tree vertex.
// Parent is a read-only back-reference; the root has a nil Parent.
type Node[S comparable, A any] struct {
	State  S
	Action A
	// Cost is the cumulative path cost from the start state.
	Cost   float64
	Depth  int
	Parent *Node[S, A]
}

func newRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// child builds the node reached from n through successor.
func (n *Node[S, A]) child(successor Successor[S, A]) *Node[S, A] {
	return &Node[S, A]{
		State:  successor.State,
		Action: successor.Action,
		Cost:   n.Cost + successor.Cost,
		Depth:  n.Depth + 1,
		Parent: n,
	}
}

// IsRoot reports whether n is the start node.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Path walks parent references back to the root and returns the actions in
// traversal order. The root yields an empty, non-nil slice.
func (n *Node[S, A]) Path() []A {
	actions := make([]A, 0, n.Depth)
	for current := n; !current.IsRoot(); current = current.Parent {
		actions = append(actions, current.Action)
	}
	slices.Reverse(actions)
	return actions
}
