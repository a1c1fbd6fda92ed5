// Package search provides generic, problem-agnostic graph search.
//
// A caller describes its problem through the Problem interface (start state,
// goal test, successor generator, action cost) and picks a strategy:
//
//   - DepthFirst and BreadthFirst: unit-cost search driven by a Stack or a Queue.
//   - UniformCost: frontier ordered by cumulative path cost.
//   - AStar: frontier ordered by path cost plus a heuristic estimate.
//
// Every entry point returns a Result holding the plan as an ordered slice of
// actions, or ErrSearchExhausted when the frontier runs dry first.
//
// The Stepper type runs the same searches one expansion at a time, for UIs or
// debugging tools that want to observe the frontier as it evolves.
package search
