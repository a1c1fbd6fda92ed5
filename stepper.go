package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[S comparable, A any] struct {
	Current      S
	FrontierSize int
	ExploredSize int
	Expanded     int
	Done         bool
	Found        bool
	// Actions is the plan once Found is set.
	Actions   []A
	StepIndex int
}

// Stepper runs a search one frontier pop at a time.
// It is not safe for concurrent use.
type Stepper[S comparable, A any] struct {
	ctx       context.Context
	problem   Problem[S, A]
	strategy  Strategy
	heuristic Heuristic[S, A]
	options   Options
	runID     string

	// unit-cost bookkeeping
	frontier Frontier[*Node[S, A]]
	explored map[S]struct{}

	// cost-aware bookkeeping
	queue    *PriorityQueue[*Node[S, A]]
	bestCost map[S]float64

	current   *Node[S, A]
	goal      *Node[S, A]
	expanded  int
	stepCount int
	done      bool
	err       error
}

// NewStepper prepares a search of problem with the given strategy.
// heuristic is only consulted by StrategyAStar; nil means NullHeuristic.
// StrategyUnitCost needs a caller frontier and is only reachable through UnitCost.
func NewStepper[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (*Stepper[S, A], error) {
	switch strategy {
	case StrategyDepthFirst:
		return newStepper(ctx, problem, strategy, NewStack[*Node[S, A]](), heuristic, options), nil
	case StrategyBreadthFirst:
		return newStepper(ctx, problem, strategy, NewQueue[*Node[S, A]](), heuristic, options), nil
	case StrategyUniformCost, StrategyAStar:
		return newStepper(ctx, problem, strategy, nil, heuristic, options), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
}

func newStepper[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	strategy Strategy,
	frontier Frontier[*Node[S, A]],
	heuristic Heuristic[S, A],
	options []Option,
) *Stepper[S, A] {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Stepper[S, A]{
		ctx:       ctx,
		problem:   problem,
		strategy:  strategy,
		heuristic: heuristic,
		options:   opts,
		runID:     uuid.NewString(),
	}
	root := newRoot[S, A](problem.StartState())
	s.current = root

	// degenerate success: nothing to search
	if problem.IsGoal(root.State) {
		s.goal = root
		s.done = true
		return s
	}

	if strategy.costAware() {
		s.queue = NewPriorityQueue[*Node[S, A]]()
		s.bestCost = map[S]float64{root.State: 0}
		s.queue.Push(root, 0)
	} else {
		s.frontier = frontier
		s.explored = make(map[S]struct{})
		s.frontier.Push(root)
	}
	return s
}

// RunID identifies this search in logs and traces.
func (s *Stepper[S, A]) RunID() string { return s.runID }

// Strategy returns the strategy the stepper was built with.
func (s *Stepper[S, A]) Strategy() Strategy { return s.strategy }

// Step pops the next node, tests it for the goal and otherwise expands it.
// Once the search is done every further call returns the final snapshot and
// the terminal error, if any.
func (s *Stepper[S, A]) Step() (StepSnapshot[S, A], error) {
	if s.done {
		return s.snapshot(), s.err
	}
	if err := s.ctx.Err(); err != nil {
		return s.finish(err)
	}

	node, ok := s.pop()
	if !ok {
		return s.finish(fmt.Errorf("%s search: %w", s.strategy, ErrSearchExhausted))
	}
	s.stepCount++
	s.current = node

	if s.problem.IsGoal(node.State) {
		s.goal = node
		s.done = true
		s.options.Logger.Debug("goal reached",
			slog.String("run_id", s.runID),
			slog.String("strategy", s.strategy.String()),
			slog.Any("state", node.State),
			slog.Float64("cost", node.Cost),
			slog.Int("expanded", s.expanded),
		)
		return s.snapshot(), nil
	}

	var err error
	if s.strategy.costAware() {
		err = s.expandCostAware(node)
	} else {
		err = s.expandUnitCost(node)
	}
	if err != nil {
		return s.finish(err)
	}
	return s.snapshot(), nil
}

// reserveExpansion counts one expansion, or fails once MaxExpansions is spent.
func (s *Stepper[S, A]) reserveExpansion() error {
	if s.options.MaxExpansions > 0 && s.expanded >= s.options.MaxExpansions {
		return fmt.Errorf("%s search after %d expansions: %w", s.strategy, s.expanded, ErrExpansionLimit)
	}
	s.expanded++
	return nil
}

// pop returns the next node worth looking at. Cost-aware frontiers may hold
// stale copies of a state whose best cost has since dropped; those are
// discarded here.
func (s *Stepper[S, A]) pop() (*Node[S, A], bool) {
	if !s.strategy.costAware() {
		return s.frontier.Pop()
	}
	for {
		node, ok := s.queue.Pop()
		if !ok {
			return nil, false
		}
		if node.Cost > s.bestCost[node.State] {
			continue
		}
		return node, true
	}
}

// expandUnitCost pushes every successor not yet explored. A state can sit on
// the frontier more than once; later copies are skipped when popped after
// the first one has been explored.
func (s *Stepper[S, A]) expandUnitCost(node *Node[S, A]) error {
	if _, seen := s.explored[node.State]; seen {
		return nil
	}
	if err := s.reserveExpansion(); err != nil {
		return err
	}
	pushed := 0
	for _, successor := range s.problem.Successors(node.State) {
		if _, seen := s.explored[successor.State]; seen {
			continue
		}
		s.frontier.Push(node.child(successor))
		pushed++
	}
	s.explored[node.State] = struct{}{}
	s.logExpansion(node, pushed)
	return nil
}

// expandCostAware pushes each successor whose path through node is cheaper
// than any recorded so far.
func (s *Stepper[S, A]) expandCostAware(node *Node[S, A]) error {
	if err := s.reserveExpansion(); err != nil {
		return err
	}
	pushed := 0
	for _, successor := range s.problem.Successors(node.State) {
		proposal := s.propose(node, successor)
		if !s.improves(proposal) {
			continue
		}
		s.queue.Push(proposal.Child, proposal.Priority)
		pushed++
	}
	s.logExpansion(node, pushed)
	return nil
}

func (s *Stepper[S, A]) logExpansion(node *Node[S, A], pushed int) {
	s.options.Logger.Debug("expanded node",
		slog.String("run_id", s.runID),
		slog.Any("state", node.State),
		slog.Float64("cost", node.Cost),
		slog.Int("depth", node.Depth),
		slog.Int("pushed", pushed),
		slog.Int("frontier", s.frontierSize()),
	)
}

func (s *Stepper[S, A]) finish(err error) (StepSnapshot[S, A], error) {
	s.done = true
	s.err = err
	s.options.Logger.Debug("search stopped",
		slog.String("run_id", s.runID),
		slog.String("strategy", s.strategy.String()),
		slog.Int("expanded", s.expanded),
		slog.String("error", err.Error()),
	)
	return s.snapshot(), err
}

// Result summarizes the search so far. Found is false until a goal is popped.
func (s *Stepper[S, A]) Result() Result[A] {
	if s.goal == nil {
		return Result[A]{ExpandedNodes: s.expanded}
	}
	return Result[A]{
		Actions:       s.goal.Path(),
		Cost:          s.goal.Cost,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}

func (s *Stepper[S, A]) snapshot() StepSnapshot[S, A] {
	snapshot := StepSnapshot[S, A]{
		Current:      s.current.State,
		FrontierSize: s.frontierSize(),
		ExploredSize: s.exploredSize(),
		Expanded:     s.expanded,
		Done:         s.done,
		Found:        s.goal != nil,
		StepIndex:    s.stepCount,
	}
	if s.goal != nil {
		snapshot.Actions = s.goal.Path()
	}
	return snapshot
}

func (s *Stepper[S, A]) frontierSize() int {
	switch {
	case s.queue != nil:
		return s.queue.Len()
	case s.frontier != nil:
		return s.frontier.Len()
	}
	return 0
}

func (s *Stepper[S, A]) exploredSize() int {
	if s.strategy.costAware() {
		return len(s.bestCost)
	}
	return len(s.explored)
}
