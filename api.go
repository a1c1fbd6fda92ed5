package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pdrpinto/search/internal/telemetry"
)

var (
	// ErrSearchExhausted is returned when the frontier empties before any
	// goal state is reached. It does not distinguish a malformed problem
	// from one without a solution.
	ErrSearchExhausted = errors.New("no goal found")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a search.
	ErrExpansionLimit = errors.New("expansion limit reached")

	// ErrUnknownStrategy is returned for a strategy name or value that has
	// no built-in frontier.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrNilFrontier is returned by UnitCost when no frontier is supplied.
	ErrNilFrontier = errors.New("nil frontier")
)

// Result contains the outcome of a search
type Result[A any] struct {
	// Actions leads from the start state to a goal. Empty, not nil, when
	// the start state is itself a goal.
	Actions []A
	// Cost is the cumulative step cost of Actions.
	Cost          float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger *slog.Logger
	// MaxExpansions bounds the number of expanded nodes; 0 means unlimited.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithLogger routes per-expansion debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit once limit
// nodes have been expanded.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// DepthFirst searches the deepest nodes in the search tree first.
func DepthFirst[S comparable, A any](ctx context.Context, problem Problem[S, A], options ...Option) (Result[A], error) {
	return UnitCost(ctx, problem, NewStack[*Node[S, A]](), options...)
}

// BreadthFirst searches the shallowest nodes in the search tree first.
func BreadthFirst[S comparable, A any](ctx context.Context, problem Problem[S, A], options ...Option) (Result[A], error) {
	return UnitCost(ctx, problem, NewQueue[*Node[S, A]](), options...)
}

// UnitCost is the frontier-parameterized driver behind DepthFirst and
// BreadthFirst. frontier must be empty; its pop order alone decides the
// traversal. Each state is expanded at most once.
func UnitCost[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	frontier Frontier[*Node[S, A]],
	options ...Option,
) (Result[A], error) {
	if frontier == nil {
		return Result[A]{}, ErrNilFrontier
	}
	strategy := StrategyUnitCost
	switch frontier.(type) {
	case *Stack[*Node[S, A]]:
		strategy = StrategyDepthFirst
	case *Queue[*Node[S, A]]:
		strategy = StrategyBreadthFirst
	}
	return run(ctx, newStepper(ctx, problem, strategy, frontier, nil, options))
}

// UniformCost searches the node of least cumulative path cost first.
func UniformCost[S comparable, A any](ctx context.Context, problem Problem[S, A], options ...Option) (Result[A], error) {
	return run(ctx, newStepper(ctx, problem, StrategyUniformCost, nil, nil, options))
}

// AStar searches the node with the lowest path cost plus heuristic estimate
// first. A nil heuristic behaves as NullHeuristic. The heuristic only orders
// the frontier; Result.Cost is the plain path cost.
func AStar[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[A], error) {
	return run(ctx, newStepper(ctx, problem, StrategyAStar, nil, heuristic, options))
}

// Run executes strategy on problem. It is the dynamic counterpart of the
// typed entry points, for callers that pick the strategy at runtime.
func Run[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[A], error) {
	stepper, err := NewStepper(ctx, problem, strategy, heuristic, options...)
	if err != nil {
		return Result[A]{}, err
	}
	return run(ctx, stepper)
}

// run drives stepper to completion inside a telemetry span.
func run[S comparable, A any](ctx context.Context, stepper *Stepper[S, A]) (Result[A], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	ctx, span := telemetry.StartSearchSpan(ctx, stepper.strategy.String(), stepper.runID)

	var err error
	for {
		var snapshot StepSnapshot[S, A]
		snapshot, err = stepper.Step()
		if err != nil || snapshot.Done {
			break
		}
	}

	result := stepper.Result()
	outcome := telemetry.OutcomeFound
	switch {
	case errors.Is(err, ErrSearchExhausted):
		outcome = telemetry.OutcomeExhausted
	case err != nil:
		outcome = telemetry.OutcomeAborted
	}
	telemetry.RecordSearch(ctx, stepper.strategy.String(), outcome, result.ExpandedNodes, time.Since(started))
	telemetry.EndSearchSpan(span, result.ExpandedNodes, result.Found, err)

	return result, err
}
