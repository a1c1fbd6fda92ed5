package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdrpinto/search"
)

// runOptions turns the global flags into search options and installs the
// telemetry providers they ask for. The returned shutdown flushes them.
func runOptions(ctx context.Context, flags *globalFlags, stderr io.Writer) (search.Strategy, []search.Option, func(), error) {
	strategy, err := search.ParseStrategy(flags.strategy)
	if err != nil {
		return 0, nil, nil, err
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	shutdown, err := setupTelemetry(ctx, flags, stderr)
	if err != nil {
		return 0, nil, nil, err
	}
	flush := func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}

	options := []search.Option{
		search.WithLogger(logger),
		search.WithMaxExpansions(flags.maxExpansions),
	}
	return strategy, options, flush, nil
}

func printResult[A any](w io.Writer, strategy search.Strategy, result search.Result[A]) {
	fmt.Fprintf(w, "strategy: %s\n", strategy)
	fmt.Fprintf(w, "actions:  %v\n", result.Actions)
	fmt.Fprintf(w, "cost:     %g\n", result.Cost)
	fmt.Fprintf(w, "expanded: %d\n", result.ExpandedNodes)
}
