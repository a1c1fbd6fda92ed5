// Package telemetry holds the tracer and meter shared by the search entry
// points. Both resolve through the global otel providers, so nothing is
// exported unless the embedding program installs an SDK.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/pdrpinto/search"

// Outcome labels for finished searches.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeAborted   = "aborted"
)

var (
	runsTotal     metric.Int64Counter
	expandedNodes metric.Int64Histogram
	duration      metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments on first use. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		runsTotal, err = meter.Int64Counter(
			"search_runs_total",
			metric.WithDescription("Total number of search invocations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expandedNodes, err = meter.Int64Histogram(
			"search_expanded_nodes",
			metric.WithDescription("Nodes expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		duration, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Wall time of a search invocation"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// StartSearchSpan opens the span covering one search invocation.
func StartSearchSpan(ctx context.Context, strategy, runID string) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, "search."+strategy,
		trace.WithAttributes(
			attribute.String("search.strategy", strategy),
			attribute.String("search.run_id", runID),
		),
	)
}

// EndSearchSpan records the result attributes and closes span.
func EndSearchSpan(span trace.Span, expanded int, found bool, err error) {
	span.SetAttributes(
		attribute.Int("search.expanded", expanded),
		attribute.Bool("search.found", found),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// RecordSearch records metrics for a finished search.
func RecordSearch(ctx context.Context, strategy, outcome string, expanded int, elapsed time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	)
	runsTotal.Add(ctx, 1, attrs)
	expandedNodes.Record(ctx, int64(expanded), attrs)
	duration.Record(ctx, elapsed.Seconds(), attrs)
}
