package search

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_WalksUniformCost(t *testing.T) {
	problem := newEdgeProblem("A", "C").
		edge("A", "B", 1).edge("B", "C", 5).edge("A", "C", 3)

	stepper, err := NewStepper[string, string](context.Background(), problem, StrategyUniformCost, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, stepper.RunID())
	assert.Equal(t, StrategyUniformCost, stepper.Strategy())

	first, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, 1, first.StepIndex)
	assert.Equal(t, 2, first.FrontierSize)
	assert.Equal(t, 3, first.ExploredSize)
	assert.False(t, first.Done)

	second, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, "B", second.Current)
	assert.Equal(t, 2, second.Expanded)

	last, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, "C", last.Current)
	assert.True(t, last.Done)
	assert.True(t, last.Found)
	assert.Equal(t, []string{"A->C"}, last.Actions)

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, last, again)
	assert.Equal(t, 3.0, stepper.Result().Cost)
}

func TestStepper_ExhaustedIsSticky(t *testing.T) {
	problem := newEdgeProblem("A", "Z")
	stepper, err := NewStepper[string, string](context.Background(), problem, StrategyDepthFirst, nil)
	require.NoError(t, err)

	_, err = stepper.Step()
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.ErrorIs(t, err, ErrSearchExhausted)
	assert.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)

	_, err = stepper.Step()
	require.ErrorIs(t, err, ErrSearchExhausted)
}

func TestStepper_UnknownStrategy(t *testing.T) {
	_, err := NewStepper[string, string](context.Background(), newEdgeProblem("A"), Strategy(42), nil)
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "Strategy(42)")
}

func TestStepper_LogsExpansions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	problem := newEdgeProblem("A", "B").edge("A", "B", 1)

	_, err := BreadthFirst(context.Background(), problem, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "expanded node")
	assert.Contains(t, buf.String(), "goal reached")
	assert.Contains(t, buf.String(), "strategy=bfs")
}
