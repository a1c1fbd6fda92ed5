package graph

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdrpinto/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdge(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 4))
	assert.Equal(t, 3, g.Len())

	successors := g.Successors("A")
	require.Len(t, successors, 2)
	assert.Equal(t, search.Successor[string, string]{State: "B", Action: "B", Cost: 4}, successors[0])
	assert.Equal(t, "C", successors[1].State)
	assert.Empty(t, g.Successors("B"))

	require.ErrorIs(t, g.AddEdge("A", "A", 1), ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("A", "D", -1), ErrNegativeCost)
	require.ErrorIs(t, g.AddEdge("A", "D", math.NaN()), ErrNegativeCost)
	require.ErrorIs(t, g.SetEstimate("Z", 1), ErrUnknownVertex)
}

func TestGraph_CostOfActions(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "line.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 6.0, g.CostOfActions([]string{"B", "C"}))
	assert.Equal(t, 3.0, g.CostOfActions([]string{"C"}))
	assert.Zero(t, g.CostOfActions(nil))
	assert.True(t, math.IsInf(g.CostOfActions([]string{"C", "B"}), 1))
	assert.True(t, math.IsInf(g.CostOfActions([]string{"Q"}), 1))
}

func TestLoad_LineGraph(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "line.yaml"))
	require.NoError(t, err)

	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.True(t, g.IsGoal("C"))
	assert.Equal(t, 2.0, g.Heuristic()("B", g))
	assert.Zero(t, g.Heuristic()("C", g))

	ucs, err := search.UniformCost(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ucs.Actions)
	assert.Equal(t, 3.0, ucs.Cost)

	astar, err := search.AStar(context.Background(), g, g.Heuristic())
	require.NoError(t, err)
	assert.Equal(t, ucs.Actions, astar.Actions)

	cost, err := g.ShortestPathCost("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, cost)
	_, err = g.ShortestPathCost("A", "Q")
	require.ErrorIs(t, err, ErrUnknownVertex)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "no start", yaml: "goals: [A]", wantErr: "Start"},
		{name: "no goals", yaml: "start: A", wantErr: "Goals"},
		{name: "negative cost", yaml: "start: A\ngoals: [B]\nedges: [{from: A, to: B, cost: -2}]", wantErr: "Cost"},
		{name: "self loop", yaml: "start: A\ngoals: [B]\nedges: [{from: A, to: A, cost: 1}]", wantErr: "To"},
		{name: "negative estimate", yaml: "start: A\ngoals: [B]\nheuristic: {A: -1}", wantErr: "Heuristic"},
		{name: "unknown field", yaml: "start: A\ngoals: [B]\nweights: {}", wantErr: "weights"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_EstimateForUnknownVertex(t *testing.T) {
	_, err := Parse(strings.NewReader("start: A\ngoals: [B]\nheuristic: {Z: 1}"))
	require.ErrorIs(t, err, ErrUnknownVertex)
}

func TestGraph_CostOfActionsWithoutStart(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("A", "B", 2))
	g.AddGoal("B")

	// A holds gonum ID 0, which the unset start must not alias
	assert.True(t, math.IsInf(g.CostOfActions([]string{"B"}), 1))
	assert.True(t, math.IsInf(g.CostOfActions(nil), 1))

	g.SetStart("A")
	assert.Equal(t, 2.0, g.CostOfActions([]string{"B"}))
}

func TestGraph_NoStart(t *testing.T) {
	g := New()
	g.AddGoal("B")
	_, err := g.Start()
	require.ErrorIs(t, err, ErrNoStart)
	_, err = g.GoalDistance()
	require.ErrorIs(t, err, ErrNoStart)
}

// randomGraph builds a graph with integer weights so path sums are exact.
func randomGraph(rng *rand.Rand, vertices, edges int) *Graph {
	g := New()
	name := func(i int) string { return fmt.Sprintf("v%d", i) }
	for i := 0; i < vertices; i++ {
		g.AddVertex(name(i))
	}
	for i := 0; i < edges; i++ {
		from, to := rng.IntN(vertices), rng.IntN(vertices)
		if from == to {
			continue
		}
		_ = g.AddEdge(name(from), name(to), float64(rng.IntN(10)))
	}
	g.SetStart(name(0))
	g.AddGoal(name(vertices - 1))
	return g
}

func TestUniformCost_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		g := randomGraph(rng, 12, 30)
		want, err := g.GoalDistance()
		require.NoError(t, err)

		result, err := search.UniformCost(context.Background(), g)
		if math.IsInf(want, 1) {
			require.ErrorIs(t, err, search.ErrSearchExhausted, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, want, result.Cost, "trial %d", trial)
		assert.Equal(t, want, g.CostOfActions(result.Actions), "trial %d", trial)

		astar, err := search.AStar(context.Background(), g, search.NullHeuristic[string, string])
		require.NoError(t, err)
		assert.Equal(t, result.Actions, astar.Actions, "trial %d", trial)
	}
}

func TestUnitCost_PlansAreValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 100; trial++ {
		g := randomGraph(rng, 10, 20)
		want, err := g.GoalDistance()
		require.NoError(t, err)

		for _, strategy := range []search.Strategy{search.StrategyDepthFirst, search.StrategyBreadthFirst} {
			result, err := search.Run(context.Background(), g, strategy, g.Heuristic())
			if math.IsInf(want, 1) {
				require.ErrorIs(t, err, search.ErrSearchExhausted)
				continue
			}
			require.NoError(t, err)
			end, cost, err := search.Replay[string, string](g, result.Actions)
			require.NoError(t, err)
			assert.True(t, g.IsGoal(end))
			assert.Equal(t, cost, result.Cost)
			assert.GreaterOrEqual(t, cost, want)
		}
	}
}
