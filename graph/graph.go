// Package graph provides an explicit weighted directed graph that satisfies
// search.Problem. Vertices are named by strings and an action is the name of
// the vertex it moves to.
//
// Storage is a gonum simple.WeightedDirectedGraph; successor order follows
// edge insertion order so searches over a Graph are deterministic.
package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdrpinto/search"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for graph construction.
var (
	// ErrUnknownVertex is returned when a name does not refer to a vertex.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrNegativeCost is returned for edges with a negative or NaN weight.
	ErrNegativeCost = errors.New("edge cost must be non-negative")

	// ErrSelfLoop is returned for an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("self loop")

	// ErrNoStart is returned when a search is requested before SetStart.
	ErrNoStart = errors.New("start vertex not set")
)

// Graph is a search problem over named vertices. Build it single-threaded;
// once built it is safe to search from multiple goroutines.
type Graph struct {
	weighted *simple.WeightedDirectedGraph
	ids      map[string]int64
	names    map[int64]string
	// outgoing keeps edge targets in insertion order
	outgoing map[string][]string

	start     string
	hasStart  bool
	goals     map[string]struct{}
	estimates map[string]float64
}

var _ search.Problem[string, string] = (*Graph)(nil)

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		weighted:  simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		ids:       make(map[string]int64),
		names:     make(map[int64]string),
		outgoing:  make(map[string][]string),
		goals:     make(map[string]struct{}),
		estimates: make(map[string]float64),
	}
}

// AddVertex adds name if absent and returns its gonum node ID.
func (g *Graph) AddVertex(name string) int64 {
	if id, ok := g.ids[name]; ok {
		return id
	}
	node := g.weighted.NewNode()
	g.weighted.AddNode(node)
	g.ids[name] = node.ID()
	g.names[node.ID()] = name
	return node.ID()
}

// AddEdge adds a directed edge, creating missing endpoints. Adding an edge
// that already exists replaces its cost but keeps its successor position.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == to {
		return fmt.Errorf("%s->%s: %w", from, to, ErrSelfLoop)
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%s->%s cost %v: %w", from, to, cost, ErrNegativeCost)
	}
	fromID, toID := g.AddVertex(from), g.AddVertex(to)
	if !g.weighted.HasEdgeFromTo(fromID, toID) {
		g.outgoing[from] = append(g.outgoing[from], to)
	}
	g.weighted.SetWeightedEdge(g.weighted.NewWeightedEdge(simple.Node(fromID), simple.Node(toID), cost))
	return nil
}

// SetStart marks the start vertex, creating it if needed.
func (g *Graph) SetStart(name string) {
	g.AddVertex(name)
	g.start = name
	g.hasStart = true
}

// AddGoal marks name as a goal vertex, creating it if needed.
func (g *Graph) AddGoal(name string) {
	g.AddVertex(name)
	g.goals[name] = struct{}{}
}

// SetEstimate records a remaining-cost estimate for an existing vertex,
// served by Heuristic.
func (g *Graph) SetEstimate(name string, estimate float64) error {
	if _, ok := g.ids[name]; !ok {
		return fmt.Errorf("estimate for %q: %w", name, ErrUnknownVertex)
	}
	g.estimates[name] = estimate
	return nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.ids) }

// Start returns the start vertex, or ErrNoStart.
func (g *Graph) Start() (string, error) {
	if !g.hasStart {
		return "", ErrNoStart
	}
	return g.start, nil
}

func (g *Graph) StartState() string { return g.start }

func (g *Graph) IsGoal(state string) bool {
	_, ok := g.goals[state]
	return ok
}

func (g *Graph) Successors(state string) []search.Successor[string, string] {
	targets := g.outgoing[state]
	if len(targets) == 0 {
		return nil
	}
	successors := make([]search.Successor[string, string], 0, len(targets))
	for _, target := range targets {
		successors = append(successors, search.Successor[string, string]{
			State:  target,
			Action: target,
			Cost:   g.cost(state, target),
		})
	}
	return successors
}

// CostOfActions sums edge costs along actions from the start vertex.
// An action with no matching edge makes the plan cost +Inf.
func (g *Graph) CostOfActions(actions []string) float64 {
	if !g.hasStart {
		return math.Inf(1)
	}
	current := g.start
	total := 0.0
	for _, next := range actions {
		weight := g.cost(current, next)
		if math.IsInf(weight, 1) {
			return weight
		}
		total += weight
		current = next
	}
	return total
}

// cost is the weight of the edge from -> to, +Inf when either name is not a
// vertex or no such edge exists.
func (g *Graph) cost(from, to string) float64 {
	fromID, fromOK := g.ids[from]
	toID, toOK := g.ids[to]
	if !fromOK || !toOK || from == to {
		return math.Inf(1)
	}
	weight, ok := g.weighted.Weight(fromID, toID)
	if !ok {
		return math.Inf(1)
	}
	return weight
}

// Heuristic serves the estimates recorded with SetEstimate; vertices
// without one estimate zero.
func (g *Graph) Heuristic() search.Heuristic[string, string] {
	return func(state string, _ search.Problem[string, string]) float64 {
		return g.estimates[state]
	}
}

// ShortestPathCost runs Dijkstra from one vertex and returns the cheapest
// cost to the other, +Inf when unreachable.
func (g *Graph) ShortestPathCost(from, to string) (float64, error) {
	fromID, ok := g.ids[from]
	if !ok {
		return 0, fmt.Errorf("%q: %w", from, ErrUnknownVertex)
	}
	toID, ok := g.ids[to]
	if !ok {
		return 0, fmt.Errorf("%q: %w", to, ErrUnknownVertex)
	}
	shortest := path.DijkstraFrom(simple.Node(fromID), g.weighted)
	return shortest.WeightTo(toID), nil
}

// GoalDistance is the cheapest cost from the start vertex to any goal,
// +Inf when no goal is reachable.
func (g *Graph) GoalDistance() (float64, error) {
	start, err := g.Start()
	if err != nil {
		return 0, err
	}
	shortest := path.DijkstraFrom(simple.Node(g.ids[start]), g.weighted)
	best := math.Inf(1)
	for goal := range g.goals {
		best = math.Min(best, shortest.WeightTo(g.ids[goal]))
	}
	return best, nil
}
