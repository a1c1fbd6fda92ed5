package search

import (
	"fmt"
	"strings"
)

// Strategy names a frontier discipline.
type Strategy int

const (
	StrategyDepthFirst Strategy = iota
	StrategyBreadthFirst
	StrategyUniformCost
	StrategyAStar
	// StrategyUnitCost labels UnitCost runs over a caller-supplied frontier.
	StrategyUnitCost
)

var strategyNames = map[Strategy]string{
	StrategyDepthFirst:   "dfs",
	StrategyBreadthFirst: "bfs",
	StrategyUniformCost:  "ucs",
	StrategyAStar:        "astar",
	StrategyUnitCost:     "unit-cost",
}

func (strategy Strategy) String() string {
	if name, ok := strategyNames[strategy]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(strategy))
}

// costAware reports whether the strategy orders its frontier by path cost.
func (strategy Strategy) costAware() bool {
	return strategy == StrategyUniformCost || strategy == StrategyAStar
}

// ParseStrategy accepts the short names printed by String as well as a few
// long spellings ("depth-first", "uniform-cost", "a*").
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return StrategyDepthFirst, nil
	case "bfs", "breadth-first", "breadthfirst":
		return StrategyBreadthFirst, nil
	case "ucs", "uniform-cost", "uniformcost":
		return StrategyUniformCost, nil
	case "astar", "a*", "a-star":
		return StrategyAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
