// Package grid parses text mazes into search problems.
//
// A layout uses '%' for walls, 'P' for the start, '.' for goals and any other
// character for open floor. Every move costs one.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pdrpinto/search"
)

var (
	ErrNoStart       = errors.New("layout has no start cell")
	ErrMultipleStart = errors.New("layout has more than one start cell")
	ErrNoGoal        = errors.New("layout has no goal cell")
)

// Point is a cell position; Y grows downward, row 0 is the first line.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is a move between orthogonally adjacent cells.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// directions is the successor order.
var directions = []Direction{North, South, East, West}

func (d Direction) offset() Point {
	switch d {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case West:
		return Point{-1, 0}
	}
	return Point{}
}

// Maze is a grid search problem.
type Maze struct {
	Width, Height int
	walls         map[Point]bool
	start         Point
	goals         map[Point]struct{}
}

var _ search.Problem[Point, Direction] = (*Maze)(nil)

// Parse reads a layout from r. Rows may be ragged; missing cells are walls.
func Parse(r io.Reader) (*Maze, error) {
	maze := &Maze{
		walls: make(map[Point]bool),
		goals: make(map[Point]struct{}),
	}
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		rows = append(rows, line)
		maze.Width = max(maze.Width, len(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	maze.Height = len(rows)

	hasStart := false
	for y, row := range rows {
		for x := 0; x < maze.Width; x++ {
			cell := byte('%')
			if x < len(row) {
				cell = row[x]
			}
			p := Point{x, y}
			switch cell {
			case '%':
				maze.walls[p] = true
			case 'P':
				if hasStart {
					return nil, fmt.Errorf("%v: %w", p, ErrMultipleStart)
				}
				maze.start = p
				hasStart = true
			case '.':
				maze.goals[p] = struct{}{}
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if len(maze.goals) == 0 {
		return nil, ErrNoGoal
	}
	return maze, nil
}

// MustParse is Parse for layouts known to be valid, such as test fixtures.
func MustParse(layout string) *Maze {
	maze, err := Parse(strings.NewReader(layout))
	if err != nil {
		panic(err)
	}
	return maze
}

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height && !m.walls[p]
}

// Goals returns the goal cells in row-major order.
func (m *Maze) Goals() []Point {
	goals := make([]Point, 0, len(m.goals))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if _, ok := m.goals[Point{x, y}]; ok {
				goals = append(goals, Point{x, y})
			}
		}
	}
	return goals
}

func (m *Maze) StartState() Point { return m.start }

func (m *Maze) IsGoal(state Point) bool {
	_, ok := m.goals[state]
	return ok
}

func (m *Maze) Successors(state Point) []search.Successor[Point, Direction] {
	successors := make([]search.Successor[Point, Direction], 0, len(directions))
	for _, direction := range directions {
		offset := direction.offset()
		next := Point{state.X + offset.X, state.Y + offset.Y}
		if m.Open(next) {
			successors = append(successors, search.Successor[Point, Direction]{State: next, Action: direction, Cost: 1})
		}
	}
	return successors
}

// CostOfActions returns the number of moves, or +Inf if any move hits a wall.
func (m *Maze) CostOfActions(actions []Direction) float64 {
	current := m.start
	for _, action := range actions {
		offset := action.offset()
		if offset == (Point{}) {
			return math.Inf(1)
		}
		current = Point{current.X + offset.X, current.Y + offset.Y}
		if !m.Open(current) {
			return math.Inf(1)
		}
	}
	return float64(len(actions))
}

// Render draws the layout with the cells visited by actions marked '*'.
func (m *Maze) Render(actions []Direction) string {
	visited := make(map[Point]bool, len(actions))
	current := m.start
	for _, action := range actions {
		offset := action.offset()
		current = Point{current.X + offset.X, current.Y + offset.Y}
		visited[current] = true
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{x, y}
			_, goal := m.goals[p]
			switch {
			case m.walls[p]:
				b.WriteByte('%')
			case p == m.start:
				b.WriteByte('P')
			case goal:
				b.WriteByte('.')
			case visited[p]:
				b.WriteByte('*')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
