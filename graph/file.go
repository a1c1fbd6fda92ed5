package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the YAML description of a graph problem:
//
//	start: A
//	goals: [C]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: C, cost: 5}
//	heuristic: {A: 3, B: 2}
type File struct {
	Start     string             `yaml:"start" validate:"required"`
	Goals     []string           `yaml:"goals" validate:"required,min=1,dive,required"`
	Edges     []Edge             `yaml:"edges" validate:"dive"`
	Heuristic map[string]float64 `yaml:"heuristic" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
}

// Edge is one directed, weighted edge of a File.
type Edge struct {
	From string  `yaml:"from" validate:"required"`
	To   string  `yaml:"to" validate:"required,nefield=From"`
	Cost float64 `yaml:"cost" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and builds the graph problem stored at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}
	g, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a YAML graph problem from r and builds it.
func Parse(r io.Reader) (*Graph, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode graph file: %w", err)
	}
	return file.Build()
}

// Build validates f and turns it into a Graph.
func (f File) Build() (*Graph, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid graph file: %w", err)
	}

	g := New()
	g.SetStart(f.Start)
	for _, goal := range f.Goals {
		g.AddGoal(goal)
	}
	for _, edge := range f.Edges {
		if err := g.AddEdge(edge.From, edge.To, edge.Cost); err != nil {
			return nil, err
		}
	}
	for name, estimate := range f.Heuristic {
		if err := g.SetEstimate(name, estimate); err != nil {
			return nil, err
		}
	}
	return g, nil
}
