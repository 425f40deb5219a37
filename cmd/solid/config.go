package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jyuhuan/Solid/graphsearch"
)

var (
	// ErrNoEdges is returned when a graph file declares no edges.
	ErrNoEdges = errors.New("solid: graph file has no edges")

	// ErrNegativeWeight is returned for an edge with a negative weight.
	ErrNegativeWeight = errors.New("solid: negative edge weight")

	// ErrEmptyVertex is returned for an edge with an empty endpoint.
	ErrEmptyVertex = errors.New("solid: empty vertex name")
)

// EdgeConfig is one directed, weighted edge.
type EdgeConfig struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// GraphConfig is the on-disk problem description.
//
//	vertices: [E]          # optional, isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 1}
//	heuristic:             # optional, used by --algo astar
//	  A: 2
type GraphConfig struct {
	Vertices  []string           `yaml:"vertices"`
	Edges     []EdgeConfig       `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic"`
}

// loadGraphConfig reads and validates a GraphConfig from path.
func loadGraphConfig(path string) (*GraphConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var cfg GraphConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks edge endpoints and weights.
// Negative weights are rejected because Dijkstra and A* assume
// non-decreasing path costs.
func (c *GraphConfig) Validate() error {
	if len(c.Edges) == 0 {
		return ErrNoEdges
	}
	for i, e := range c.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d", ErrEmptyVertex, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: %s->%s has %g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// Graph builds the adjacency list in file order.
func (c *GraphConfig) Graph() *graphsearch.AdjacencyList[string, float64] {
	g := graphsearch.NewAdjacencyList[string, float64]()
	for _, v := range c.Vertices {
		g.AddVertex(v)
	}
	for _, e := range c.Edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

// HeuristicFunc returns the estimate table as a function; vertices without an
// entry estimate zero.
func (c *GraphConfig) HeuristicFunc() func(string) float64 {
	table := c.Heuristic
	return func(v string) float64 { return table[v] }
}
