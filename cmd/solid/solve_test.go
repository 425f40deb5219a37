package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyuhuan/Solid/graphsearch"
)

const diamondYAML = `
vertices: [e]
edges:
  - {from: a, to: b, weight: 1}
  - {from: a, to: c, weight: 3}
  - {from: b, to: d, weight: 2}
  - {from: c, to: d, weight: 20}
heuristic:
  a: 3
  b: 2
  c: 3
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Algorithms(t *testing.T) {
	file := writeFile(t, diamondYAML)
	cases := []struct {
		algo string
		path string
		cost string
	}{
		{"dfs", "a -> c -> d", "23"},
		{"bfs", "a -> b -> d", "3"},
		{"dijkstra", "a -> b -> d", "3"},
		{"astar", "a -> b -> d", "3"},
		{"AStar", "a -> b -> d", "3"},
	}
	for _, tc := range cases {
		t.Run(tc.algo, func(t *testing.T) {
			out, _, err := execute(t, "solve", "--file", file, "--algo", tc.algo, "--from", "a", "--to", "d")
			require.NoError(t, err)
			assert.Contains(t, out, "path: "+tc.path+"\n")
			assert.Contains(t, out, "cost: "+tc.cost+"\n")
			assert.Contains(t, out, "run: ")
		})
	}
}

func TestSolve_NoPath(t *testing.T) {
	file := writeFile(t, diamondYAML)
	out, _, err := execute(t, "solve", "-f", file, "--from", "a", "--to", "e")
	require.NoError(t, err)
	assert.Contains(t, out, "no path from a to e")
	assert.Contains(t, out, " expanded=4 ")
}

func TestSolve_Metrics(t *testing.T) {
	file := writeFile(t, diamondYAML)
	out, _, err := execute(t, "solve", "-f", file, "-a", "dfs", "--from", "a", "--to", "d", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "stats: removed=3 expanded=2 generated=3 skipped=0 duplicates=0 max_frontier=2\n")
	assert.Contains(t, out, `solid_frontier_inserts_total{discipline="lifo"} 4`)
	assert.Contains(t, out, `solid_frontier_removals_total{discipline="lifo"} 3`)
	assert.Contains(t, out, `solid_frontier_size{discipline="lifo"} 1`)
	assert.Contains(t, out, `solid_frontier_max_size{discipline="lifo"} 2`)

	assert.Contains(t, out, "# TYPE solid_frontier_inserts_total counter\n")
	assert.Contains(t, out, "# TYPE solid_frontier_size gauge\n")
	assert.Contains(t, out, "# HELP solid_frontier_removals_total ")
}

// TestSolve_MetricsAStar checks that the instrumented frontier wraps the
// A* preset: the heap still yields the optimal path and every operation is counted.
func TestSolve_MetricsAStar(t *testing.T) {
	file := writeFile(t, diamondYAML)
	out, _, err := execute(t, "solve", "-f", file, "-a", "astar", "--from", "a", "--to", "d", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "path: a -> b -> d\n")
	assert.Contains(t, out, "cost: 3\n")
	assert.Contains(t, out, "# TYPE solid_frontier_inserts_total counter\n")
	assert.Contains(t, out, `solid_frontier_removals_total{discipline="min_priority"} `)
}

func TestSolve_VerboseLogging(t *testing.T) {
	file := writeFile(t, diamondYAML)

	_, quiet, err := execute(t, "solve", "-f", file, "--from", "a", "--to", "d")
	require.NoError(t, err)
	assert.Contains(t, quiet, "msg=solving")
	assert.NotContains(t, quiet, "search started")

	_, loud, err := execute(t, "--verbose", "solve", "-f", file, "--from", "a", "--to", "d")
	require.NoError(t, err)
	assert.Contains(t, loud, `msg="search started"`)
	assert.Contains(t, loud, "algo=dijkstra")
}

func TestSolve_Errors(t *testing.T) {
	good := writeFile(t, diamondYAML)

	_, _, err := execute(t, "solve", "-f", good, "-a", "greedy", "--from", "a", "--to", "d")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, _, err = execute(t, "solve", "-f", good, "--from", "zzz", "--to", "d")
	assert.ErrorIs(t, err, graphsearch.ErrVertexNotFound)

	_, _, err = execute(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.yaml"), "--from", "a", "--to", "d")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", "--from", "a", "--to", "d")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "required flag"), err.Error())
}

func TestGraphConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"NoEdges", "vertices: [a]\n", ErrNoEdges},
		{"EmptyVertex", "edges:\n  - {from: a, to: '', weight: 1}\n", ErrEmptyVertex},
		{"Negative", "edges:\n  - {from: a, to: b, weight: -1}\n", ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadGraphConfig(writeFile(t, tc.body))
			if !errors.Is(err, tc.err) {
				t.Errorf("loadGraphConfig error = %v; want %v", err, tc.err)
			}
		})
	}

	_, err := loadGraphConfig(writeFile(t, "edges: [oops"))
	assert.Error(t, err)
}

func TestGraphConfig_Graph(t *testing.T) {
	cfg, err := loadGraphConfig(writeFile(t, diamondYAML))
	require.NoError(t, err)

	g := cfg.Graph()
	assert.Equal(t, []string{"e", "a", "b", "c", "d"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	w, ok := g.Weight("c", "d")
	assert.True(t, ok)
	assert.Equal(t, 20.0, w)

	h := cfg.HeuristicFunc()
	assert.Equal(t, 2.0, h("b"))
	assert.Equal(t, 0.0, h("d"))
}
