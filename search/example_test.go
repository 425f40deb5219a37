// Package search_test shows how to describe a problem once and solve it with
// every preset. Run with “go test -run Example”.
package search_test

import (
	"fmt"

	"github.com/jyuhuan/Solid/frontier"
	"github.com/jyuhuan/Solid/search"
)

// routes is the graph
//
//	a ──1──► b ──2──► d
//	│                 ▲
//	└──11──► c ──12───┘
var routes = map[string]map[string]int{
	"a": {"b": 1, "c": 11},
	"b": {"d": 2},
	"c": {"d": 12},
}

var order = map[string][]string{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}}

func newRouteProblem() *search.Problem[string, string, int] {
	p, err := search.NewNumericProblem(
		"a",
		func(s string) bool { return s == "d" },
		func(s string) []string { return order[s] },
		func(_ string, to string) string { return to },
		func(from, to string) int { return routes[from][to] },
	)
	if err != nil {
		panic(err)
	}

	return p
}

// ExampleDepthFirst follows the last listed branch first.
func ExampleDepthFirst() {
	sol, ok, _ := search.DepthFirst(newRouteProblem())
	fmt.Println(ok, sol.States, sol.Cost)
	// Output: true [a c d] 23
}

// ExampleDijkstra finds the cheapest path.
func ExampleDijkstra() {
	sol, ok, _ := search.Dijkstra(newRouteProblem())
	fmt.Println(ok, sol.States, sol.Actions, sol.Cost)
	// Output: true [a b d] [b d] 3
}

// ExampleAStar guides Dijkstra with an admissible estimate of the remaining cost.
func ExampleAStar() {
	h := map[string]int{"a": 2, "b": 1, "c": 1, "d": 0}
	sol, _, _ := search.AStar(newRouteProblem(), func(s string) int { return h[s] })
	fmt.Println(sol.States, sol.Cost, sol.Stats.Expanded)
	// Output: [a b d] 3 2
}

// ExampleSolve plugs a frontier straight into the core loop.
func ExampleSolve() {
	f := frontier.NewQueue[*search.Node[string, string, int]]()
	sol, _, _ := search.Solve(newRouteProblem(), f)
	fmt.Println(sol.States, sol.Len())
	// Output: [a b d] 2
}
