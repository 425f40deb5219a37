// Package solid is a generic best-first search engine: one traversal loop
// parameterised by the container that decides which node to expand next.
//
// What is solid?
//
//	A small, dependency-light toolkit for state-space search:
//		• Frontiers: LIFO stack, FIFO queue, binary-heap priority queue,
//		  plus a Prometheus-instrumented decorator
//		• Core loop: visited set, predecessor chain, path reconstruction
//		• Presets: depth-first, breadth-first, Dijkstra (uniform cost), A*
//		• Costs: any monoid, numeric sums by default
//		• Adapters: weighted directed graphs (incl. gonum), 2D grids
//
// Everything is organized under these packages:
//
//	monoid/       associative cost combination with an identity
//	frontier/     Frontier contract, Stack, Queue, PriorityQueue, Instrumented
//	search/       Problem, Node, Solution, Solve and the algorithm presets
//	graphsearch/  search over Graph values: AdjacencyList and gonum adapters
//	gridsearch/   grids of cell costs: neighbours, components, A* routing
//	cmd/solid/    CLI solving YAML-described graphs
//
// Quick example:
//
//	g := graphsearch.NewAdjacencyList[string, int]()
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "d", 2)
//	path, ok, err := graphsearch.Dijkstra[string, int](g, "a", "d")
//	// path.States == [a b d], path.Cost == 3
//
// See each subpackage for details and examples.
package solid
