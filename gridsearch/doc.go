// Package gridsearch treats a 2D grid of weighted cells as a search problem,
// enabling shortest-path queries with the presets of package search.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a passability Threshold.
//   - Problem(from, to) builds a search.Problem whose actions are moves to
//     passable neighbours; entering a cell costs its value.
//   - Manhattan / Chebyshev give admissible A* heuristics for Conn4 / Conn8.
//   - ShortestPath runs A* with the matching heuristic.
//   - Components / Connected find regions of mutually reachable cells.
//
// Why:
//
//   - Game maps and robot planning: cheapest route over terrain costs.
//   - A worked example of plugging a concrete state space into package search.
//
// Complexity (N = W×H, d = 4 or 8):
//
//   - ShortestPath: O(N·d·log(N·d)), Memory: O(N·d).
//   - Components:   O(N·d), Memory: O(N).
//
// Options:
//
//   - GridOptions.Threshold: minimum value considered passable (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadThreshold from NewGrid.
//   - ErrOutOfBounds, ErrBlocked for invalid endpoints.
package gridsearch
