package gridsearch

import (
	"fmt"

	"github.com/jyuhuan/Solid/monoid"
	"github.com/jyuhuan/Solid/search"
)

// Path is a grid route: States are the visited cells, Actions the cells
// stepped into (States without the start), Cost the sum of entered cell values.
type Path = search.Solution[Point, Point, int]

// Problem returns the search problem of walking from → to.
// Actions are the passable neighbours of a cell; stepping into a cell costs
// its value. Returns ErrOutOfBounds or ErrBlocked for an invalid endpoint.
func (g *Grid) Problem(from, to Point) (*search.Problem[Point, Point, int], error) {
	if err := g.checkEndpoint(from); err != nil {
		return nil, err
	}
	if err := g.checkEndpoint(to); err != nil {
		return nil, err
	}

	return search.NewProblem(
		from,
		func(p Point) bool { return p == to },
		g.Neighbors,
		func(_ Point, next Point) Point { return next },
		func(_ Point, next Point) int { return g.Value(next) },
		monoid.Sum[int](),
	)
}

func (g *Grid) checkEndpoint(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}
	if !g.Passable(p) {
		return fmt.Errorf("%w: %v has value %d < %d", ErrBlocked, p, g.Value(p), g.Threshold)
	}

	return nil
}

// Manhattan returns an admissible Conn4 heuristic towards to: the L1 distance
// times the cheapest passable cell value.
func (g *Grid) Manhattan(to Point) search.Heuristic[Point, int] {
	unit := g.minCost
	return func(p Point) int {
		return (abs(p.X-to.X) + abs(p.Y-to.Y)) * unit
	}
}

// Chebyshev returns an admissible Conn8 heuristic towards to: the L∞ distance
// times the cheapest passable cell value.
func (g *Grid) Chebyshev(to Point) search.Heuristic[Point, int] {
	unit := g.minCost
	return func(p Point) int {
		return max(abs(p.X-to.X), abs(p.Y-to.Y)) * unit
	}
}

// Heuristic returns the admissible heuristic matching g.Conn.
func (g *Grid) Heuristic(to Point) search.Heuristic[Point, int] {
	if g.Conn == Conn8 {
		return g.Chebyshev(to)
	}
	return g.Manhattan(to)
}

// ShortestPath finds a cheapest route from → to with A* and the
// connectivity-appropriate heuristic. ok is false when no route exists.
func (g *Grid) ShortestPath(from, to Point, opts ...search.Option[Point, Point, int]) (*Path, bool, error) {
	p, err := g.Problem(from, to)
	if err != nil {
		return nil, false, err
	}

	return search.AStar(p, g.Heuristic(to), opts...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
