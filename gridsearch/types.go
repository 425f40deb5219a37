// Package gridsearch defines core types, options, and sentinel errors
// for pathfinding on 2D grids.
package gridsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridsearch operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridsearch: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridsearch: all rows must have the same length")
	// ErrBadThreshold indicates a passability threshold below 1, which would allow non-positive step costs.
	ErrBadThreshold = errors.New("gridsearch: threshold must be at least 1")
	// ErrOutOfBounds indicates a start or goal point outside the grid.
	ErrOutOfBounds = errors.New("gridsearch: point out of bounds")
	// ErrBlocked indicates a start or goal point on an impassable cell.
	ErrBlocked = errors.New("gridsearch: point is not passable")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point is a cell coordinate; X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// GridOptions contains tunable parameters for grid pathfinding.
type GridOptions struct {
	// Threshold is the minimum cell value considered passable. Entering a
	// passable cell costs its value. Must be ≥ 1.
	Threshold int
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Threshold=1 (values ≥1 are
// passable, 0 and below are walls) and Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// Grid treats a 2D integer grid as a weighted state space. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the input value.
type Grid struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity
	Threshold     int
	offsets       [][2]int
	minCost       int // cheapest passable cell, used to scale heuristics
}
