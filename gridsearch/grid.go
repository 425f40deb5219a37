package gridsearch

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadThreshold
// if opts.Threshold < 1.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Threshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation; track the cheapest passable cell.
	cells := make([][]int, h)
	minCost := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.Threshold && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	if minCost == 0 {
		minCost = opts.Threshold
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:     w,
		Height:    h,
		Cells:     cells,
		Conn:      opts.Conn,
		Threshold: opts.Threshold,
		offsets:   offsets,
		minCost:   minCost,
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Passable reports whether p is inside the grid and its value reaches the threshold.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] >= g.Threshold
}

// Value returns the stored value at p. p must be in bounds.
func (g *Grid) Value(p Point) int {
	return g.Cells[p.Y][p.X]
}

// Neighbors returns the passable neighbours of p, clockwise starting north.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.Passable(q) {
			out = append(out, q)
		}
	}

	return out
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
