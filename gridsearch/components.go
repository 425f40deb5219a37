package gridsearch

import "github.com/jyuhuan/Solid/frontier"

// Components finds all contiguous regions of passable cells under g.Conn.
// Each component lists its cells in breadth-first order from its top-left
// cell; components are ordered by their top-left cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) Components() [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point

	for idx := range seen {
		start := g.Coordinate(idx)
		if seen[idx] || !g.Passable(start) {
			continue
		}
		seen[idx] = true
		q := frontier.NewQueue[Point]()
		q.Insert(start)

		var comp []Point
		for !q.IsEmpty() {
			u := q.RemoveNext()
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen[g.index(v)] {
					seen[g.index(v)] = true
					q.Insert(v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a path of passable cells joins a and b.
// Complexity: O(W·H·d) worst case, a single flood fill from a.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	seen := make([]bool, g.Width*g.Height)
	seen[g.index(a)] = true
	q := frontier.NewQueue[Point]()
	q.Insert(a)
	for !q.IsEmpty() {
		u := q.RemoveNext()
		if u == b {
			return true
		}
		for _, v := range g.Neighbors(u) {
			if !seen[g.index(v)] {
				seen[g.index(v)] = true
				q.Insert(v)
			}
		}
	}

	return false
}
