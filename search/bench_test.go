package search_test

import (
	"testing"

	"github.com/jyuhuan/Solid/search"
)

// latticeProblem searches an n×n lattice from (0,0) to (n-1,n-1) moving right
// or down, with a cost depending on the coordinates.
func latticeProblem(n int) *search.Problem[[2]int, [2]int, int] {
	moves := [][2]int{{1, 0}, {0, 1}}
	p, err := search.NewNumericProblem(
		[2]int{0, 0},
		func(s [2]int) bool { return s == [2]int{n - 1, n - 1} },
		func(s [2]int) [][2]int {
			out := make([][2]int, 0, 2)
			for _, m := range moves {
				if s[0]+m[0] < n && s[1]+m[1] < n {
					out = append(out, m)
				}
			}
			return out
		},
		func(s, m [2]int) [2]int { return [2]int{s[0] + m[0], s[1] + m[1]} },
		func(s, m [2]int) int { return 1 + (s[0]*7+s[1]*13)%5 },
	)
	if err != nil {
		panic(err)
	}

	return p
}

func BenchmarkBreadthFirst_Lattice100(b *testing.B) {
	p := latticeProblem(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.BreadthFirst(p)
	}
}

func BenchmarkDijkstra_Lattice100(b *testing.B) {
	p := latticeProblem(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.Dijkstra(p)
	}
}

func BenchmarkAStar_Lattice100(b *testing.B) {
	p := latticeProblem(100)
	h := func(s [2]int) int { return (99 - s[0]) + (99 - s[1]) }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.AStar(p, h)
	}
}
