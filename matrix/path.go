// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/aoclib/dijkstra"
	"github.com/katalvlaran/aoclib/point"
)

// ShortestPath finds the fewest 4-connected unit steps from start to end.
// A step from cell a to neighbor b is allowed when canMove(a, b) is true.
// The returned Result always carries the path.
//
// Errors:
//   - ErrOutOfRange if start or end lies outside the matrix.
//   - dijkstra.ErrNoPath if end cannot be reached.
//   - any error produced by the supplied dijkstra options.
func (m *Matrix[T]) ShortestPath(
	start, end point.Point,
	canMove func(from, to T) bool,
	opts ...dijkstra.Option,
) (dijkstra.Result[point.Point, int], error) {
	return m.WeightedShortestPath(start, end, func(from, to T) (int, bool) {
		return 1, canMove(from, to)
	}, opts...)
}

// WeightedShortestPath is ShortestPath with per-step costs. cost returns the
// price of stepping from a cell onto a 4-connected neighbor and whether the
// step is allowed at all. Costs must be non-negative.
func (m *Matrix[T]) WeightedShortestPath(
	start, end point.Point,
	cost func(from, to T) (int, bool),
	opts ...dijkstra.Option,
) (dijkstra.Result[point.Point, int], error) {
	for _, p := range [2]point.Point{start, end} {
		if !m.Contains(p) {
			return dijkstra.Result[point.Point, int]{},
				fmt.Errorf("ShortestPath: %v outside %dx%d: %w", p, m.width, m.height, ErrOutOfRange)
		}
	}

	neighbors := func(p point.Point) []dijkstra.Edge[point.Point, int] {
		from := m.data[p.Y*m.width+p.X]
		out := make([]dijkstra.Edge[point.Point, int], 0, 4)
		for q, to := range m.Neighbors4(p) {
			if c, ok := cost(from, to); ok {
				out = append(out, dijkstra.Edge[point.Point, int]{To: q, Cost: c})
			}
		}
		return out
	}
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithReturnPath())

	return dijkstra.Find(start, func(p point.Point) bool { return p == end }, neighbors, opts...)
}
