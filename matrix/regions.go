// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/aoclib/point"

// Regions finds every maximal connected region of cells, where two neighbors
// (per conn) belong to the same region when same(a, b) reports true.
// Regions are returned in the row-major order of their first cell; the
// points of each region are in BFS discovery order from that cell.
//
// Passing an equality function yields the classic "garden plot" partition;
// a same that rejects some cell values entirely (e.g. water) isolates those
// cells as singleton regions.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Matrix[T]) Regions(conn Connectivity, same func(a, b T) bool) [][]point.Point {
	seen := make([]bool, len(m.data))
	offsets := conn.offsets()
	var regions [][]point.Point

	for i0 := range m.data {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		// BFS to collect the region
		queue := []point.Point{point.New(i0%m.width, i0/m.width)}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uv := m.data[u.Y*m.width+u.X]
			for v := range m.neighborPoints(u, offsets) {
				vi := v.Y*m.width + v.X
				if seen[vi] || !same(uv, m.data[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
