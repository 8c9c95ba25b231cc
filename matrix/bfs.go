// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/aoclib/point"
)

// Unreached marks cells that Distances could not reach.
const Unreached = -1

// Distances runs a breadth-first flood from start over 4-connected unit steps
// gated by canMove(from, to) and returns a matrix of step counts, with
// Unreached for cells the flood never entered. maxDepth > 0 stops the flood
// at that many steps; 0 means no limit.
//
// Returns ErrOutOfRange if start lies outside m.
//
// Time:   O(W·H).
// Memory: O(W·H) for the distance matrix and the queue.
func (m *Matrix[T]) Distances(start point.Point, canMove func(from, to T) bool, maxDepth int) (*Matrix[int], error) {
	if !m.Contains(start) {
		return nil, fmt.Errorf("Distances: %v outside %dx%d: %w", start, m.width, m.height, ErrOutOfRange)
	}
	dist := Must(New(m.width, m.height, Unreached))
	dist.Set(start, 0)

	queue := []point.Point{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := dist.At(u)
		if maxDepth > 0 && d >= maxDepth {
			continue
		}
		from := m.At(u)
		for v, to := range m.Neighbors4(u) {
			if dist.At(v) != Unreached || !canMove(from, to) {
				continue
			}
			dist.Set(v, d+1)
			queue = append(queue, v)
		}
	}
	return dist, nil
}
