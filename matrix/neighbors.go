// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"github.com/katalvlaran/aoclib/point"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in point.Offsets4 order: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity in point.Offsets8 order.
	Conn8
)

// offsets returns the neighbor table for c.
func (c Connectivity) offsets() []point.Point {
	if c == Conn8 {
		return point.Offsets8[:]
	}
	return point.Offsets4[:]
}

// neighborPoints yields the in-bounds points at each offset from p.
func (m *Matrix[T]) neighborPoints(p point.Point, offsets []point.Point) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for _, o := range offsets {
			q := point.New(p.X+o.X, p.Y+o.Y)
			if m.Contains(q) && !yield(q) {
				return
			}
		}
	}
}

func (m *Matrix[T]) neighbors(p point.Point, offsets []point.Point) iter.Seq2[point.Point, T] {
	return func(yield func(point.Point, T) bool) {
		for q := range m.neighborPoints(p, offsets) {
			if !yield(q, m.data[q.Y*m.width+q.X]) {
				return
			}
		}
	}
}

// Neighbor4Points yields the in-bounds axis-aligned neighbors of p in N, S, W, E order.
func (m *Matrix[T]) Neighbor4Points(p point.Point) iter.Seq[point.Point] {
	return m.neighborPoints(p, point.Offsets4[:])
}

// Neighbors4 yields each in-bounds axis-aligned neighbor of p with its value,
// in N, S, W, E order.
func (m *Matrix[T]) Neighbors4(p point.Point) iter.Seq2[point.Point, T] {
	return m.neighbors(p, point.Offsets4[:])
}

// Neighbor8Points yields the in-bounds 8-connected neighbors of p in point.Offsets8 order.
func (m *Matrix[T]) Neighbor8Points(p point.Point) iter.Seq[point.Point] {
	return m.neighborPoints(p, point.Offsets8[:])
}

// Neighbors8 yields each in-bounds 8-connected neighbor of p with its value.
func (m *Matrix[T]) Neighbors8(p point.Point) iter.Seq2[point.Point, T] {
	return m.neighbors(p, point.Offsets8[:])
}
