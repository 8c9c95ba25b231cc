// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"github.com/katalvlaran/aoclib/point"
)

// Values yields every cell in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Points yields every valid coordinate in row-major order.
func (m *Matrix[T]) Points() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				if !yield(point.New(x, y)) {
					return
				}
			}
		}
	}
}

// All yields every (point, value) pair in row-major order.
func (m *Matrix[T]) All() iter.Seq2[point.Point, T] {
	return func(yield func(point.Point, T) bool) {
		for i, v := range m.data {
			if !yield(point.New(i%m.width, i/m.width), v) {
				return
			}
		}
	}
}

// Line is a read-only view of one row or column.
// Index 0 is the leftmost cell of a row or the topmost cell of a column.
type Line[T any] struct {
	m      *Matrix[T]
	origin point.Point // coordinate of index 0
	step   point.Point // unit offset between consecutive indices
	n      int
}

// Len returns the number of cells in the line.
func (l Line[T]) Len() int { return l.n }

// Point returns the matrix coordinate of index i. Panics if i is out of range.
func (l Line[T]) Point(i int) point.Point {
	if i < 0 || i >= l.n {
		panic(rangeErrorf("Line.Point", i, 0, l.n, 1))
	}
	return point.New(l.origin.X+i*l.step.X, l.origin.Y+i*l.step.Y)
}

// At returns the cell at index i. Panics if i is out of range.
func (l Line[T]) At(i int) T {
	return l.m.At(l.Point(i))
}

// Values yields the cells in increasing index order.
func (l Line[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Backward yields the cells in decreasing index order.
func (l Line[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.n - 1; i >= 0; i-- {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Points yields the coordinates of the line in increasing index order.
func (l Line[T]) Points() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(l.Point(i)) {
				return
			}
		}
	}
}

// Row returns row y. Panics if y is out of range.
func (m *Matrix[T]) Row(y int) Line[T] {
	if y < 0 || y >= m.height {
		panic(rangeErrorf("Row", 0, y, m.width, m.height))
	}
	return Line[T]{m: m, origin: point.New(0, y), step: point.New(1, 0), n: m.width}
}

// Column returns column x. Panics if x is out of range.
func (m *Matrix[T]) Column(x int) Line[T] {
	if x < 0 || x >= m.width {
		panic(rangeErrorf("Column", x, 0, m.width, m.height))
	}
	return Line[T]{m: m, origin: point.New(x, 0), step: point.New(0, 1), n: m.height}
}

// Rows yields every row from top to bottom.
func (m *Matrix[T]) Rows() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for y := 0; y < m.height; y++ {
			if !yield(m.Row(y)) {
				return
			}
		}
	}
}

// Columns yields every column from left to right.
func (m *Matrix[T]) Columns() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for x := 0; x < m.width; x++ {
			if !yield(m.Column(x)) {
				return
			}
		}
	}
}

// Ray yields the in-bounds points strictly beyond p in direction d, ordered
// outward from p. It stops at the first point outside the matrix.
func (m *Matrix[T]) Ray(p point.Point, d point.Dir) iter.Seq[point.Point] {
	delta := d.Delta()
	return func(yield func(point.Point) bool) {
		for q := p.Add(delta); m.Contains(q); q = q.Add(delta) {
			if !yield(q) {
				return
			}
		}
	}
}

// PointsLeft yields the points left of p in the same row, nearest first.
func (m *Matrix[T]) PointsLeft(p point.Point) iter.Seq[point.Point] { return m.Ray(p, point.W) }

// PointsRight yields the points right of p in the same row, nearest first.
func (m *Matrix[T]) PointsRight(p point.Point) iter.Seq[point.Point] { return m.Ray(p, point.E) }

// PointsUp yields the points above p in the same column, nearest first.
func (m *Matrix[T]) PointsUp(p point.Point) iter.Seq[point.Point] { return m.Ray(p, point.N) }

// PointsDown yields the points below p in the same column, nearest first.
func (m *Matrix[T]) PointsDown(p point.Point) iter.Seq[point.Point] { return m.Ray(p, point.S) }
