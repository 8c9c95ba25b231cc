// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/aoclib/point"
)

// Matrix is a dense, fixed-size 2D grid of T stored in row-major order.
//   - width, height hold the dimensions (>= 0).
//   - data is a flat buffer with len(data) == width*height.
type Matrix[T any] struct {
	width, height int
	data          []T
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix[T]) Height() int { return m.height }

// Len returns the number of cells, width*height.
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix has no cells.
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// Contains reports whether p lies within the matrix bounds.
func (m *Matrix[T]) Contains(p point.Point) bool {
	return m.inBounds(p.X, p.Y)
}

func (m *Matrix[T]) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// index maps (x,y) to a row-major offset, panicking when out of range.
func (m *Matrix[T]) index(method string, x, y int) int {
	if !m.inBounds(x, y) {
		panic(rangeErrorf(method, x, y, m.width, m.height))
	}
	return y*m.width + x
}

// At returns the cell at p. Panics if p is out of range.
func (m *Matrix[T]) At(p point.Point) T {
	return m.data[m.index("At", p.X, p.Y)]
}

// AtXY returns the cell at (x, y). Panics if out of range.
func (m *Matrix[T]) AtXY(x, y int) T {
	return m.data[m.index("At", x, y)]
}

// Set stores v at p. Panics if p is out of range.
func (m *Matrix[T]) Set(p point.Point, v T) {
	m.data[m.index("Set", p.X, p.Y)] = v
}

// SetXY stores v at (x, y). Panics if out of range.
func (m *Matrix[T]) SetXY(x, y int, v T) {
	m.data[m.index("Set", x, y)] = v
}

// Ptr returns a pointer to the cell at p for in-place mutation.
// Panics if p is out of range.
func (m *Matrix[T]) Ptr(p point.Point) *T {
	return &m.data[m.index("Ptr", p.X, p.Y)]
}

// TryGet returns the cell at p and true, or the zero value and false when p
// is outside the matrix. It never panics.
func (m *Matrix[T]) TryGet(p point.Point) (T, bool) {
	if !m.inBounds(p.X, p.Y) {
		var zero T
		return zero, false
	}
	return m.data[p.Y*m.width+p.X], true
}

// Linear exposes the row-major cell buffer. The slice aliases the matrix;
// callers must treat it as read-only.
func (m *Matrix[T]) Linear() []T {
	return m.data[:len(m.data):len(m.data)]
}

// Clone returns a deep copy of m that shares no storage.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{width: m.width, height: m.height, data: data}
}

// Update applies f to every cell in place, in row-major order.
func (m *Matrix[T]) Update(f func(*T)) {
	for i := range m.data {
		f(&m.data[i])
	}
}

// Map returns a new matrix of equal shape holding f applied to every cell of
// m in row-major order. m is not modified.
func Map[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	data := make([]U, len(m.data))
	for i, v := range m.data {
		data[i] = f(v)
	}
	return &Matrix[U]{width: m.width, height: m.height, data: data}
}

// MapPoints is Map with the cell coordinate passed alongside its value.
func MapPoints[T, U any](m *Matrix[T], f func(point.Point, T) U) *Matrix[U] {
	data := make([]U, len(m.data))
	for i, v := range m.data {
		data[i] = f(point.New(i%m.width, i/m.width), v)
	}
	return &Matrix[U]{width: m.width, height: m.height, data: data}
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Must returns m, panicking if err is non-nil. It wraps any constructor:
//
//	m := matrix.Must(matrix.FromStringLines(text))
func Must[T any](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(err)
	}
	return m
}
