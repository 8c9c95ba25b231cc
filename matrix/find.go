// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoclib/point"
)

// Find returns the first point in row-major order whose value satisfies pred.
func (m *Matrix[T]) Find(pred func(T) bool) (point.Point, bool) {
	for i, v := range m.data {
		if pred(v) {
			return point.New(i%m.width, i/m.width), true
		}
	}
	return point.Point{}, false
}

// FindValues yields every point whose value equals v, in row-major order.
func FindValues[T comparable](m *Matrix[T], v T) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for p, c := range m.All() {
			if c == v && !yield(p) {
				return
			}
		}
	}
}

// FindSingleValue returns the only point holding v.
// Returns ErrNotFound if none does and ErrNotUnique if more than one does.
func FindSingleValue[T comparable](m *Matrix[T], v T) (point.Point, error) {
	var found []point.Point
	for p := range FindValues(m, v) {
		found = append(found, p)
		if len(found) > 1 {
			return point.Point{}, fmt.Errorf("FindSingleValue(%v): at %v and %v: %w", v, found[0], found[1], ErrNotUnique)
		}
	}
	if len(found) == 0 {
		return point.Point{}, fmt.Errorf("FindSingleValue(%v): %w", v, ErrNotFound)
	}
	return found[0], nil
}

// Count returns how many cells satisfy pred.
func (m *Matrix[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range m.data {
		if pred(v) {
			n++
		}
	}
	return n
}
