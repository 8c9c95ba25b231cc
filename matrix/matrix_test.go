// Package matrix_test contains unit tests for construction and cell access
// of the generic Matrix type.
package matrix_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/aoclib/matrix"
	"github.com/katalvlaran/aoclib/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFill ensures every cell equals the fill value.
func TestNewFill(t *testing.T) {
	m, err := matrix.New(4, 3, 'x')
	require.NoError(t, err)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())
	require.Equal(t, 12, m.Len())
	for v := range m.Values() {
		assert.Equal(t, 'x', v)
	}

	_, err = matrix.New(-1, 3, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	empty, err := matrix.New(0, 0, 0)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

// TestFromFuncOrder checks the generator is called in row-major order.
func TestFromFuncOrder(t *testing.T) {
	var calls []point.Point
	m, err := matrix.FromFunc(3, 2, func(p point.Point) int {
		calls = append(calls, p)
		return p.X*10 + p.Y
	})
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, calls)
	assert.Equal(t, 21, m.AtXY(2, 1))
}

// TestOversizedDimensions checks that a cell count overflowing int is
// rejected instead of producing a matrix with fewer cells than its size.
func TestOversizedDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{math.MaxInt / 2, 3},
		{math.MaxInt, 2},
		{2, math.MaxInt},
	}
	for _, c := range cases {
		_, err := matrix.New(c.w, c.h, 0)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "New(%d,%d)", c.w, c.h)

		calls := 0
		_, err = matrix.FromFunc(c.w, c.h, func(point.Point) int { calls++; return 0 })
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "FromFunc(%d,%d)", c.w, c.h)
		assert.Zero(t, calls)
	}

	_, _, err := matrix.BoundingBox([]point.Point{{math.MinInt, 0}, {math.MaxInt, 0}}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, _, err = matrix.BoundingBox([]point.Point{{0, 0}, {math.MaxInt, 0}}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromLinear(t *testing.T) {
	m, err := matrix.FromLinear([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 4, m.At(point.New(0, 1)))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Linear())

	_, err = matrix.FromLinear([]int{1, 2, 3, 4}, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromLinear([]int{}, 3)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.FromLinear([]int{1}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromSeq(t *testing.T) {
	m, err := matrix.FromSeq(slices.Values([]string{"a", "b", "c", "d"}), 2)
	require.NoError(t, err)
	assert.Equal(t, "d", m.AtXY(1, 1))
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 5, m.AtXY(0, 2))

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
	_, err = matrix.FromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.FromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestFromStringLines covers blank-line skipping, CRLF input and the strict
// width check.
func TestFromStringLines(t *testing.T) {
	m, err := matrix.FromStringLines("\nab#\r\n\n.cd\n")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, '#', m.AtXY(2, 0))
	assert.Equal(t, '.', m.AtXY(0, 1))

	_, err = matrix.FromStringLines("abc\nab\n")
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
	assert.Contains(t, err.Error(), "line 2")

	_, err = matrix.FromStringLines("\n\n")
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestFromStringLinesTruncate checks the lenient mode: the shortest line
// sets the width and longer lines are cut.
func TestFromStringLinesTruncate(t *testing.T) {
	m, err := matrix.FromStringLines("abcd\nef\nghi\n", matrix.WithTruncate())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, []string{"ab", "ef", "gh"}, matrix.Lines(m))
}

func TestFromStringLinesUnicode(t *testing.T) {
	m, err := matrix.FromStringLines("┌─┐\n└─┘")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, '┘', m.AtXY(2, 1))
}

func TestFromDigitLines(t *testing.T) {
	m, err := matrix.FromDigitLines("123\n456\n")
	require.NoError(t, err)
	assert.Equal(t, 6, m.AtXY(2, 1))

	_, err = matrix.FromDigitLines("12\n4x\n")
	require.ErrorIs(t, err, matrix.ErrBadDigit)
	assert.Contains(t, err.Error(), "1, 1")
}

// TestBoundingBox checks the offset handling for negative coordinates.
func TestBoundingBox(t *testing.T) {
	pts := []point.Point{{-2, 3}, {1, -1}, {0, 0}}
	m, offset, err := matrix.BoundingBox(pts, 0)
	require.NoError(t, err)
	assert.Equal(t, point.New(-2, -1), offset)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 5, m.Height())
	for _, p := range pts {
		assert.True(t, m.Contains(p.Sub(offset)), "%v", p)
	}

	_, _, err = matrix.BoundingBox[int](nil, 0)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestFromPoints(t *testing.T) {
	m, offset, err := matrix.FromPoints([]point.Point{{1, 1}, {3, 2}}, true, false)
	require.NoError(t, err)
	assert.Equal(t, point.New(1, 1), offset)
	assert.Equal(t, "#..\n..#\n", m.String())

	m, err = matrix.FromPointsWithSize([]point.Point{{1, 1}, {3, 2}}, 4, 3, true, false)
	require.NoError(t, err)
	assert.Equal(t, "....\n.#..\n...#\n", m.String())

	_, err = matrix.FromPointsWithSize([]point.Point{{4, 0}}, 4, 3, 1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestIndexingAgreement checks At, AtXY and TryGet agree on every valid point.
func TestIndexingAgreement(t *testing.T) {
	m := matrix.Must(matrix.FromFunc(5, 4, func(p point.Point) int { return p.Y*5 + p.X }))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := point.New(x, y)
			v, ok := m.TryGet(p)
			require.True(t, ok)
			require.Equal(t, m.At(p), m.AtXY(x, y))
			require.Equal(t, m.At(p), v)
		}
	}
}

// TestOutOfRange ensures indexers panic with ErrOutOfRange and TryGet does not.
func TestOutOfRange(t *testing.T) {
	m := matrix.Must(matrix.New(3, 2, 0))
	for _, p := range []point.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, ok := m.TryGet(p)
		assert.False(t, ok, "%v", p)
		assert.False(t, m.Contains(p), "%v", p)

		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "At(%v) did not panic", p)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, matrix.ErrOutOfRange))
			}()
			m.At(p)
		}()
		assert.Panics(t, func() { m.Set(p, 1) }, "%v", p)
		assert.Panics(t, func() { m.Ptr(p) }, "%v", p)
	}
}

func TestSetAndPtr(t *testing.T) {
	m := matrix.Must(matrix.New(2, 2, 0))
	m.Set(point.New(1, 0), 5)
	m.SetXY(0, 1, 7)
	*m.Ptr(point.New(1, 1)) += 3
	assert.Equal(t, []int{0, 5, 7, 3}, m.Linear())
}

func TestCloneIndependence(t *testing.T) {
	m := matrix.Must(matrix.New(2, 2, 1))
	c := m.Clone()
	c.SetXY(0, 0, 9)
	assert.Equal(t, 1, m.AtXY(0, 0))
	assert.Equal(t, 9, c.AtXY(0, 0))
	assert.False(t, matrix.Equal(m, c))
	c.SetXY(0, 0, 1)
	assert.True(t, matrix.Equal(m, c))
}

// TestMapPreservesShape also checks the source is untouched.
func TestMapPreservesShape(t *testing.T) {
	m := matrix.Must(matrix.FromStringLines("123\n456\n"))
	digits := matrix.Map(m, func(r rune) int { return int(r - '0') })
	assert.Equal(t, m.Width(), digits.Width())
	assert.Equal(t, m.Height(), digits.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, digits.Linear())
	assert.Equal(t, '1', m.AtXY(0, 0))

	labels := matrix.MapPoints(digits, func(p point.Point, v int) string { return p.String() })
	assert.Equal(t, "2, 1", labels.AtXY(2, 1))
}

func TestUpdate(t *testing.T) {
	m := matrix.Must(matrix.FromLinear([]int{1, 2, 3, 4}, 2))
	visits := 0
	m.Update(func(v *int) {
		*v *= 10
		visits++
	})
	assert.Equal(t, 4, visits)
	assert.Equal(t, []int{10, 20, 30, 40}, m.Linear())
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { matrix.Must(matrix.FromStringLines("")) })
}
