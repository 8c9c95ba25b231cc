// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/katalvlaran/aoclib/point"
)

// area returns width*height, or false if either dimension is negative or
// the product overflows int.
func area(width, height int) (int, bool) {
	if width < 0 || height < 0 {
		return 0, false
	}
	if width != 0 && height > math.MaxInt/width {
		return 0, false
	}
	return width * height, true
}

// New returns a width×height matrix with every cell set to fill.
// Returns ErrInvalidDimensions if either dimension is negative or the cell
// count does not fit in an int.
func New[T any](width, height int, fill T) (*Matrix[T], error) {
	n, ok := area(width, height)
	if !ok {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{width: width, height: height, data: data}, nil
}

// FromFunc returns a width×height matrix whose cell at p is f(p).
// f is called exactly once per cell in row-major order (y outer, x inner).
func FromFunc[T any](width, height int, f func(point.Point) T) (*Matrix[T], error) {
	n, ok := area(width, height)
	if !ok {
		return nil, fmt.Errorf("FromFunc(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	data := make([]T, 0, n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, f(point.New(x, y)))
		}
	}
	return &Matrix[T]{width: width, height: height, data: data}, nil
}

// FromLinear wraps a row-major slice as a matrix of the given width.
// The matrix takes ownership of data. len(data) must be a positive multiple
// of width; otherwise ErrInvalidDimensions or ErrEmpty is returned.
func FromLinear[T any](data []T, width int) (*Matrix[T], error) {
	if width <= 0 {
		return nil, fmt.Errorf("FromLinear: width %d: %w", width, ErrInvalidDimensions)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("FromLinear: %w", ErrEmpty)
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("FromLinear: %d cells is not a multiple of width %d: %w",
			len(data), width, ErrInvalidDimensions)
	}
	return &Matrix[T]{width: width, height: len(data) / width, data: data}, nil
}

// FromSeq collects seq in row-major order and wraps it like FromLinear.
func FromSeq[T any](seq iter.Seq[T], width int) (*Matrix[T], error) {
	var data []T
	for v := range seq {
		data = append(data, v)
	}
	return FromLinear(data, width)
}

// FromRows folds a slice of equal-length rows into a matrix, copying the cells.
// Returns ErrEmpty for no rows or zero-length rows and ErrNonRectangular for
// rows of differing lengths.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrEmpty)
	}
	w := len(rows[0])
	data := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		data = append(data, row...)
	}
	return &Matrix[T]{width: w, height: len(rows), data: data}, nil
}

// ParseOption tunes FromStringLines.
type ParseOption func(*parseOptions)

type parseOptions struct {
	truncate bool
}

// WithTruncate makes the shortest non-empty line set the width and silently
// truncates longer lines instead of rejecting them.
func WithTruncate() ParseOption {
	return func(o *parseOptions) { o.truncate = true }
}

// FromStringLines parses a rectangular block of text into a rune matrix.
//
// Implementation:
//   - Stage 1: split on '\n', strip a trailing '\r', drop empty lines.
//   - Stage 2: width is the rune length of the first line; every other line must
//     match (ErrNonRectangular) unless WithTruncate is given, in which case the
//     shortest line sets the width.
//   - Stage 3: copy runes row by row.
//
// Returns ErrEmpty if no non-empty lines remain.
func FromStringLines(s string, opts ...ParseOption) (*Matrix[rune], error) {
	var cfg parseOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	var lines [][]rune
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("FromStringLines: %w", ErrEmpty)
	}

	width := len(lines[0])
	for i, line := range lines {
		switch {
		case cfg.truncate:
			width = min(width, len(line))
		case len(line) != width:
			return nil, fmt.Errorf("FromStringLines: line %d has %d runes, want %d: %w",
				i+1, len(line), width, ErrNonRectangular)
		}
	}

	data := make([]rune, 0, width*len(lines))
	for _, line := range lines {
		data = append(data, line[:width]...)
	}
	return &Matrix[rune]{width: width, height: len(lines), data: data}, nil
}

// FromDigitLines parses a block of decimal digits into a matrix of their values.
// Returns ErrBadDigit, wrapped with the offending coordinate, for any other rune.
func FromDigitLines(s string) (*Matrix[int], error) {
	chars, err := FromStringLines(s)
	if err != nil {
		return nil, fmt.Errorf("FromDigitLines: %w", err)
	}
	for p, r := range chars.All() {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("FromDigitLines: %q at %v: %w", r, p, ErrBadDigit)
		}
	}
	return Map(chars, func(r rune) int { return int(r - '0') }), nil
}

// BoundingBox returns the smallest matrix covering every point, filled with
// fill, and the offset of its top-left cell. Cell (0,0) of the result
// corresponds to the returned offset, so a point p lives at p.Sub(offset).
// Negative coordinates are supported. Returns ErrEmpty for no points.
func BoundingBox[T any](points []point.Point, fill T) (*Matrix[T], point.Point, error) {
	if len(points) == 0 {
		return nil, point.Point{}, fmt.Errorf("BoundingBox: %w", ErrEmpty)
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	w, okW := span(lo.X, hi.X)
	h, okH := span(lo.Y, hi.Y)
	if !okW || !okH {
		return nil, point.Point{}, fmt.Errorf("BoundingBox: %v..%v: %w", lo, hi, ErrInvalidDimensions)
	}
	m, err := New(w, h, fill)
	if err != nil {
		return nil, point.Point{}, err
	}
	return m, lo, nil
}

// span returns hi-lo+1 for lo <= hi, or false if it overflows int.
func span(lo, hi int) (int, bool) {
	d := hi - lo
	if d < 0 || d == math.MaxInt {
		return 0, false
	}
	return d + 1, true
}

// FromPoints returns the bounding box of points with on stored at every
// point and off everywhere else, along with the box offset.
func FromPoints[T any](points []point.Point, on, off T) (*Matrix[T], point.Point, error) {
	m, offset, err := BoundingBox(points, off)
	if err != nil {
		return nil, point.Point{}, fmt.Errorf("FromPoints: %w", err)
	}
	for _, p := range points {
		m.Set(p.Sub(offset), on)
	}
	return m, offset, nil
}

// FromPointsWithSize returns a width×height matrix with on stored at every
// point and off elsewhere. Points are not shifted; any point outside the
// requested size yields ErrOutOfRange.
func FromPointsWithSize[T any](points []point.Point, width, height int, on, off T) (*Matrix[T], error) {
	m, err := New(width, height, off)
	if err != nil {
		return nil, fmt.Errorf("FromPointsWithSize: %w", err)
	}
	for _, p := range points {
		if !m.Contains(p) {
			return nil, fmt.Errorf("FromPointsWithSize: point %v: %w", p, ErrOutOfRange)
		}
		m.Set(p, on)
	}
	return m, nil
}
