// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and lookups.
// Every message is prefixed with "matrix: " for grep-ability. Callers match
// with errors.Is; detection sites wrap with context via fmt.Errorf("...: %w").
var (
	// ErrInvalidDimensions indicates a negative width or height, or a
	// non-positive width where rows are required.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNonRectangular indicates rows or text lines of differing lengths.
	ErrNonRectangular = errors.New("matrix: rows have differing lengths")

	// ErrEmpty indicates the input held no cells, lines or points.
	ErrEmpty = errors.New("matrix: empty input")

	// ErrBadDigit indicates a non-digit rune in FromDigitLines input.
	ErrBadDigit = errors.New("matrix: invalid digit")

	// ErrOutOfRange indicates a coordinate outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotFound indicates no cell matched a FindSingleValue query.
	ErrNotFound = errors.New("matrix: value not found")

	// ErrNotUnique indicates more than one cell matched a FindSingleValue query.
	ErrNotUnique = errors.New("matrix: value not unique")
)

// rangeErrorf builds the panic value for an out-of-range access.
func rangeErrorf(method string, x, y, w, h int) error {
	return fmt.Errorf("Matrix.%s(%d,%d) on %dx%d: %w", method, x, y, w, h, ErrOutOfRange)
}
