// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense 2D grid, the primary spatial data
// structure for puzzle solvers.
//
// What:
//
//   - Matrix[T] owns width*height cells in row-major order (offset = y*width + x).
//   - Cells are addressed by point.Point; (0,0) is the top-left corner and Y grows downward.
//   - Built from a fill value, a generator, a flat slice, rows, text or point sets.
//   - Iterated by value, by point, by row or column, along rays and over neighbors.
//   - Searched by predicate or value, and used as a graph for shortest paths and regions.
//
// Safety:
//
//   - Constructors validate their input and return sentinel errors (errors.Is).
//   - At/Set/Row/Column panic on out-of-range coordinates; the panic value is an
//     error wrapping ErrOutOfRange. TryGet is the total alternative.
//   - A Matrix never changes shape after construction.
//
// Text input:
//
//   - FromStringLines splits on '\n', drops empty lines and requires every remaining
//     line to have the same width. WithTruncate restores the lenient mode where the
//     shortest line sets the width and longer lines are cut.
//   - FromDigitLines parses a block of decimal digits into a Matrix[int].
//
// Display:
//
//   - String renders one row per line. Rune cells print bare (rune aliases int32,
//     so Matrix[int32] prints as characters too), bool cells print '#' or '.', and
//     every other type prints through fmt right-aligned to the widest cell.
//
// Complexity quicksheet:
//   - New/FromFunc/Map/Clone: O(w*h); At/Set/TryGet: O(1); Neighbors4/8: O(1) per call.
//   - ShortestPath: O(w*h log(w*h)); Regions: O(w*h*d), d = 4 or 8.
package matrix
