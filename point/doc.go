// SPDX-License-Identifier: MIT

// Package point provides the 2D integer coordinate and compass direction
// values shared by every grid and search routine in aoclib.
//
// What:
//
//   - Point is an immutable (X, Y) pair on a grid where Y grows downward.
//   - Dir is one of four compass directions with rotation and inversion.
//   - Neighbor tables enumerate 4- and 8-connected neighbors in a fixed order.
//
// Points carry no bounds of their own; validity is only meaningful relative
// to a matrix.Matrix. All arithmetic returns new values and panics on integer
// overflow, which can only happen through a caller bug.
//
// Parsing:
//
//   - Parse("3,4") accepts "x,y" with no embedded whitespace.
//   - Failures are *ParseError values matching ErrMissingComma or ErrBadCoordinate.
package point
