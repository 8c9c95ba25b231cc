// SPDX-License-Identifier: MIT

// Package aoclib is the shared toolkit behind a collection of puzzle solvers:
// the spatial and search primitives that day-specific solutions build on.
//
// What lives here:
//
//	point/    Point and Dir value types, neighbor tables, "x,y" parsing
//	minheap/  generic array-backed binary min-heap
//	dijkstra/ generic Dijkstra over implicit graphs with budgets and hooks
//	matrix/   generic dense 2D grid: parsing, iteration, neighbors, regions, paths
//	input/    locate input/<puzzle-id>.txt by walking up parent directories
//	cmd/      aocgrid, a CLI that runs the toolkit on input files
//
// Quick ASCII example:
//
//	S..#
//	.#..
//	...E
//
// parsed with matrix.FromStringLines and solved with Matrix.ShortestPath,
// gives a 5-step route from S to E.
package aoclib
