// SPDX-License-Identifier: MIT

package point

import (
	"fmt"
	"math"
)

// Point is a 2D integer coordinate. It is comparable and may be used as a map key.
type Point struct {
	X, Y int
}

// Offsets4 lists the axis-aligned unit offsets in N, S, W, E order.
var Offsets4 = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Offsets8 lists the 8-connected unit offsets in N, S, E, W, NE, NW, SE, SW order.
// Callers asserting exact output sequences depend on this order.
var Offsets8 = [8]Point{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {-1, -1}, {1, 1}, {-1, 1},
}

// New returns the point (x, y).
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// checkedAdd adds a and b, panicking if the result overflows int.
func checkedAdd(a, b int) int {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		panic(fmt.Sprintf("point: integer overflow computing %d + %d", a, b))
	}
	return a + b
}

// Delta returns p translated by (dx, dy).
// Panics if either coordinate overflows.
func (p Point) Delta(dx, dy int) Point {
	return Point{X: checkedAdd(p.X, dx), Y: checkedAdd(p.Y, dy)}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return p.Delta(q.X, q.Y)
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	if q.X == math.MinInt || q.Y == math.MinInt {
		panic(fmt.Sprintf("point: integer overflow negating %v", q))
	}
	return p.Delta(-q.X, -q.Y)
}

// Up returns the point one row above p (Y-1).
func (p Point) Up() Point { return p.Delta(0, -1) }

// Down returns the point one row below p (Y+1).
func (p Point) Down() Point { return p.Delta(0, 1) }

// Left returns the point one column left of p (X-1).
func (p Point) Left() Point { return p.Delta(-1, 0) }

// Right returns the point one column right of p (X+1).
func (p Point) Right() Point { return p.Delta(1, 0) }

// Step returns p moved one unit in direction d.
func (p Point) Step(d Dir) Point {
	return p.Add(d.Delta())
}

// Neighbors returns the four axis-aligned neighbors of p as up, down, left, right.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, o := range Offsets4 {
		out[i] = p.Add(o)
	}
	return out
}

// Neighbors8 returns all eight neighbors of p in Offsets8 order.
func (p Point) Neighbors8() [8]Point {
	var out [8]Point
	for i, o := range Offsets8 {
		out[i] = p.Add(o)
	}
	return out
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
// Panics if the distance overflows int.
func (p Point) Manhattan(q Point) int {
	return checkedAdd(absDiff(p.X, q.X), absDiff(p.Y, q.Y))
}

// String renders p as "x, y".
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// absDiff returns |a-b|, panicking if it overflows int.
func absDiff(a, b int) int {
	if a < b {
		a, b = b, a
	}
	if b < 0 && a > math.MaxInt+b {
		panic(fmt.Sprintf("point: integer overflow computing |%d - %d|", a, b))
	}
	return a - b
}
