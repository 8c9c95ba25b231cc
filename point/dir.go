// SPDX-License-Identifier: MIT

package point

import "fmt"

// Dir is one of the four compass directions.
type Dir uint8

const (
	N Dir = iota // north, toward smaller Y
	S            // south, toward larger Y
	E            // east, toward larger X
	W            // west, toward smaller X
)

// Dirs lists every direction in declaration order.
var Dirs = [4]Dir{N, S, E, W}

var (
	dirDeltas = [4]Point{N: {0, -1}, S: {0, 1}, E: {1, 0}, W: {-1, 0}}
	dirInvert = [4]Dir{N: S, S: N, E: W, W: E}
	dirRight  = [4]Dir{N: E, E: S, S: W, W: N}
	dirLeft   = [4]Dir{N: W, W: S, S: E, E: N}
	dirNames  = [4]string{N: "N", S: "S", E: "E", W: "W"}
)

func (d Dir) check() {
	if d > W {
		panic(fmt.Sprintf("point: invalid direction %d", uint8(d)))
	}
}

// Delta returns the unit vector of d in a coordinate system where +Y is down.
func (d Dir) Delta() Point {
	d.check()
	return dirDeltas[d]
}

// Invert returns the opposite direction.
func (d Dir) Invert() Dir {
	d.check()
	return dirInvert[d]
}

// TurnRight rotates d 90° clockwise.
func (d Dir) TurnRight() Dir {
	d.check()
	return dirRight[d]
}

// TurnLeft rotates d 90° counter-clockwise.
func (d Dir) TurnLeft() Dir {
	d.check()
	return dirLeft[d]
}

// String returns the single-letter compass name of d.
func (d Dir) String() string {
	if d > W {
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
	return dirNames[d]
}

// DirFromRune maps arrow glyphs (^ v > <), UDRL letters and compass
// letters (N S E W) to a Dir. The boolean is false for any other rune.
func DirFromRune(r rune) (Dir, bool) {
	switch r {
	case '^', 'U', 'N':
		return N, true
	case 'v', 'D', 'S':
		return S, true
	case '>', 'R', 'E':
		return E, true
	case '<', 'L', 'W':
		return W, true
	}
	return 0, false
}
