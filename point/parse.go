// SPDX-License-Identifier: MIT

package point

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for Parse.
var (
	// ErrMissingComma indicates the input has no ',' separator.
	ErrMissingComma = errors.New("point: missing comma separator")
	// ErrBadCoordinate indicates a coordinate is not a valid integer.
	ErrBadCoordinate = errors.New("point: invalid coordinate")
)

// ParseError records which part of a point string failed to parse.
type ParseError struct {
	Input string // the full text passed to Parse
	Field string // "comma", "x" or "y"
	Err   error  // ErrMissingComma or ErrBadCoordinate wrapping the strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("point: parse %q: %s: %v", e.Input, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses "x,y" into a Point. Whitespace is not permitted.
func Parse(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, &ParseError{Input: s, Field: "comma", Err: ErrMissingComma}
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, &ParseError{Input: s, Field: "x", Err: fmt.Errorf("%w: %w", ErrBadCoordinate, err)}
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, &ParseError{Input: s, Field: "y", Err: fmt.Errorf("%w: %w", ErrBadCoordinate, err)}
	}
	return Point{X: x, Y: y}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Point {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText encodes p in the "x,y" form accepted by Parse.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)), nil
}

// UnmarshalText decodes the "x,y" form produced by MarshalText.
func (p *Point) UnmarshalText(text []byte) error {
	q, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
