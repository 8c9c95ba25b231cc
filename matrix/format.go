// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders the matrix one row per line with a trailing newline, so a
// zero-width matrix renders as Height newlines.
// Rune cells print bare, bool cells print '#' for true and '.' for false,
// and other cells print via fmt right-aligned to the widest cell and
// separated by a single space.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	switch mm := any(m).(type) {
	case *Matrix[rune]:
		sb.Grow(len(mm.data) + mm.height)
		for y := 0; y < mm.height; y++ {
			for _, r := range mm.row(y) {
				sb.WriteRune(r)
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	case *Matrix[bool]:
		sb.Grow(len(mm.data) + mm.height)
		for y := 0; y < mm.height; y++ {
			for _, b := range mm.row(y) {
				if b {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	}

	cells := make([]string, len(m.data))
	pad := 0
	for i, v := range m.data {
		cells[i] = fmt.Sprint(v)
		pad = max(pad, utf8.RuneCountInString(cells[i]))
	}
	for y := 0; y < m.height; y++ {
		for x, c := range cells[y*m.width : (y+1)*m.width] {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Repeat(" ", pad-utf8.RuneCountInString(c)))
			sb.WriteString(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// row returns the cells of row y as a subslice of the backing data.
func (m *Matrix[T]) row(y int) []T {
	return m.data[y*m.width : (y+1)*m.width]
}

// Lines returns the rows of a rune matrix as strings, without newlines.
func Lines(m *Matrix[rune]) []string {
	out := make([]string, 0, m.height)
	for y := 0; y < m.height; y++ {
		out = append(out, string(m.row(y)))
	}
	return out
}
