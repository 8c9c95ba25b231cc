package matrix_test

import (
	"testing"

	"github.com/katalvlaran/aoclib/matrix"
	"github.com/katalvlaran/aoclib/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRuneRoundTrip checks that parsing and printing a rectangular block is
// idempotent up to the trailing newline.
func TestRuneRoundTrip(t *testing.T) {
	for _, in := range []string{
		"#.#\n...\n#.#",
		"abc\ndef\n",
		"x",
		"..@..\n.@@@.\n..@..\n",
	} {
		m, err := matrix.FromStringLines(in)
		require.NoError(t, err)
		out := m.String()
		want := in
		if want[len(want)-1] != '\n' {
			want += "\n"
		}
		assert.Equal(t, want, out)

		again, err := matrix.FromStringLines(out)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(m, again))
	}
}

// TestNumericPadding checks right alignment to the widest cell.
func TestNumericPadding(t *testing.T) {
	m := matrix.Must(matrix.FromRows([][]int{{1, 20, 3}, {400, 5, 6}}))
	assert.Equal(t, "  1  20   3\n400   5   6\n", m.String())
}

func TestBoolFormat(t *testing.T) {
	m := matrix.Must(matrix.FromRows([][]bool{{true, false}, {false, true}}))
	assert.Equal(t, "#.\n.#\n", m.String())
}

func TestStringFormat(t *testing.T) {
	m := matrix.Must(matrix.FromRows([][]string{{"a", "bb"}}))
	assert.Equal(t, " a bb\n", m.String())
}

// TestZeroWidthRows checks that every row emits its newline even when it
// has no cells.
func TestZeroWidthRows(t *testing.T) {
	ints := matrix.Must(matrix.FromFunc(0, 3, func(point.Point) int { return 0 }))
	assert.Equal(t, "\n\n\n", ints.String())

	runes := matrix.Must(matrix.New(0, 2, 'x'))
	assert.Equal(t, "\n\n", runes.String())
	assert.Equal(t, []string{"", ""}, matrix.Lines(runes))

	bools := matrix.Must(matrix.New(0, 1, true))
	assert.Equal(t, "\n", bools.String())

	empty := matrix.Must(matrix.New(0, 0, 0))
	assert.Equal(t, "", empty.String())
}

func TestLines(t *testing.T) {
	m := matrix.Must(matrix.FromStringLines("ab\ncd\n"))
	assert.Equal(t, []string{"ab", "cd"}, matrix.Lines(m))
}
