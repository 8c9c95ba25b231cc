package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/aoclib/matrix"
	"github.com/katalvlaran/aoclib/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maze = `
#####
#S..#
#.#.#
#..E#
#####
`

func TestFind(t *testing.T) {
	m := matrix.Must(matrix.FromStringLines(maze))
	p, ok := m.Find(func(r rune) bool { return r == '.' })
	require.True(t, ok)
	assert.Equal(t, point.New(2, 1), p)

	_, ok = m.Find(func(r rune) bool { return r == '?' })
	assert.False(t, ok)
}

func TestFindValues(t *testing.T) {
	m := matrix.Must(matrix.FromStringLines(maze))
	walls := slices.Collect(matrix.FindValues(m, '#'))
	assert.Len(t, walls, 17)
	assert.Equal(t, point.New(0, 0), walls[0])
	assert.Equal(t, []point.Point{{2, 2}}, slices.Collect(matrix.FindValues(m, '#'))[8:9])
	assert.Equal(t, 17, m.Count(func(r rune) bool { return r == '#' }))
}

func TestFindSingleValue(t *testing.T) {
	m := matrix.Must(matrix.FromStringLines(maze))
	s, err := matrix.FindSingleValue(m, 'S')
	require.NoError(t, err)
	assert.Equal(t, point.New(1, 1), s)

	_, err = matrix.FindSingleValue(m, '?')
	require.ErrorIs(t, err, matrix.ErrNotFound)

	_, err = matrix.FindSingleValue(m, '.')
	require.ErrorIs(t, err, matrix.ErrNotUnique)
}
