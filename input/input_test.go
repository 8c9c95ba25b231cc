package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/aoclib/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree creates root/input/<id>.txt and a nested root/a/b directory.
func tree(t *testing.T, id, content string) (root, nested string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "input"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "input", id+".txt"), []byte(content), 0o644))
	nested = filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	return root, nested
}

func TestLocateWalksUp(t *testing.T) {
	t.Setenv(input.EnvStartDir, "")
	root, nested := tree(t, "2021-15", "1\n")

	path, err := input.Locate("2021-15", input.WithStartDir(nested))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "input", "2021-15.txt"), path)
}

func TestLocateNearestWins(t *testing.T) {
	t.Setenv(input.EnvStartDir, "")
	_, nested := tree(t, "day1", "outer")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, "input"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "input", "day1.txt"), []byte("inner"), 0o644))

	text, err := input.Read("day1", input.WithStartDir(nested))
	require.NoError(t, err)
	assert.Equal(t, "inner", text)
}

func TestLocateEnvOverride(t *testing.T) {
	_, nested := tree(t, "day2", "env")
	t.Setenv(input.EnvStartDir, nested)

	text, err := input.Read("day2")
	require.NoError(t, err)
	assert.Equal(t, "env", text)
}

func TestLocateNotFound(t *testing.T) {
	t.Setenv(input.EnvStartDir, "")
	_, err := input.Locate("definitely-missing-puzzle", input.WithStartDir(t.TempDir()))
	require.ErrorIs(t, err, input.ErrNotFound)
}

func TestLocateCustomLayout(t *testing.T) {
	t.Setenv(input.EnvStartDir, "")
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "day3.in"), []byte("x"), 0o644))

	path, err := input.Locate("day3", input.WithStartDir(root), input.WithSubdir(""), input.WithExtension(".in"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "day3.in"), path)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, input.Lines("a\r\n\nb\n\n"))
	assert.Empty(t, input.Lines(""))
}
