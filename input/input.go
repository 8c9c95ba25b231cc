// SPDX-License-Identifier: MIT

// Package input locates and loads puzzle input files.
//
// Inputs live at <dir>/input/<puzzle-id>.txt. Locate starts at the working
// directory (or AOC_INPUT_DIR, or WithStartDir) and walks up through parent
// directories until the file is found, so solvers run from any subdirectory
// of the repository.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvStartDir overrides the directory the search starts from.
const EnvStartDir = "AOC_INPUT_DIR"

// ErrNotFound indicates no input file exists in the start directory or any parent.
var ErrNotFound = errors.New("input: puzzle input not found")

// Options configures where Locate looks.
type Options struct {
	StartDir  string // first directory searched; "" means the working directory
	Subdir    string // directory holding input files inside each searched directory
	Extension string // file extension, including the dot
}

// Option represents a functional option for Locate and Read.
type Option func(*Options)

// DefaultOptions returns Options seeded from the environment:
//   - StartDir:  $AOC_INPUT_DIR, or "" for the working directory
//   - Subdir:    "input"
//   - Extension: ".txt"
func DefaultOptions() Options {
	return Options{
		StartDir:  os.Getenv(EnvStartDir),
		Subdir:    "input",
		Extension: ".txt",
	}
}

// WithStartDir sets the first directory searched.
func WithStartDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.StartDir = dir
		}
	}
}

// WithSubdir sets the per-directory subfolder holding inputs.
// An empty name searches the directories themselves.
func WithSubdir(name string) Option {
	return func(o *Options) { o.Subdir = name }
}

// WithExtension sets the input file extension.
func WithExtension(ext string) Option {
	return func(o *Options) { o.Extension = ext }
}

// Locate returns the path of the input file for puzzleID.
func Locate(puzzleID string, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dir := cfg.StartDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("input: working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("input: resolve %q: %w", dir, err)
	}

	name := puzzleID + cfg.Extension
	for {
		candidate := filepath.Join(dir, cfg.Subdir, name)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("input: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filepath.Join(cfg.Subdir, name))
		}
		dir = parent
	}
}

// Read locates and returns the contents of the input file for puzzleID.
func Read(puzzleID string, opts ...Option) (string, error) {
	path, err := Locate(puzzleID, opts...)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	return string(b), nil
}

// Lines splits text into lines, trimming '\r' and dropping trailing blank lines.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
