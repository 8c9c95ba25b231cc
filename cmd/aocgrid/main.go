// SPDX-License-Identifier: MIT

// Command aocgrid runs the grid toolkit against puzzle input files.
//
// Usage:
//
//	aocgrid path 2021-15 --tile 5
//	aocgrid regions ./garden.txt
//	aocgrid show 2024-06
//
// An argument naming an existing file is read directly; anything else is
// treated as a puzzle id and resolved to input/<id>.txt by walking up from
// --input-dir (default: the working directory).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aocgrid:", err)
		os.Exit(1)
	}
}
