// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"

	"github.com/katalvlaran/vmatrix/matrix"
)

// GoldMultiply is the plain triple-loop product of two rectangular literals.
// It shares no code with the matrix package and is the reference every
// variant is checked against.
//
// Errors:
//   - matrix.ErrInvalidArgument when either operand is empty.
//   - matrix.ErrDimensionMismatch when len(a[0]) != len(b) or a literal is ragged.
//
// Complexity: O(m·n·p).
func GoldMultiply(a, b [][]matrix.Element) ([][]matrix.Element, error) {
	if len(a) == 0 || len(b) == 0 || len(a[0]) == 0 || len(b[0]) == 0 {
		return nil, fmt.Errorf("GoldMultiply: %w", matrix.ErrInvalidArgument)
	}
	m, n, p := len(a), len(a[0]), len(b[0])
	if len(b) != n {
		return nil, fmt.Errorf("GoldMultiply: %d×%d · %d×%d: %w", m, n, len(b), p, matrix.ErrDimensionMismatch)
	}
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("GoldMultiply: ragged multiplicand: %w", matrix.ErrDimensionMismatch)
		}
	}
	for k := range b {
		if len(b[k]) != p {
			return nil, fmt.Errorf("GoldMultiply: ragged multiplier: %w", matrix.ErrDimensionMismatch)
		}
	}

	c := make([][]matrix.Element, m)
	for i := 0; i < m; i++ {
		c[i] = make([]matrix.Element, p)
		for j := 0; j < p; j++ {
			for k := 0; k < n; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return c, nil
}

// firstDiff returns the first (row, col) where got and want differ, in
// row-major order, and ok=false; ok=true when they are identical.
// Shapes are assumed equal.
func firstDiff(got, want [][]matrix.Element) (row, col int, ok bool) {
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}
