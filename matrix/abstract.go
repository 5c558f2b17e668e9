// SPDX-License-Identifier: MIT
// Package matrix: default behaviors shared by every variant.
//
// Purpose:
//   - Implement transpose and multiply purely in terms of the Accessor
//     primitives (Rows, Cols, At, Set), with no assumption about storage.
//   - Let variants "inherit" both operations by delegating their Transpose
//     and Multiply methods here, and override only what they improve.
//
// Determinism:
//   - Fixed loop orders (r→c for transpose, r→c→i for multiply).
//   - A failing element access aborts immediately; dest keeps whatever was
//     written before the failure.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMultiply  = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf returns the dimensions of a, failing with ErrInvalidState for nil
// or invalid operands.
// Complexity: O(1).
func shapeOf(a Accessor) (rows, cols int, err error) {
	if a == nil {
		return 0, 0, ErrInvalidState
	}
	if rows, err = a.Rows(); err != nil {
		return 0, 0, err
	}
	if cols, err = a.Cols(); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// transposeShapes validates src (m×n) against dest (n×m).
func transposeShapes(src, dest Accessor) (rows, cols int, err error) {
	if rows, cols, err = shapeOf(src); err != nil {
		return 0, 0, err
	}
	dr, dc, err := shapeOf(dest)
	if err != nil {
		return 0, 0, err
	}
	if rows != dc || cols != dr {
		return 0, 0, fmt.Errorf("%d×%d into %d×%d: %w", rows, cols, dr, dc, ErrDimensionMismatch)
	}

	return rows, cols, nil
}

// multiplyShapes validates a (m×n) · b (n×p) → dest (m×p) and returns m, n, p.
// Every operand is checked for validity before any shape is compared.
func multiplyShapes(a, b, dest Accessor) (m, n, p int, err error) {
	if m, n, err = shapeOf(a); err != nil {
		return 0, 0, 0, err
	}
	bn, bp, err := shapeOf(b)
	if err != nil {
		return 0, 0, 0, err
	}
	dm, dp, err := shapeOf(dest)
	if err != nil {
		return 0, 0, 0, err
	}
	if m != dm || n != bn || bp != dp {
		return 0, 0, 0, fmt.Errorf("%d×%d · %d×%d into %d×%d: %w",
			m, n, bn, bp, dm, dp, ErrDimensionMismatch)
	}

	return m, n, bp, nil
}

// DefaultTranspose writes the transpose of src into dest through the
// Accessor primitives only. dest must not alias src.
//
// Implementation:
//   - Stage 1: validate both operands and dest shape == (src.Cols, src.Rows).
//   - Stage 2: for every (r,c) in src: dest.Set(c, r, src.At(r,c)).
//
// Errors:
//   - ErrInvalidState      (nil or invalid src/dest).
//   - ErrDimensionMismatch (dest is not n×m).
//   - Any At/Set error, wrapped with coordinates; dest is partially written.
//
// Complexity:
//   - Time O(m·n), Space O(1).
func DefaultTranspose(src, dest Accessor) error {
	rows, cols, err := transposeShapes(src, dest)
	if err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var (
		r, c int
		v    Element
	)
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if v, err = src.At(r, c); err != nil {
				return matrixErrorf(opTranspose, err)
			}
			if err = dest.Set(c, r, v); err != nil {
				return matrixErrorf(opTranspose, err)
			}
		}
	}

	return nil
}

// DefaultMultiply writes a × b into dest with the canonical triple loop:
// dest(r,c) = Σ_i a(r,i)·b(i,c). The right operand is walked down its
// columns, which is the access pattern SmartMul exists to avoid.
// dest must alias neither a nor b.
//
// Implementation:
//   - Stage 1: validate a.Rows==dest.Rows, a.Cols==b.Rows, b.Cols==dest.Cols.
//   - Stage 2: r→c→i loops through At; one Set per output cell.
//
// Errors:
//   - ErrInvalidState      (nil or invalid operand).
//   - ErrDimensionMismatch (incompatible shapes).
//   - Any At/Set error, wrapped; dest is partially written.
//
// Complexity:
//   - Time O(m·n·p), Space O(1).
func DefaultMultiply(a, b, dest Accessor) error {
	m, n, p, err := multiplyShapes(a, b, dest)
	if err != nil {
		return matrixErrorf(opMultiply, err)
	}

	var (
		r, c, i int
		av, bv  Element
		sum     Element
	)
	for r = 0; r < m; r++ {
		for c = 0; c < p; c++ {
			sum = 0
			for i = 0; i < n; i++ {
				if av, err = a.At(r, i); err != nil {
					return matrixErrorf(opMultiply, err)
				}
				if bv, err = b.At(i, c); err != nil {
					return matrixErrorf(opMultiply, err)
				}
				sum += av * bv
			}
			if err = dest.Set(r, c, sum); err != nil {
				return matrixErrorf(opMultiply, err)
			}
		}
	}

	return nil
}
