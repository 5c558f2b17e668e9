// Package vmatrix is a small integer matrix library built around one
// contract and several interchangeable storage variants.
//
// What is vmatrix?
//
//	An eight-operation matrix contract (Class, Destroy, Rows, Cols, At, Set,
//	Transpose, Multiply) with default Transpose and Multiply written once
//	against the storage primitives, and variants that borrow or override them:
//		• Dense    - flat row-major buffer, default behaviors
//		• SmartMul - Dense storage, cache-aware Multiply
//		• mmapmatrix.Matrix - elements in a memory-mapped file
//
// Layout:
//
//	matrix/         - contract, errors, options, Dense, SmartMul, variant table
//	mmapmatrix/     - file-backed variant
//	harness/        - cross-variant checks against a reference multiply
//	cmd/matrixtest/ - command-line front end for the harness
//
// Quick example:
//
//	a, _ := matrix.NewSmartMul(2, 3)
//	b, _ := matrix.NewDense(3, 2)
//	c, _ := matrix.NewDense(2, 2)
//	_ = a.Multiply(b, c)
//
//	go install github.com/katalvlaran/vmatrix/cmd/matrixtest@latest
package vmatrix
