// SPDX-License-Identifier: MIT

// Package matrix: the matrix contract.
// This file contains ONLY the element type and the two interfaces every
// variant satisfies. Implementations live in dense.go, smartmul.go and in
// other packages (see mmapmatrix); the shared algorithms live in abstract.go.
package matrix

// Element is the single fixed integer type stored in every matrix.
// Arithmetic is exact, so results of different multiply strategies
// must agree bit for bit.
type Element int64

// Class names reported by Class() for the variants in this package.
const (
	ClassDense    = "denseMatrix"
	ClassSmartMul = "smartMulMatrix"
)

// Accessor is the storage capability set: dimension queries and element
// get/set. DefaultTranspose and DefaultMultiply need nothing else, so any
// type supplying these four primitives gets transpose and multiply for free.
//
// A value is valid iff Rows() > 0 and Cols() > 0; on an invalid value every
// method fails with ErrInvalidState.
type Accessor interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() (int, error)

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() (int, error)

	// At returns the element at (r, c).
	// Returns ErrOutOfRange unless 0 ≤ r < Rows() and 0 ≤ c < Cols().
	// Complexity: O(1).
	At(r, c int) (Element, error)

	// Set stores v at (r, c). Same failure modes as At.
	// Complexity: O(1).
	Set(r, c int, v Element) error
}

// Matrix is the full contract implemented by every variant.
//
// Ownership: whoever constructs a Matrix destroys it exactly once.
// Transpose and Multiply write into a destination the caller allocated
// and sized; they never take ownership of their arguments. On failure the
// destination may be partially written.
//
// The destination must be a separate matrix: it may not be the receiver or
// the other operand. Results are read and written cell by cell, so an
// aliased destination yields wrong values without any error.
type Matrix interface {
	Accessor

	// Class returns a stable name identifying the concrete variant.
	Class() (string, error)

	// Destroy releases all resources owned by the matrix and leaves it
	// invalid; a second call fails with ErrInvalidState.
	Destroy() error

	// Transpose fills dest (n×m) with the transpose of the receiver (m×n).
	// dest must not be the receiver.
	// Complexity: O(m·n).
	Transpose(dest Matrix) error

	// Multiply fills dest (m×p) with receiver (m×n) × other (n×p).
	// dest must be neither the receiver nor other.
	// Complexity: O(m·n·p).
	Multiply(other, dest Matrix) error
}
