// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: every method returns errors instead of panicking.
//   - Borrow Transpose/Multiply from the default behaviors (abstract.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Rows/Cols: O(1); Destroy: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRows    = "Rows"    // method tag used in error wrappers
	ctxCols    = "Cols"    // method tag used in error wrappers
	ctxClass   = "Class"   // method tag used in error wrappers
	ctxDestroy = "Destroy" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both > 0 while valid, both 0 after Destroy.
//   - data is a flat buffer of length r*c in row-major order (offset = r*c + c).
//   - opts is the allocation policy the matrix was built with.
type Dense struct {
	r, c int       // row and column counts
	data []Element // contiguous row-major storage (len == r*c)
	opts Options   // allocation policy, inherited by temporaries
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: resolve options; validate rows>0 && cols>0 and the element budget.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidArgument (rows <= 0 or cols <= 0).
//   - ErrOutOfMemory     (rows*cols overflows or exceeds the element limit).
//
// Nothing is allocated and nil is returned on failure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := o.CheckShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return newDense(rows, cols, o), nil
}

// newDense allocates without validation; callers have already run CheckShape.
func newDense(rows, cols int, o Options) *Dense {
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]Element, rows*cols), // make() zero-fills deterministically
		opts: o,
	}
}

// valid reports whether m may be operated on.
func (m *Dense) valid() bool { return m != nil && m.r > 0 && m.c > 0 }

// Class returns ClassDense.
func (m *Dense) Class() (string, error) {
	if !m.valid() {
		return "", fmt.Errorf("Dense.%s: %w", ctxClass, ErrInvalidState)
	}

	return ClassDense, nil
}

// Destroy releases the buffer and invalidates the matrix.
// A second call fails with ErrInvalidState.
// Complexity: O(1).
func (m *Dense) Destroy() error {
	if !m.valid() {
		return fmt.Errorf("Dense.%s: %w", ctxDestroy, ErrInvalidState)
	}
	m.data = nil
	m.r, m.c = 0, 0

	return nil
}

// Rows returns the row count.
// Complexity: O(1).
func (m *Dense) Rows() (int, error) {
	if !m.valid() {
		return 0, fmt.Errorf("Dense.%s: %w", ctxRows, ErrInvalidState)
	}

	return m.r, nil
}

// Cols returns the column count.
// Complexity: O(1).
func (m *Dense) Cols() (int, error) {
	if !m.valid() {
		return 0, fmt.Errorf("Dense.%s: %w", ctxCols, ErrInvalidState)
	}

	return m.c, nil
}

// indexOf checks validity and bounds, then computes the row-major offset.
// Returns a bare sentinel; At/Set wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if !m.valid() {
		return 0, ErrInvalidState
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: r*c + c.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrInvalidState when m is invalid.
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (Element, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Same failure modes as At.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v Element) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Transpose delegates to DefaultTranspose.
func (m *Dense) Transpose(dest Matrix) error { return DefaultTranspose(m, dest) }

// Multiply delegates to DefaultMultiply (naive row-by-column).
func (m *Dense) Multiply(other, dest Matrix) error { return DefaultMultiply(m, other, dest) }

// row returns the backing slice of row r without bounds checks.
// Callers must have validated m and r.
func (m *Dense) row(r int) []Element {
	return m.data[r*m.c : (r+1)*m.c]
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// An invalid matrix renders as "<invalid>".
// Complexity: O(r*c).
func (m *Dense) String() string {
	if !m.valid() {
		return "<invalid>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%d", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
