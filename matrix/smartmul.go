// SPDX-License-Identifier: MIT

// Package matrix - cache-aware multiplication variant.
//
// SmartMul shares Dense storage and every Dense operation except Multiply.
// Multiply pre-transposes the right operand once so that the inner loop
// reads two rows sequentially instead of striding down a column.

package matrix

import "fmt"

// SmartMul is a Dense matrix whose Multiply transposes the multiplier first.
// The embedded *Dense supplies Rows, Cols, At, Set, Destroy and Transpose.
type SmartMul struct {
	*Dense
}

var (
	_ Matrix       = (*SmartMul)(nil)
	_ fmt.Stringer = (*SmartMul)(nil)
)

// NewSmartMul creates an r×c zero SmartMul matrix.
// Construction rules and errors are those of NewDense.
// Complexity: O(r*c).
func NewSmartMul(rows, cols int, opts ...Option) (*SmartMul, error) {
	o := gatherOptions(opts...)
	if err := o.CheckShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewSmartMul(%d,%d): %w", rows, cols, err)
	}

	return &SmartMul{Dense: newDense(rows, cols, o)}, nil
}

// dense returns the embedded storage, tolerating a nil receiver so the
// promoted validity checks report ErrInvalidState instead of panicking.
func (m *SmartMul) dense() *Dense {
	if m == nil {
		return nil
	}

	return m.Dense
}

// Class returns ClassSmartMul.
func (m *SmartMul) Class() (string, error) {
	if !m.dense().valid() {
		return "", fmt.Errorf("SmartMul.%s: %w", ctxClass, ErrInvalidState)
	}

	return ClassSmartMul, nil
}

// Destroy releases the storage; see (*Dense).Destroy.
func (m *SmartMul) Destroy() error { return m.dense().Destroy() }

// Rows returns the row count; see (*Dense).Rows.
func (m *SmartMul) Rows() (int, error) { return m.dense().Rows() }

// Cols returns the column count; see (*Dense).Cols.
func (m *SmartMul) Cols() (int, error) { return m.dense().Cols() }

// At returns the element at (row, col); see (*Dense).At.
func (m *SmartMul) At(row, col int) (Element, error) { return m.dense().At(row, col) }

// Set stores v at (row, col); see (*Dense).Set.
func (m *SmartMul) Set(row, col int, v Element) error { return m.dense().Set(row, col, v) }

// String renders like (*Dense).String; a nil or invalid matrix is "<invalid>".
func (m *SmartMul) String() string { return m.dense().String() }

// Transpose delegates to DefaultTranspose.
func (m *SmartMul) Transpose(dest Matrix) error { return DefaultTranspose(m, dest) }

// Multiply writes m × other into dest using a pre-transposed copy of other.
//
// Implementation:
//   - Stage 1: validate shapes exactly as DefaultMultiply does.
//   - Stage 2: allocate otherT (p×n) with NewSmartMul and m's options; release it on every exit path.
//   - Stage 3: otherT = transpose(other) through DefaultTranspose.
//   - Stage 4: dest(r,c) = Σ_i m(r,i)·otherT(c,i); both scans are row-major.
//
// Errors:
//   - ErrInvalidState / ErrDimensionMismatch (Stage 1; dest untouched).
//   - ErrOutOfMemory when otherT cannot be allocated (dest untouched).
//   - Any transpose or Set error; dest may be partially written.
//
// Complexity:
//   - Time O(m·n·p + n·p), Space O(n·p) for otherT.
func (m *SmartMul) Multiply(other, dest Matrix) (err error) {
	rows, inner, cols, err := multiplyShapes(m, other, dest)
	if err != nil {
		return matrixErrorf(opMultiply, err)
	}

	otherT, err := NewSmartMul(cols, inner, m.opts.asOption())
	if err != nil {
		return matrixErrorf(opMultiply, err)
	}
	defer func() {
		if derr := otherT.Destroy(); derr != nil && err == nil {
			err = matrixErrorf(opMultiply, derr)
		}
	}()

	if err = DefaultTranspose(other, otherT); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	var (
		r, c, i int
		a, bt   []Element
		sum     Element
	)
	for r = 0; r < rows; r++ {
		a = m.row(r) // m validated in Stage 1
		for c = 0; c < cols; c++ {
			bt = otherT.row(c)
			sum = 0
			for i = 0; i < inner; i++ {
				sum += a[i] * bt[i]
			}
			if err = dest.Set(r, c, sum); err != nil {
				return matrixErrorf(opMultiply, err)
			}
		}
	}

	return nil
}
