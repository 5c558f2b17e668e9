// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix contract in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		m, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidArgument) // expect InvalidArgument
		require.Nil(t, m)                                   // nothing allocated
	}
}

// TestNewDenseOutOfMemory ensures oversized and overflowing requests fail cleanly.
func TestNewDenseOutOfMemory(t *testing.T) {
	m, err := matrix.NewDense(3, 4, matrix.WithElementLimit(11)) // 12 > 11
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
	require.Nil(t, m)

	_, err = matrix.NewDense(math.MaxInt, 2) // rows*cols overflows int
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)

	m, err = matrix.NewDense(3, 4, matrix.WithElementLimit(12)) // exactly at the limit
	require.NoError(t, err)
	require.NoError(t, m.Destroy())
}

// TestWithElementLimitPanics verifies programmer errors in options panic.
func TestWithElementLimitPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithElementLimit(0) })
	require.Panics(t, func() { matrix.WithElementLimit(-5) })
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Destroy()) }()

	rows, err := m.Rows()
	require.NoError(t, err)
	require.Equal(t, 3, rows)

	cols, err := m.Cols()
	require.NoError(t, err)
	require.Equal(t, 4, cols)

	class, err := m.Class()
	require.NoError(t, err)
	require.Equal(t, matrix.ClassDense, class)
}

// TestZeroInitialized checks every entry of a new matrix is zero.
func TestZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(4, 3)
	require.NoError(t, err)
	for _, row := range mustRows(t, m) {
		for _, v := range row {
			require.Zero(t, v)
		}
	}
	require.NoError(t, m.Destroy())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Destroy()) }()

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 12)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Dense.Set(2,0): matrix: index out of range")

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on every valid index.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Destroy()) }()

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, m.Set(r, c, matrix.Element(10*r+c-7)))
		}
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, matrix.Element(10*r+c-7), v)
		}
	}
}

// TestDestroyInvalidates ensures a destroyed matrix refuses every operation.
func TestDestroyInvalidates(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	dest, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	defer func() { require.NoError(t, dest.Destroy()) }()

	require.NoError(t, m.Destroy())
	require.ErrorIs(t, m.Destroy(), matrix.ErrInvalidState) // single use only

	_, err = m.Rows()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	_, err = m.Cols()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	_, err = m.Class()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrInvalidState)
	require.ErrorIs(t, m.Transpose(dest), matrix.ErrInvalidState)
	require.ErrorIs(t, m.Multiply(dest, dest), matrix.ErrInvalidState)
	require.ErrorIs(t, dest.Multiply(m, dest), matrix.ErrInvalidState)
	require.ErrorIs(t, dest.Transpose(m), matrix.ErrInvalidState)
}

// TestZeroValueAndNilAreInvalid covers matrices never built by a constructor.
func TestZeroValueAndNilAreInvalid(t *testing.T) {
	var zero matrix.Dense
	_, err := zero.Rows()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	require.ErrorIs(t, zero.Destroy(), matrix.ErrInvalidState)

	var nilDense *matrix.Dense
	_, err = nilDense.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	require.Equal(t, "<invalid>", nilDense.String())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Destroy()) }()

	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, -4)

	require.Equal(t, "[1, 2]\n[3, -4]\n", m.String())
}
