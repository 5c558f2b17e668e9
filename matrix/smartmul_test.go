package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestSmartMul_InheritsDenseBehavior checks the storage primitives SmartMul
// borrows from Dense.
func TestSmartMul_InheritsDenseBehavior(t *testing.T) {
	m, err := matrix.NewSmartMul(2, 3)
	require.NoError(t, err)

	class, err := m.Class()
	require.NoError(t, err)
	require.Equal(t, matrix.ClassSmartMul, class)

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.Element(42), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	require.Equal(t, "[0, 0, 0]\n[0, 0, 42]\n", m.String())

	require.NoError(t, m.Destroy())
	require.ErrorIs(t, m.Destroy(), matrix.ErrInvalidState)
	_, err = m.Class()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
}

func TestNewSmartMul_InvalidArguments(t *testing.T) {
	m, err := matrix.NewSmartMul(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.Nil(t, m)

	m, err = matrix.NewSmartMul(5, 5, matrix.WithElementLimit(24))
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
	require.Nil(t, m)
}

func TestSmartMul_NilAndZeroValue(t *testing.T) {
	var nilSmart *matrix.SmartMul
	_, err := nilSmart.Rows()
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	_, err = nilSmart.Class()
	require.ErrorIs(t, err, matrix.ErrInvalidState)

	var zero matrix.SmartMul
	_, err = zero.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidState)
	require.ErrorIs(t, zero.Destroy(), matrix.ErrInvalidState)

	dest, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, nilSmart.Multiply(dest, dest), matrix.ErrInvalidState)
	require.NoError(t, dest.Destroy())
}

func TestSmartMul_String(t *testing.T) {
	var nilSmart *matrix.SmartMul
	require.NotPanics(t, func() { _ = nilSmart.String() })
	require.Equal(t, "<invalid>", nilSmart.String())

	var zero matrix.SmartMul
	require.Equal(t, "<invalid>", zero.String())

	m, err := matrix.NewSmartMul(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, -3))
	require.Equal(t, "[0, -3]\n", m.String())
	require.Equal(t, "[0, -3]\n", fmt.Sprint(m))

	require.NoError(t, m.Destroy())
	require.Equal(t, "<invalid>", m.String())
}

// TestSmartMul_TemporaryOutOfMemory ensures a failed allocation of the
// transposed multiplier aborts before dest is touched.
func TestSmartMul_TemporaryOutOfMemory(t *testing.T) {
	a, err := matrix.NewSmartMul(1, 2, matrix.WithElementLimit(4))
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Destroy()) }()
	require.NoError(t, a.Set(0, 0, 1))
	require.NoError(t, a.Set(0, 1, 1))

	dense := variant(t, matrix.ClassDense)
	b := mustFromRows(t, dense, [][]matrix.Element{{1, 2, 3}, {4, 5, 6}}) // otherT needs 6 elements
	dest := mustFromRows(t, dense, [][]matrix.Element{{-1, -1, -1}})

	err = a.Multiply(b, dest)
	require.ErrorIs(t, err, matrix.ErrOutOfMemory)
	require.Equal(t, matrix.KindOutOfMemory, matrix.KindOf(err))
	require.Equal(t, [][]matrix.Element{{-1, -1, -1}}, mustRows(t, dest))
}

// TestSmartMul_TransposeFailureSurfaces ensures an operand failing during the
// pre-transpose reports its own error and leaves dest untouched.
func TestSmartMul_TransposeFailureSurfaces(t *testing.T) {
	smart := variant(t, matrix.ClassSmartMul)
	a := mustFromRows(t, smart, [][]matrix.Element{{1, 2}})
	b := failingMatrix{Matrix: mustFromRows(t, smart, [][]matrix.Element{{3, 4}, {5, 6}}), badCol: 1}
	dest := mustFromRows(t, smart, [][]matrix.Element{{7, 7}})

	err := a.Multiply(b, dest)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, [][]matrix.Element{{7, 7}}, mustRows(t, dest))
}

// TestSmartMul_DestSetFailure covers a destination that fails midway.
func TestSmartMul_DestSetFailure(t *testing.T) {
	smart := variant(t, matrix.ClassSmartMul)
	a := mustFromRows(t, smart, [][]matrix.Element{{1, 2}, {3, 4}})
	b := mustFromRows(t, smart, [][]matrix.Element{{5, 6}, {7, 8}})
	inner := mustNew(t, smart, 2, 2)
	dest := readOnlyRow{Matrix: inner, row: 1}

	err := a.Multiply(b, dest)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, [][]matrix.Element{{19, 22}, {0, 0}}, mustRows(t, inner))
}

// failingMatrix is a Matrix whose At fails on one column.
type failingMatrix struct {
	matrix.Matrix
	badCol int
}

func (f failingMatrix) At(r, c int) (matrix.Element, error) {
	if c == f.badCol {
		return 0, matrix.ErrOutOfRange
	}

	return f.Matrix.At(r, c)
}

// readOnlyRow is a Matrix whose Set fails on one row.
type readOnlyRow struct {
	matrix.Matrix
	row int
}

func (m readOnlyRow) Set(r, c int, v matrix.Element) error {
	if r == m.row {
		return matrix.ErrOutOfRange
	}

	return m.Matrix.Set(r, c, v)
}
