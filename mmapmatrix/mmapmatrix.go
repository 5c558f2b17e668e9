// SPDX-License-Identifier: MIT

// Package mmapmatrix - a matrix variant stored in a memory-mapped file.
//
// Purpose:
//   - Supply the storage primitives (Rows, Cols, At, Set, Class, Destroy)
//     over a file mapped with mmap-go.
//   - Borrow Transpose and Multiply from matrix.DefaultTranspose and
//     matrix.DefaultMultiply, exactly as matrix.Dense does.
//
// File layout (little-endian):
//
//	[0:8)   magic "VMATRIX1"
//	[8:16)  rows (uint64)
//	[16:24) cols (uint64)
//	[24:)   rows*cols int64 elements, row-major
package mmapmatrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/vmatrix/matrix"
)

// ClassName is reported by Class().
const ClassName = "mmapMatrix"

const (
	headerSize = 24
	elemSize   = 8
	magic      = "VMATRIX1"
	filePerm   = 0o644
)

// ErrCorrupt is returned by Open when the file is not a valid matrix file.
var ErrCorrupt = errors.New("mmapmatrix: corrupt matrix file")

// Matrix is a row-major matrix whose elements live in a mapped file.
type Matrix struct {
	r, c            int
	file            *os.File
	data            mmap.MMap
	path            string
	removeOnDestroy bool
}

var _ matrix.Matrix = (*Matrix)(nil)

// mapFile maps f; replaced in tests to exercise the failure path.
var mapFile = mmap.Map

// Create makes (or truncates) the file at path, sizes it for an r×c
// zero matrix and maps it read-write.
//
// Errors:
//   - matrix.ErrInvalidArgument / matrix.ErrOutOfMemory from the shape check.
//   - matrix.ErrOutOfMemory wrapping the OS error when the file cannot be
//     sized or mapped. The file is closed, and removed only if Create made
//     it; a file that already existed is left in place, truncated.
//
// Complexity: O(1) plus the OS cost of sizing the file.
func Create(path string, rows, cols int, opts ...matrix.Option) (*Matrix, error) {
	if err := matrix.NewOptions(opts...).CheckShape(rows, cols); err != nil {
		return nil, fmt.Errorf("mmapmatrix.Create(%d,%d): %w", rows, cols, err)
	}

	f, created, err := openForCreate(path)
	if err != nil {
		return nil, fmt.Errorf("mmapmatrix.Create: %w", err)
	}
	fail := func(err error) (*Matrix, error) {
		_ = f.Close()
		if created {
			_ = os.Remove(path)
		}
		return nil, fmt.Errorf("mmapmatrix.Create(%d,%d): %w: %w", rows, cols, matrix.ErrOutOfMemory, err)
	}

	if err = f.Truncate(int64(headerSize + rows*cols*elemSize)); err != nil {
		return fail(err)
	}
	data, err := mapFile(f, mmap.RDWR, 0)
	if err != nil {
		return fail(err)
	}

	copy(data[0:8], magic)
	binary.LittleEndian.PutUint64(data[8:16], uint64(rows))
	binary.LittleEndian.PutUint64(data[16:24], uint64(cols))

	return &Matrix{r: rows, c: cols, file: f, data: data, path: path}, nil
}

// openForCreate opens path read-write and empty. created reports whether
// the file did not exist before.
func openForCreate(path string) (f *os.File, created bool, err error) {
	f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, filePerm)
	if err == nil {
		return f, true, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return nil, false, err
	}
	f, err = os.OpenFile(path, os.O_RDWR|os.O_TRUNC, 0)

	return f, false, err
}

// Open maps an existing matrix file read-write and validates its header.
//
// Errors:
//   - ErrCorrupt (wrapped) when the magic, shape or file size is wrong.
//   - the OS error when the file cannot be opened or mapped.
func Open(path string) (*Matrix, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("mmapmatrix.Open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmapmatrix.Open: %w", err)
	}
	if info.Size() < headerSize {
		_ = f.Close()
		return nil, fmt.Errorf("mmapmatrix.Open(%s): file too small: %w", path, ErrCorrupt)
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmapmatrix.Open: %w", err)
	}
	fail := func(reason string) (*Matrix, error) {
		_ = data.Unmap()
		_ = f.Close()
		return nil, fmt.Errorf("mmapmatrix.Open(%s): %s: %w", path, reason, ErrCorrupt)
	}

	if string(data[0:8]) != magic {
		return fail("bad magic")
	}
	rows := binary.LittleEndian.Uint64(data[8:16])
	cols := binary.LittleEndian.Uint64(data[16:24])
	if rows == 0 || cols == 0 {
		return fail("bad shape")
	}
	body := uint64(info.Size()) - headerSize
	if body%elemSize != 0 || body/elemSize%rows != 0 || body/elemSize/rows != cols {
		return fail("size does not match shape")
	}

	return &Matrix{r: int(rows), c: int(cols), file: f, data: data, path: path}, nil
}

// Factory returns a constructor creating each matrix in a fresh file under
// dir. Files made this way are removed by Destroy.
func Factory(dir string, opts ...matrix.Option) matrix.Constructor {
	return func(rows, cols int) (matrix.Matrix, error) {
		f, err := os.CreateTemp(dir, "vmatrix-*.mat")
		if err != nil {
			return nil, fmt.Errorf("mmapmatrix.Factory: %w", err)
		}
		path := f.Name()
		_ = f.Close()

		m, err := Create(path, rows, cols, opts...)
		if err != nil {
			_ = os.Remove(path)
			return nil, err
		}
		m.removeOnDestroy = true

		return m, nil
	}
}

// Variant binds ClassName to Factory(dir).
func Variant(dir string, opts ...matrix.Option) matrix.Variant {
	return matrix.Variant{Name: ClassName, New: Factory(dir, opts...)}
}

func (m *Matrix) valid() bool { return m != nil && m.r > 0 && m.c > 0 }

// Path returns the backing file path.
func (m *Matrix) Path() string {
	if m == nil {
		return ""
	}

	return m.path
}

// Class returns ClassName.
func (m *Matrix) Class() (string, error) {
	if !m.valid() {
		return "", fmt.Errorf("mmapmatrix.Class: %w", matrix.ErrInvalidState)
	}

	return ClassName, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() (int, error) {
	if !m.valid() {
		return 0, fmt.Errorf("mmapmatrix.Rows: %w", matrix.ErrInvalidState)
	}

	return m.r, nil
}

// Cols returns the column count.
func (m *Matrix) Cols() (int, error) {
	if !m.valid() {
		return 0, fmt.Errorf("mmapmatrix.Cols: %w", matrix.ErrInvalidState)
	}

	return m.c, nil
}

// offset bounds-checks (row, col) and returns the byte offset of the element.
func (m *Matrix) offset(method string, row, col int) (int, error) {
	if !m.valid() {
		return 0, fmt.Errorf("mmapmatrix.%s(%d,%d): %w", method, row, col, matrix.ErrInvalidState)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("mmapmatrix.%s(%d,%d): %w", method, row, col, matrix.ErrOutOfRange)
	}

	return headerSize + (row*m.c+col)*elemSize, nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (matrix.Element, error) {
	off, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return matrix.Element(binary.LittleEndian.Uint64(m.data[off : off+elemSize])), nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v matrix.Element) error {
	off, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(m.data[off:off+elemSize], uint64(v))

	return nil
}

// Transpose delegates to matrix.DefaultTranspose.
func (m *Matrix) Transpose(dest matrix.Matrix) error { return matrix.DefaultTranspose(m, dest) }

// Multiply delegates to matrix.DefaultMultiply.
func (m *Matrix) Multiply(other, dest matrix.Matrix) error {
	return matrix.DefaultMultiply(m, other, dest)
}

// Flush writes dirty pages back to the file.
func (m *Matrix) Flush() error {
	if !m.valid() {
		return fmt.Errorf("mmapmatrix.Flush: %w", matrix.ErrInvalidState)
	}

	return m.data.Flush()
}

// Destroy flushes, unmaps and closes the file, leaving m invalid. The file
// stays on disk unless m came from Factory. Every step runs even if an
// earlier one fails; failures are joined.
func (m *Matrix) Destroy() error {
	if !m.valid() {
		return fmt.Errorf("mmapmatrix.Destroy: %w", matrix.ErrInvalidState)
	}
	errs := []error{m.data.Flush(), m.data.Unmap(), m.file.Close()}
	if m.removeOnDestroy {
		errs = append(errs, os.Remove(m.path))
	}
	m.r, m.c = 0, 0
	m.data, m.file = nil, nil

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("mmapmatrix.Destroy: %w", err)
	}

	return nil
}
