// SPDX-License-Identifier: MIT

// Package matrix - variant table and helpers built on the contract.
//
// Purpose:
//   - Bind each variant name to its constructor once, at package load.
//   - Provide thin helpers (FromRows, ToRows, Equal, Format) that work on
//     any variant through the contract, never through storage.

package matrix

import (
	"fmt"
	"io"
)

// Constructor builds an r×c zero matrix of one variant.
type Constructor func(rows, cols int) (Matrix, error)

// Variant names a concrete implementation and its constructor.
type Variant struct {
	Name string
	New  Constructor
}

// variants is built once and never mutated; Variants hands out copies.
var variants = [...]Variant{
	{Name: ClassDense, New: newDenseMatrix},
	{Name: ClassSmartMul, New: newSmartMulMatrix},
}

// newDenseMatrix and newSmartMulMatrix return a nil interface on failure,
// never a typed nil pointer.
func newDenseMatrix(rows, cols int) (Matrix, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newSmartMulMatrix(rows, cols int) (Matrix, error) {
	m, err := NewSmartMul(rows, cols)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Variants returns the variants of this package: dense, then smartMul.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants[:])

	return out
}

// LookupVariant returns the variant registered under name, or ErrInvalidArgument.
func LookupVariant(name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}

	return Variant{}, fmt.Errorf("LookupVariant(%q): %w", name, ErrInvalidArgument)
}

// FromRows builds a matrix with newFn and fills it from a rectangular
// row-major literal. On a fill failure the partially built matrix is
// destroyed and nothing is returned.
//
// Errors:
//   - ErrInvalidArgument    (no rows, or an empty first row).
//   - ErrDimensionMismatch  (ragged rows).
//   - any constructor or Set error.
//
// Complexity: O(r*c).
func FromRows(newFn Constructor, rows [][]Element) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidArgument)
	}
	nr, nc := len(rows), len(rows[0])
	for i := range rows {
		if len(rows[i]) != nc {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), nc, ErrDimensionMismatch)
		}
	}

	m, err := newFn(nr, nc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				_ = m.Destroy()
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return m, nil
}

// ToRows copies m out into a fresh [][]Element.
// Complexity: O(r*c).
func ToRows(m Accessor) ([][]Element, error) {
	nr, nc, err := shapeOf(m)
	if err != nil {
		return nil, fmt.Errorf("ToRows: %w", err)
	}
	out := make([][]Element, nr)
	for i := range out {
		out[i] = make([]Element, nc)
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToRows: %w", err)
			}
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and elements.
// Errors only when an operand is invalid or an access fails.
// Complexity: O(r*c).
func Equal(a, b Accessor) (bool, error) {
	ar, ac, err := shapeOf(a)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	br, bc, err := shapeOf(b)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	if ar != br || ac != bc {
		return false, nil
	}
	var av, bv Element
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("Equal: %w", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("Equal: %w", err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// Format writes m to w, one line per row, each element right-aligned in
// eight columns.
// Complexity: O(r*c).
func Format(w io.Writer, m Accessor) error {
	nr, nc, err := shapeOf(m)
	if err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	var v Element
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("Format: %w", err)
			}
			if _, err = fmt.Fprintf(w, "%8d", v); err != nil {
				return err
			}
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
