// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a plain gold multiply to
//     compare every variant against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, so code under test can
// only reach it through the contract.
type hide struct{ matrix.Matrix }

// failingAccessor is an Accessor whose At fails on one column; used to
// observe partial writes.
type failingAccessor struct {
	matrix.Accessor
	badCol int
}

func (f failingAccessor) At(r, c int) (matrix.Element, error) {
	if c == f.badCol {
		return 0, matrix.ErrOutOfRange
	}

	return f.Accessor.At(r, c)
}

// mustFromRows builds a matrix of the given variant from a literal or fails the test.
func mustFromRows(t testing.TB, v matrix.Variant, rows [][]matrix.Element) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(v.New, rows)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Destroy() })

	return m
}

// mustNew allocates an r×c matrix of the given variant or fails the test.
func mustNew(t testing.TB, v matrix.Variant, r, c int) matrix.Matrix {
	t.Helper()
	m, err := v.New(r, c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Destroy() })

	return m
}

// mustRows copies m out or fails the test.
func mustRows(t testing.TB, m matrix.Accessor) [][]matrix.Element {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// randRows returns an r×c literal with values in [-bound+1, bound-1].
func randRows(rng *rand.Rand, r, c, bound int) [][]matrix.Element {
	out := make([][]matrix.Element, r)
	for i := range out {
		out[i] = make([]matrix.Element, c)
		for j := range out[i] {
			out[i][j] = matrix.Element(rng.Intn(2*bound-1) - (bound - 1))
		}
	}

	return out
}

// gold is the plain triple-loop product of two literals.
func gold(a, b [][]matrix.Element) [][]matrix.Element {
	m, n, p := len(a), len(b), len(b[0])
	out := make([][]matrix.Element, m)
	for i := 0; i < m; i++ {
		out[i] = make([]matrix.Element, p)
		for j := 0; j < p; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// variant looks up a registered variant or fails the test.
func variant(t testing.TB, name string) matrix.Variant {
	t.Helper()
	v, err := matrix.LookupVariant(name)
	require.NoError(t, err)

	return v
}
