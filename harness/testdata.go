// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vmatrix/matrix"
	"github.com/samber/lo"
)

// DefaultSeed seeds random test data so runs are reproducible.
const DefaultSeed = 1

// TestData is a named matrix literal stored row-major.
type TestData struct {
	Desc       string
	Rows, Cols int
	Data       []matrix.Element // len == Rows*Cols
}

// Grid returns the literal as one slice per row.
func (d TestData) Grid() [][]matrix.Element {
	return lo.Chunk(d.Data, d.Cols)
}

// Validate reports ErrInvalidArgument for non-positive shapes and
// ErrDimensionMismatch when Data does not hold Rows*Cols elements.
func (d TestData) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("test data %q: %d×%d: %w", d.Desc, d.Rows, d.Cols, matrix.ErrInvalidArgument)
	}
	if len(d.Data) != d.Rows*d.Cols {
		return fmt.Errorf("test data %q: %d elements for %d×%d: %w",
			d.Desc, len(d.Data), d.Rows, d.Cols, matrix.ErrDimensionMismatch)
	}

	return nil
}

// build creates a matrix of variant v holding d.
func (d TestData) build(v matrix.Variant) (matrix.Matrix, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return matrix.FromRows(v.New, d.Grid())
}

// PredefinedData returns the fixed literal table.
func PredefinedData() []TestData {
	return []TestData{
		{Desc: "a2x2", Rows: 2, Cols: 2, Data: []matrix.Element{1, 2, 3, 4}},
		{Desc: "b2x2", Rows: 2, Cols: 2, Data: []matrix.Element{5, 6, 7, 8}},
		{Desc: "a2x3", Rows: 2, Cols: 3, Data: []matrix.Element{1, 2, 3, 4, 5, 6}},
		{Desc: "b3x2", Rows: 3, Cols: 2, Data: []matrix.Element{7, 8, 9, 10, 11, 12}},
		{Desc: "unit1x1", Rows: 1, Cols: 1, Data: []matrix.Element{7}},
		{Desc: "row1x3", Rows: 1, Cols: 3, Data: []matrix.Element{1, -2, 3}},
		{Desc: "col3x1", Rows: 3, Cols: 1, Data: []matrix.Element{4, 0, -5}},
		{Desc: "identity3x3", Rows: 3, Cols: 3, Data: []matrix.Element{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{Desc: "mixed3x3", Rows: 3, Cols: 3, Data: []matrix.Element{-1, 2, -3, 4, -5, 6, -7, 8, -9}},
	}
}

// RandSpec describes a random matrix: values are drawn from [-(Max-1), Max-1].
type RandSpec struct {
	Desc       string
	Rows, Cols int
	Max        int
}

// DefaultRandSpecs returns the random shapes exercised by random tests.
func DefaultRandSpecs() []RandSpec {
	return []RandSpec{
		{Desc: "rand(5x5)", Rows: 5, Cols: 5, Max: 10},
		{Desc: "rand(5x6)", Rows: 5, Cols: 6, Max: 10},
	}
}

// RandomData fills a TestData from spec using rng. Max must be >= 1.
func RandomData(rng *rand.Rand, spec RandSpec) TestData {
	span := 2*spec.Max - 1
	return TestData{
		Desc: spec.Desc,
		Rows: spec.Rows,
		Cols: spec.Cols,
		Data: lo.Times(spec.Rows*spec.Cols, func(_ int) matrix.Element {
			return matrix.Element(rng.Intn(span) - (spec.Max - 1))
		}),
	}
}

// RandomTable generates one TestData per spec from a single seeded source.
func RandomTable(seed int64, specs []RandSpec) []TestData {
	rng := rand.New(rand.NewSource(seed))

	return lo.Map(specs, func(s RandSpec, _ int) TestData { return RandomData(rng, s) })
}
