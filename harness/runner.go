// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"github.com/katalvlaran/vmatrix/matrix"
)

// testCaseDelim separates test cases in the printed output.
const testCaseDelim = "------------"

// perfMax bounds the element magnitude of performance matrices.
const perfMax = 100

// Runner drives transpose, multiply and performance tests over a set of
// variants. Every result is checked; each failure is logged and counted.
// Destinations (transposes and products) are always Dense.
type Runner struct {
	out      io.Writer
	log      *log.Logger
	output   bool
	variants []matrix.Variant
	errs     int
}

// NewRunner builds a Runner writing matrices to out when output is true and
// diagnostics to logger. An empty variants list means matrix.Variants().
func NewRunner(out io.Writer, logger *log.Logger, output bool, variants []matrix.Variant) *Runner {
	if len(variants) == 0 {
		variants = matrix.Variants()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if out == nil {
		out = io.Discard
	}

	return &Runner{out: out, log: logger, output: output, variants: variants}
}

// Errors returns the number of failures logged so far.
func (r *Runner) Errors() int { return r.errs }

// errorf logs and counts one failure.
func (r *Runner) errorf(format string, args ...any) {
	r.errs++
	r.log.Printf(format, args...)
}

// destroy releases m and counts a failure to do so.
func (r *Runner) destroy(m matrix.Matrix, desc string) {
	if err := m.Destroy(); err != nil {
		r.errorf("cannot free %s: %v", desc, err)
	}
}

// using names a datum built with a variant.
func using(d TestData, v matrix.Variant) string {
	return d.Desc + " using " + v.Name
}

// ---------- Output ----------

// printMatrix writes the labels on one line followed by the matrix.
func (r *Runner) printMatrix(m matrix.Matrix, labels ...string) {
	if len(labels) > 0 {
		fmt.Fprintln(r.out, strings.Join(labels, " "))
	}
	if err := matrix.Format(r.out, m); err != nil {
		fmt.Fprintf(r.out, "bad %s matrix: %v\n", strings.Join(labels, " "), err)
	}
}

// ---------- Transpose ----------

// TransposeTests transposes every datum with every variant and checks
// dest(c,r) == src(r,c).
func (r *Runner) TransposeTests(data []TestData) {
	for _, d := range data {
		for _, v := range r.variants {
			r.transposeTest(d, v)
		}
	}
}

func (r *Runner) transposeTest(d TestData, v matrix.Variant) {
	desc := using(d, v)
	m, err := d.build(v)
	if err != nil {
		r.errorf("cannot create matrix %s: %v", desc, err)
		return
	}
	defer r.destroy(m, desc)

	t, err := matrix.NewDense(d.Cols, d.Rows)
	if err != nil {
		r.errorf("cannot create transpose matrix for %s: %v", desc, err)
		return
	}
	defer r.destroy(t, "transpose of "+desc)

	if err = m.Transpose(t); err != nil {
		r.errorf("cannot transpose %s: %v", desc, err)
		return
	}
	r.checkTranspose(m, t, desc)

	if r.output {
		r.printMatrix(m, "input matrix", desc)
		r.printMatrix(t, "transpose matrix")
		fmt.Fprintln(r.out, testCaseDelim)
	}
}

// checkTranspose reports the first cell where t is not the transpose of m.
func (r *Runner) checkTranspose(m, t matrix.Accessor, desc string) {
	src, err := matrix.ToRows(m)
	if err != nil {
		r.errorf("checkTranspose(%s): %v", desc, err)
		return
	}
	dst, err := matrix.ToRows(t)
	if err != nil {
		r.errorf("checkTranspose(%s): %v", desc, err)
		return
	}
	for i := range src {
		for j := range src[i] {
			if src[i][j] != dst[j][i] {
				r.errorf("checkTranspose(%s): (matrix[%d][%d] = %d) != (transpose[%d][%d] = %d)",
					desc, i, j, src[i][j], j, i, dst[j][i])
				return
			}
		}
	}
}

// ---------- Multiply ----------

// MulTests multiplies every ordered pair of data, for every pair of
// variants. With perfCount < 0 each product is checked against
// GoldMultiply; otherwise the multiply is repeated perfCount times (at
// least once) and the CPU time is reported instead.
//
// Pairs whose shapes are incompatible must fail with
// matrix.ErrDimensionMismatch; anything else is counted as a failure.
func (r *Runner) MulTests(data []TestData, perfCount int) {
	for i := range data {
		for j := range data {
			r.mulTestData(data[i], data[j], perfCount)
		}
	}
}

func (r *Runner) mulTestData(d1, d2 TestData, perfCount int) {
	for _, va := range r.variants {
		desc1 := using(d1, va)
		multiplicand, err := d1.build(va)
		if err != nil {
			r.errorf("cannot make multiplicand for %s: %v", desc1, err)
			continue
		}
		for _, vb := range r.variants {
			r.mulTest(multiplicand, d1, desc1, d2, vb, perfCount)
		}
		r.destroy(multiplicand, "multiplicand "+desc1)
	}
}

func (r *Runner) mulTest(multiplicand matrix.Matrix, d1 TestData, desc1 string,
	d2 TestData, vb matrix.Variant, perfCount int) {
	desc2 := using(d2, vb)
	multiplier, err := d2.build(vb)
	if err != nil {
		r.errorf("cannot make multiplier for %s: %v", desc2, err)
		return
	}
	defer r.destroy(multiplier, "multiplier "+desc2)

	product, err := matrix.NewDense(d1.Rows, d2.Cols)
	if err != nil {
		r.errorf("cannot create product for %s x %s: %v", desc1, desc2, err)
		return
	}
	defer r.destroy(product, "product "+desc1+" x "+desc2)

	start, err := cpuNow()
	if err != nil {
		r.errorf("cannot get start time for %s x %s: %v", desc1, desc2, err)
		return
	}
	for n := 0; ; {
		err = multiplicand.Multiply(multiplier, product)
		n++
		if err != nil || n >= perfCount {
			break
		}
	}
	end, terr := cpuNow()
	if terr != nil {
		r.errorf("cannot get end time for %s x %s: %v", desc1, desc2, terr)
		return
	}

	compatible := d1.Cols == d2.Rows
	switch {
	case !compatible && errors.Is(err, matrix.ErrDimensionMismatch):
		// expected refusal
	case !compatible:
		r.errorf("%s x %s: expected dimension mismatch, got %v", desc1, desc2, err)
	case err != nil:
		r.errorf("%s x %s: %v", desc1, desc2, err)
	case perfCount >= 0:
		used := end.sub(start)
		r.log.Printf("%s x %s: utime: %v, stime: %v, total: %v",
			classOf(multiplicand), classOf(multiplier), used.user, used.sys, used.total())
	default:
		r.checkProduct(product, d1, d2, d1.Desc+" x "+d2.Desc)
	}

	if r.output {
		r.printMatrix(multiplicand, "multiplicand", desc1)
		r.printMatrix(multiplier, "multiplier", desc2)
		if err != nil {
			fmt.Fprintf(r.out, "product error: %v\n", err)
		} else {
			r.printMatrix(product, "product:", desc1, "x", desc2)
		}
		fmt.Fprintln(r.out, testCaseDelim)
	}
}

// checkProduct compares product with the gold product of the two literals.
func (r *Runner) checkProduct(product matrix.Accessor, d1, d2 TestData, desc string) {
	want, err := GoldMultiply(d1.Grid(), d2.Grid())
	if err != nil {
		r.errorf("%s: gold multiply: %v", desc, err)
		return
	}
	got, err := matrix.ToRows(product)
	if err != nil {
		r.errorf("%s: %v", desc, err)
		return
	}
	if len(got) != len(want) || len(got[0]) != len(want[0]) {
		r.errorf("%s: dimensions differ: product is %dx%d; expected %dx%d",
			desc, len(got), len(got[0]), len(want), len(want[0]))
		return
	}
	if i, j, ok := firstDiff(got, want); !ok {
		r.errorf("%s: differs at [%d][%d]; expected %d, got %d", desc, i, j, want[i][j], got[i][j])
	}
}

// classOf returns m's class name, or "?" when it cannot be read.
func classOf(m matrix.Matrix) string {
	name, err := m.Class()
	if err != nil {
		return "?"
	}

	return name
}

// ---------- Suites ----------

// Run runs transpose tests then checked multiply tests over data.
func (r *Runner) Run(data []TestData) {
	r.TransposeTests(data)
	r.MulTests(data, -1)
}

// PredefinedTests runs Run over PredefinedData.
func (r *Runner) PredefinedTests() { r.Run(PredefinedData()) }

// RandomTests runs Run over DefaultRandSpecs filled from seed.
func (r *Runner) RandomTests(seed int64) { r.Run(RandomTable(seed, DefaultRandSpecs())) }

// PerfTests multiplies one random n×n matrix by itself once per variant
// pair and logs the CPU time of each.
func (r *Runner) PerfTests(n int, seed int64) {
	if n <= 0 {
		r.errorf("perf matrix size must be > 0, got %d", n)
		return
	}
	rng := rand.New(rand.NewSource(seed))
	data := RandomData(rng, RandSpec{Desc: "randPerfMatrix", Rows: n, Cols: n, Max: perfMax})
	r.MulTests([]TestData{data}, 1)
}
