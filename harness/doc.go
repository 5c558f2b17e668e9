// Package harness exercises every matrix variant against fixed and random
// literals and against a plain reference multiply.
//
// A Runner builds each literal with each variant, transposes it, and
// multiplies every ordered pair of literals for every pair of variants.
// Results are compared with GoldMultiply; each discrepancy is logged and
// counted, and Errors reports the total. Incompatible shape pairs are
// expected to fail with matrix.ErrDimensionMismatch.
//
// PerfTests times one large random multiply per variant pair using process
// CPU time (user and system) where the platform reports it.
package harness
