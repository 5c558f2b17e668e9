// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY the five package-level sentinels and the ErrorKind
// classification built on top of them. Every operation returns one of these
// sentinels (possibly wrapped with call-site context); tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Detection sites wrap with context (denseErrorf / matrixErrorf);
// callers still match with errors.Is or classify with KindOf.

var (
	// ErrInvalidState is returned when an operation is invoked on a matrix
	// whose stored dimensions are not both positive (nil, zero value or destroyed).
	ErrInvalidState = errors.New("matrix: invalid state")

	// ErrInvalidArgument is returned when construction is requested with a
	// non-positive dimension, or a lookup argument is unknown.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfMemory is returned when an allocation cannot be satisfied:
	// the element count overflows or exceeds the configured element budget.
	ErrOutOfMemory = errors.New("matrix: out of memory")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands of
	// Transpose or Multiply.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ErrorKind classifies an error returned by this package.
type ErrorKind int

// Error kinds, one per sentinel. KindNone is reported for nil errors and
// KindUnknown for errors that wrap none of the sentinels.
const (
	KindNone ErrorKind = iota
	KindInvalidState
	KindInvalidArgument
	KindOutOfMemory
	KindOutOfRange
	KindDimensionMismatch
	KindUnknown
)

// kindSentinels maps each kind to its sentinel, in match priority order.
var kindSentinels = [...]struct {
	kind ErrorKind
	err  error
}{
	{KindInvalidState, ErrInvalidState},
	{KindInvalidArgument, ErrInvalidArgument},
	{KindOutOfMemory, ErrOutOfMemory},
	{KindOutOfRange, ErrOutOfRange},
	{KindDimensionMismatch, ErrDimensionMismatch},
}

// KindOf returns the kind of err by unwrapping it to one of the sentinels.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}

	return KindUnknown
}

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInvalidState:
		return "InvalidState"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindOutOfRange:
		return "OutOfRange"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	default:
		return "Unknown"
	}
}
