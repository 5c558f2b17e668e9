// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for variant constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global mutable state: options travel with each matrix.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultElementLimit is the largest number of elements a single allocation
// may hold. Requests above it fail with ErrOutOfMemory instead of
// crashing the process inside make().
const DefaultElementLimit = 1 << 31

// ---------- Internal panic messages (no magic strings) ----------

const panicElementLimitInvalid = "matrix: WithElementLimit: limit must be > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	elementLimit int // > 0; DefaultElementLimit
}

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() Options {
	return Options{elementLimit: DefaultElementLimit}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options value, for variants living in
// other packages that need the same allocation policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// ElementLimit reports the configured per-allocation element budget.
func (o Options) ElementLimit() int { return o.elementLimit }

// asOption turns a resolved Options back into an Option, so a matrix can
// hand its own policy to the temporaries it allocates.
func (o Options) asOption() Option {
	return func(dst *Options) { *dst = o }
}

// WithElementLimit caps the number of elements one allocation may hold.
// Panics if n <= 0.
func WithElementLimit(n int) Option {
	if n <= 0 {
		panic(panicElementLimitInvalid)
	}

	return func(o *Options) { o.elementLimit = n }
}

// CheckShape validates a requested shape against the options:
// ErrInvalidArgument for non-positive dimensions, ErrOutOfMemory when
// rows*cols overflows int or exceeds the element budget.
// Complexity: O(1).
func (o Options) CheckShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidArgument
	}
	if rows > o.elementLimit/cols {
		return ErrOutOfMemory
	}

	return nil
}
