// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination and
// minor-expansion kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Deterministic behavior: no global state, no implicit randomness. Every
// flag changes behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting selects largest-magnitude partial pivoting in the
	// numeric elimination kernels. When false the first non-zero entry of
	// the column is used as pivot.
	DefaultPivoting = true

	// DefaultMinorCacheLimit bounds the number of memoized partial minors of
	// the symbolic determinant and of the permanent.
	DefaultMinorCacheLimit = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const panicCacheLimitInvalid = "matrix: WithMinorCacheLimit: limit must be > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivoting   bool // DefaultPivoting
	cacheLimit int  // > 0; DefaultMinorCacheLimit
}

// WithPivoting toggles largest-magnitude partial pivoting.
// Implementation:
//   - Stage 1: return a setter that writes the flag into Options.
//
// Notes:
//   - Affects numeric Determinant, GaussianElimination and Inverse. Symbolic
//     elimination always picks the first provably non-zero pivot.
func WithPivoting(on bool) Option {
	return func(o *Options) { o.pivoting = on }
}

// WithMinorCacheLimit sets the maximum number of memoized partial minors.
// Panics when limit <= 0.
func WithMinorCacheLimit(limit int) Option {
	if limit <= 0 {
		panic(panicCacheLimitInvalid)
	}

	return func(o *Options) { o.cacheLimit = limit }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		pivoting:   DefaultPivoting,
		cacheLimit: DefaultMinorCacheLimit,
	}
}

// gatherOptions applies setters in order over the defaults; later setters win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
