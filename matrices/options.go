// SPDX-License-Identifier: MIT

// Package matrices: functional configuration for comparison and sampling.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: invalid values surface as sentinel errors at the
//     call site, never as panics or silent clamping.

package matrices

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance used by Equal, IsSymmetric
	// and IsSkewSymmetric when no WithTolerance option is supplied.
	// Matches the entrywise closeness policy of the metric: |a-b| <= tol.
	DefaultTolerance = 1e-5

	// DefaultBound is the sampling half-width multiplier for RandomUniform:
	// entries are drawn from [-DefaultBound/2, DefaultBound/2).
	DefaultBound = 1.0
)

// ---------- Public option type (functional) ----------

// Option mutates internal sampling/comparison settings. Safe to apply
// repeatedly; the last write wins.
type Option func(*options)

// options is the internal, unexported settings bag consumed by kernels.
type options struct {
	tol   float64 // absolute comparison tolerance, >= 0 and finite
	bound float64 // sampling interval width, > 0 and finite
}

// defaultOptions returns the zero-config settings mirroring the constants above.
func defaultOptions() options {
	return options{tol: DefaultTolerance, bound: DefaultBound}
}

// WithTolerance sets the absolute tolerance for approximate comparisons.
// tol must be finite and non-negative; violations surface as ErrBadTolerance
// from the consuming operation.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// WithBound sets the sampling interval width for RandomUniform: entries are
// drawn from [-bound/2, bound/2). bound must be finite and positive;
// violations surface as ErrBadBound from the consuming sampler.
func WithBound(bound float64) Option {
	return func(o *options) { o.bound = bound }
}

// gatherOptions folds opts over the defaults and validates the result.
// Returns ErrBadTolerance or ErrBadBound on nonsensical values.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.tol) || math.IsInf(o.tol, 0) || o.tol < 0 {
		return o, ErrBadTolerance
	}
	if math.IsNaN(o.bound) || math.IsInf(o.bound, 0) || o.bound <= 0 {
		return o, ErrBadBound
	}
	return o, nil
}
