// SPDX-License-Identifier: MIT
// Package matrices: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrices
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrices

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrices: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/square violations -> operand-count/batch-length
// -> option violations (tolerance, bound, sample count, rng).

var (
	// ErrBadShape is returned by NewSpace/NewFrobeniusMetric when the requested
	// shape is invalid (rows < 1 or cols < 1). Construction must validate before
	// any allocation.
	ErrBadShape = errors.New("matrices: rows and cols must be positive")

	// ErrNilMatrix indicates that a nil *mat.Dense operand (or a nil element
	// inside a Batch) was passed where a concrete matrix is required.
	ErrNilMatrix = errors.New("matrices: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Equal on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrices: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Bracket, ToSymmetric, IsSkewSymmetric and friends).
	ErrNonSquare = errors.New("matrices: matrix is not square")

	// ErrNoOperands is returned by Mul/MulBatch when called with zero operands;
	// the chained product needs at least one factor.
	ErrNoOperands = errors.New("matrices: at least one operand required")

	// ErrBatchLength indicates that two batches of incompatible lengths were
	// combined. Lengths must be equal, or one side must have length 1
	// (broadcast).
	ErrBatchLength = errors.New("matrices: batch length mismatch")

	// ErrBadSampleCount is returned by RandomUniformBatch when nSamples < 1.
	ErrBadSampleCount = errors.New("matrices: sample count must be >= 1")

	// ErrBadTolerance signals a NaN, infinite or negative comparison tolerance.
	ErrBadTolerance = errors.New("matrices: tolerance must be finite and non-negative")

	// ErrBadBound signals a NaN, infinite or non-positive sampling bound.
	ErrBadBound = errors.New("matrices: bound must be finite and positive")

	// ErrNilRand indicates that a nil *rand.Rand was passed to a sampler.
	// Sampling state is caller-supplied to keep it deterministic and testable.
	ErrNilRand = errors.New("matrices: nil random generator")
)
