// SPDX-License-Identifier: MIT
// Package matrices — capability contracts & public facades.
//
// Purpose:
//   - Replace deep inheritance chains with explicit, minimal capability
//     interfaces: Manifold (membership, sampling, dimension) and Metric
//     (inner product). Concrete types satisfy them structurally.
//   - Provide thin, intention-revealing constructors for common fixtures.
//     Facades never duplicate logic; each delegates to the canonical path.

package matrices

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Manifold is the capability contract of a space of matrices: it knows its
// ambient dimension, can test membership, and can sample points uniformly.
// Space is the canonical implementation; embedders can wrap it to build
// richer geometries without inheritance.
type Manifold interface {
	// Dim returns the ambient real dimension of the manifold.
	Dim() int

	// Belongs reports whether p is a point of the manifold.
	Belongs(p *mat.Dense) bool

	// RandomUniform draws one point with entries uniform in
	// [-bound/2, bound/2) from the caller-supplied generator.
	RandomUniform(rng *rand.Rand, opts ...Option) (*mat.Dense, error)
}

// Metric is the capability contract of a Riemannian metric: the inner
// product of two tangent vectors at a base point. Flat metrics (like
// FrobeniusMetric) ignore the base point but keep it in the signature so
// curved implementations remain drop-in compatible.
type Metric interface {
	// InnerProduct computes ⟨a, b⟩ at basePoint (nil allowed when the
	// implementation is position-independent).
	InnerProduct(a, b, basePoint *mat.Dense) (float64, error)
}

// Compile-time conformance checks: the concrete types must keep satisfying
// the capability contracts.
var (
	_ Manifold = (*Space)(nil)
	_ Metric   = (*FrobeniusMetric)(nil)
)

// ---------- Constructors & fixtures ----------

// NewZeros returns a zero-initialized rows×cols matrix.
// Errors: ErrBadShape. Complexity: O(rows·cols) zero-init by the runtime.
func NewZeros(rows, cols int) (*mat.Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf("NewZeros", err)
	}
	return mat.NewDense(rows, cols, nil), nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrBadShape. Complexity: O(n²) zero-init + O(n) diagonal writes.
func NewIdentity(n int) (*mat.Dense, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, opErrorf("NewIdentity", err)
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d, nil
}
