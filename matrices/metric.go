// SPDX-License-Identifier: MIT

// Package matrices: the Frobenius metric.
//
// FrobeniusMetric equips a matrix space with the entrywise (Frobenius) inner
// product ⟨a,b⟩ = Σ a[i,j]·b[i,j]. The space is flat and Euclidean, so the
// metric is constant: the base point never influences the result. It is
// still accepted by every method for conformance with the general Metric
// capability contract, where curved spaces do depend on it.

package matrices

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Metric operation tags.
const (
	opInnerProduct      = "InnerProduct"
	opInnerProductBatch = "InnerProductBatch"
	opSquaredNorm       = "SquaredNorm"
	opNorm              = "Norm"
	opSquaredDist       = "SquaredDist"
	opDist              = "Dist"
)

// FrobeniusMetric is the Euclidean metric on rows×cols matrices given by the
// Frobenius inner product. Its signature is fully positive-definite:
// (dim, 0, 0). The zero value is not usable; construct via NewFrobeniusMetric
// or take the one owned by a Space.
type FrobeniusMetric struct {
	rows, cols int // tangent-vector shape
	dim        int // rows*cols
}

// NewFrobeniusMetric constructs the Frobenius metric over rows×cols matrices.
// Errors: ErrBadShape when rows < 1 or cols < 1. Complexity: O(1).
func NewFrobeniusMetric(rows, cols int) (*FrobeniusMetric, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf("NewFrobeniusMetric", err)
	}
	return &FrobeniusMetric{rows: rows, cols: cols, dim: rows * cols}, nil
}

// Dim returns the metric's dimension rows·cols. Complexity: O(1).
func (g *FrobeniusMetric) Dim() int { return g.dim }

// Signature returns the metric signature (positive, negative, null) counts.
// For the Frobenius metric this is always (dim, 0, 0): fully
// positive-definite, consistent with the Euclidean structure.
func (g *FrobeniusMetric) Signature() (pos, neg, null int) {
	return g.dim, 0, 0
}

// InnerProduct computes the Frobenius inner product of two tangent vectors:
// Σ a[i,j]·b[i,j], contracting both matrix axes. basePoint is accepted for
// the Metric contract and ignored — the metric is position-independent on a
// flat space — so nil is a legal base point.
//
// Implementation: elementwise product via the backend (MulElem), followed by
// a full reduction (Sum). Shapes are validated fail-fast first.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (also when a and b do not have
// this metric's rows×cols shape).
// Complexity: O(rows·cols) time and space.
func (g *FrobeniusMetric) InnerProduct(a, b, basePoint *mat.Dense) (float64, error) {
	_ = basePoint // constant metric: position never enters the formula
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, opErrorf(opInnerProduct, err)
	}
	if err := g.validateTangentShape(a); err != nil {
		return 0, opErrorf(opInnerProduct, err)
	}

	var had mat.Dense
	had.MulElem(a, b)
	return mat.Sum(&had), nil
}

// InnerProductBatch computes the inner product per batch position with
// length-1 broadcasting, preserving the batch axis in the returned slice.
// basePoint may be nil (ignored entirely).
//
// Errors: ErrBatchLength, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n·rows·cols) for the resolved batch length n.
func (g *FrobeniusMetric) InnerProductBatch(a, b, basePoint Batch) ([]float64, error) {
	_ = basePoint
	if err := ValidateBatch(a); err != nil {
		return nil, opErrorf(opInnerProductBatch, err)
	}
	if err := ValidateBatch(b); err != nil {
		return nil, opErrorf(opInnerProductBatch, err)
	}
	n, err := broadcastLen(len(a), len(b))
	if err != nil {
		return nil, opErrorf(opInnerProductBatch, err)
	}
	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		if out[i], err = g.InnerProduct(pick(a, i), pick(b, i), nil); err != nil {
			return nil, opErrorf(opInnerProductBatch, err)
		}
	}
	return out, nil
}

// SquaredNorm returns ⟨v, v⟩, the squared Frobenius norm of the tangent
// vector v. Non-negative for every v, zero iff v is the zero matrix.
// basePoint is ignored (flat space).
// Errors: as InnerProduct. Complexity: O(rows·cols).
func (g *FrobeniusMetric) SquaredNorm(v, basePoint *mat.Dense) (float64, error) {
	sq, err := g.InnerProduct(v, v, basePoint)
	if err != nil {
		return 0, opErrorf(opSquaredNorm, err)
	}
	return sq, nil
}

// Norm returns √⟨v, v⟩, the Frobenius norm of the tangent vector v.
// basePoint is ignored (flat space).
// Errors: as InnerProduct. Complexity: O(rows·cols).
func (g *FrobeniusMetric) Norm(v, basePoint *mat.Dense) (float64, error) {
	sq, err := g.SquaredNorm(v, basePoint)
	if err != nil {
		return 0, opErrorf(opNorm, err)
	}
	return math.Sqrt(sq), nil
}

// SquaredDist returns the squared Frobenius distance ⟨b−a, b−a⟩ between two
// points. On a flat space the geodesic is the straight line, so distance
// reduces to the norm of the difference.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(rows·cols).
func (g *FrobeniusMetric) SquaredDist(a, b *mat.Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, opErrorf(opSquaredDist, err)
	}
	var diff mat.Dense
	diff.Sub(b, a)
	sq, err := g.SquaredNorm(&diff, nil)
	if err != nil {
		return 0, opErrorf(opSquaredDist, err)
	}
	return sq, nil
}

// Dist returns the Frobenius distance between two points: √⟨b−a, b−a⟩.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(rows·cols).
func (g *FrobeniusMetric) Dist(a, b *mat.Dense) (float64, error) {
	sq, err := g.SquaredDist(a, b)
	if err != nil {
		return 0, opErrorf(opDist, err)
	}
	return math.Sqrt(sq), nil
}

// validateTangentShape checks that v matches this metric's rows×cols shape.
// Assumes v is non-nil. Returns ErrDimensionMismatch on conflict.
func (g *FrobeniusMetric) validateTangentShape(v *mat.Dense) error {
	r, c := v.Dims()
	if r != g.rows || c != g.cols {
		return validatorErrorf("validateTangentShape", ErrDimensionMismatch)
	}
	return nil
}
