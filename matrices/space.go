// SPDX-License-Identifier: MIT

// Package matrices: the Space type.
//
// Space represents the manifold of real m×n matrices: a flat vector space of
// ambient dimension m·n with no curvature. It owns its shape parameters,
// which are fixed at construction and immutable thereafter, and carries the
// FrobeniusMetric built over the same shape. Points and tangent vectors share
// the *mat.Dense representation, because tangent vectors at any point of a
// flat space are themselves m×n matrices.

package matrices

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// PointTypeMatrix is the canonical point representation name for this space.
const PointTypeMatrix = "matrix"

// Sampling operation tags.
const (
	opRandomUniform      = "RandomUniform"
	opRandomUniformBatch = "RandomUniformBatch"
)

// Space is the manifold of real matrices with fixed shape (rows × cols).
// The zero value is not usable; construct via NewSpace.
type Space struct {
	rows, cols int              // shape, fixed at construction
	dim        int              // ambient dimension rows*cols
	metric     *FrobeniusMetric // Euclidean structure over the same shape
}

// NewSpace constructs the manifold of rows×cols real matrices and attaches
// a FrobeniusMetric over the same shape.
//
// Errors: ErrBadShape when rows < 1 or cols < 1 (fatal configuration error,
// surfaced immediately, never retried).
// Complexity: O(1).
func NewSpace(rows, cols int) (*Space, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf("NewSpace", err)
	}
	metric, err := NewFrobeniusMetric(rows, cols)
	if err != nil {
		return nil, opErrorf("NewSpace", err)
	}
	return &Space{
		rows:   rows,
		cols:   cols,
		dim:    rows * cols,
		metric: metric,
	}, nil
}

// Rows returns the row count of points of this space. Complexity: O(1).
func (s *Space) Rows() int { return s.rows }

// Cols returns the column count of points of this space. Complexity: O(1).
func (s *Space) Cols() int { return s.cols }

// Dim returns the ambient real dimension rows·cols. Complexity: O(1).
func (s *Space) Dim() int { return s.dim }

// Metric returns the Frobenius metric attached at construction.
// The metric has no independent lifecycle: it is owned by exactly this space.
func (s *Space) Metric() *FrobeniusMetric { return s.metric }

// Belongs reports whether p is a point of this space, i.e. whether its shape
// is exactly (rows, cols). Both dimensions must match: the two comparisons
// are combined with explicit logical conjunction so no operator-precedence
// subtlety can leak in. A nil point does not belong.
// Complexity: O(1).
func (s *Space) Belongs(p *mat.Dense) bool {
	if p == nil {
		return false
	}
	r, c := p.Dims()
	return r == s.rows && c == s.cols
}

// BelongsBatch reports membership per batch position, preserving order.
// Nil elements simply do not belong (membership is a query, not a contract,
// so no error is raised here). Complexity: O(len(b)).
func (s *Space) BelongsBatch(b Batch) []bool {
	out := make([]bool, len(b))
	var i int
	for i = range b {
		out[i] = s.Belongs(b[i])
	}
	return out
}

// RandomUniform draws one rows×cols matrix with entries uniform in
// [-bound/2, bound/2), where bound defaults to DefaultBound and is set via
// WithBound. Entries are computed as bound·(U[0,1) − 0.5). The generator is
// caller-supplied, keeping sampling deterministic under a fixed seed; its
// thread safety is the caller's concern.
//
// Errors: ErrNilRand, ErrBadBound.
// Complexity: O(rows·cols).
func (s *Space) RandomUniform(rng *rand.Rand, opts ...Option) (*mat.Dense, error) {
	if rng == nil {
		return nil, opErrorf(opRandomUniform, ErrNilRand)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, opErrorf(opRandomUniform, err)
	}
	return s.sample(rng, o.bound), nil
}

// RandomUniformBatch draws nSamples independent matrices with the same entry
// distribution as RandomUniform. The result is always a Batch of length
// nSamples — the single-sample "squeeze" of the batch axis is expressed by
// calling RandomUniform instead, so the two shapes can never be confused.
//
// Errors: ErrNilRand, ErrBadSampleCount, ErrBadBound.
// Complexity: O(nSamples·rows·cols).
func (s *Space) RandomUniformBatch(rng *rand.Rand, nSamples int, opts ...Option) (Batch, error) {
	if rng == nil {
		return nil, opErrorf(opRandomUniformBatch, ErrNilRand)
	}
	if nSamples < 1 {
		return nil, opErrorf(opRandomUniformBatch, ErrBadSampleCount)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, opErrorf(opRandomUniformBatch, err)
	}
	out := make(Batch, nSamples)
	var i int
	for i = 0; i < nSamples; i++ {
		out[i] = s.sample(rng, o.bound)
	}
	return out, nil
}

// sample fills one rows×cols matrix with bound·(U[0,1) − 0.5) entries in
// fixed i→j order; preconditions (rng non-nil, bound validated) hold at
// every call site.
func (s *Space) sample(rng *rand.Rand, bound float64) *mat.Dense {
	d := mat.NewDense(s.rows, s.cols, nil)
	var i, j int
	for i = 0; i < s.rows; i++ {
		for j = 0; j < s.cols; j++ {
			d.Set(i, j, bound*(rng.Float64()-0.5))
		}
	}
	return d
}
