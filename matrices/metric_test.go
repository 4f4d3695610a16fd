// SPDX-License-Identifier: MIT
// Package matrices_test: unit tests for the Frobenius metric.

package matrices_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matspace/matrices"
)

// mustMetric builds a FrobeniusMetric or fails the test.
func mustMetric(t *testing.T, rows, cols int) *matrices.FrobeniusMetric {
	t.Helper()
	g, err := matrices.NewFrobeniusMetric(rows, cols)
	require.NoError(t, err, "NewFrobeniusMetric(%d,%d)", rows, cols)
	return g
}

// TestNewFrobeniusMetric_BadShape mirrors Space construction validation.
func TestNewFrobeniusMetric_BadShape(t *testing.T) {
	_, err := matrices.NewFrobeniusMetric(0, 2)
	assert.True(t, errors.Is(err, matrices.ErrBadShape), "got %v", err)
}

// TestFrobeniusMetric_Signature: fully positive-definite (dim, 0, 0).
func TestFrobeniusMetric_Signature(t *testing.T) {
	g := mustMetric(t, 2, 3)
	pos, neg, null := g.Signature()
	assert.Equal(t, 6, pos)
	assert.Equal(t, 0, neg)
	assert.Equal(t, 0, null)
	assert.Equal(t, 6, g.Dim())
}

// TestInnerProduct_Concrete pins the identity scenario: ⟨I, I⟩ = 2 on 2x2.
func TestInnerProduct_Concrete(t *testing.T) {
	g := mustMetric(t, 2, 2)
	eye := identity(t, 2)

	ip, err := g.InnerProduct(eye, eye, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, ip, 1e-12)
}

// TestInnerProduct_Symmetry: ⟨A,B⟩ == ⟨B,A⟩ on random tangent vectors.
func TestInnerProduct_Symmetry(t *testing.T) {
	g := mustMetric(t, 3, 4)
	a := randomFill(3, 4, 10)
	b := randomFill(3, 4, 20)

	ab, err := g.InnerProduct(a, b, nil)
	require.NoError(t, err)
	ba, err := g.InnerProduct(b, a, nil)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

// TestInnerProduct_PositiveDefinite: ⟨A,A⟩ >= 0, zero exactly for the zero
// matrix.
func TestInnerProduct_PositiveDefinite(t *testing.T) {
	g := mustMetric(t, 2, 3)

	a := randomFill(2, 3, 30)
	sq, err := g.InnerProduct(a, a, nil)
	require.NoError(t, err)
	assert.Greater(t, sq, 0.0, "nonzero tangent vector has positive squared norm")

	zero, err := matrices.NewZeros(2, 3)
	require.NoError(t, err)
	sq, err = g.InnerProduct(zero, zero, nil)
	require.NoError(t, err)
	assert.Zero(t, sq)
}

// TestInnerProduct_BasePointIgnored: the metric is constant on a flat space,
// so any base point (nil included) yields the same value.
func TestInnerProduct_BasePointIgnored(t *testing.T) {
	g := mustMetric(t, 2, 2)
	a := randomFill(2, 2, 40)
	b := randomFill(2, 2, 50)

	withNil, err := g.InnerProduct(a, b, nil)
	require.NoError(t, err)
	withBase, err := g.InnerProduct(a, b, randomFill(2, 2, 60))
	require.NoError(t, err)
	assert.Equal(t, withNil, withBase)
}

// TestInnerProduct_ShapeConflicts: operands must match each other and the
// metric's own shape.
func TestInnerProduct_ShapeConflicts(t *testing.T) {
	g := mustMetric(t, 2, 2)

	_, err := g.InnerProduct(randomFill(2, 2, 1), randomFill(3, 3, 2), nil)
	assert.True(t, errors.Is(err, matrices.ErrDimensionMismatch), "got %v", err)

	_, err = g.InnerProduct(randomFill(3, 3, 1), randomFill(3, 3, 2), nil)
	assert.True(t, errors.Is(err, matrices.ErrDimensionMismatch),
		"operands of a foreign shape must be rejected, got %v", err)

	_, err = g.InnerProduct(nil, randomFill(2, 2, 1), nil)
	assert.True(t, errors.Is(err, matrices.ErrNilMatrix), "got %v", err)
}

// TestInnerProductBatch covers per-position results and length-1 broadcast.
func TestInnerProductBatch(t *testing.T) {
	g := mustMetric(t, 2, 2)
	eye := identity(t, 2)
	twoEye := dense(2, 2, 2, 0, 0, 2)

	t.Run("pairwise", func(t *testing.T) {
		got, err := g.InnerProductBatch(
			matrices.NewBatch(eye, twoEye),
			matrices.NewBatch(eye, eye),
			nil,
		)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.InDelta(t, 2.0, got[0], 1e-12)
		assert.InDelta(t, 4.0, got[1], 1e-12)
	})

	t.Run("broadcast", func(t *testing.T) {
		got, err := g.InnerProductBatch(
			matrices.NewBatch(eye),
			matrices.NewBatch(eye, twoEye, eye),
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4, 2}, got)
	})

	t.Run("length conflict", func(t *testing.T) {
		_, err := g.InnerProductBatch(
			matrices.NewBatch(eye, eye),
			matrices.NewBatch(eye, eye, eye),
			nil,
		)
		assert.True(t, errors.Is(err, matrices.ErrBatchLength), "got %v", err)
	})
}

// TestNormAndDist checks the induced norm and distance against hand values:
// the 2x2 identity has Frobenius norm √2, and dist(a, b) == ‖b−a‖.
func TestNormAndDist(t *testing.T) {
	g := mustMetric(t, 2, 2)
	eye := identity(t, 2)

	n, err := g.Norm(eye, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, n, 1e-12)

	sq, err := g.SquaredNorm(eye, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sq, 1e-12)

	a := dense(2, 2, 1, 0, 0, 1)
	b := dense(2, 2, 1, 3, 4, 1)
	d, err := g.Dist(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12, "difference is [[0,3],[4,0]], norm 5")

	same, err := g.Dist(a, a)
	require.NoError(t, err)
	assert.Zero(t, same)
}
