// SPDX-License-Identifier: MIT
// Package matrices_test: unit tests for Space construction and membership.

package matrices_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matspace/matrices"
)

// TestNewSpace_Valid verifies shape accessors, the ambient dimension and the
// attached metric after construction.
func TestNewSpace_Valid(t *testing.T) {
	s := mustSpace(t, 2, 3)

	assert.Equal(t, 2, s.Rows(), "row count")
	assert.Equal(t, 3, s.Cols(), "column count")
	assert.Equal(t, 6, s.Dim(), "ambient dimension must be rows*cols")

	require.NotNil(t, s.Metric(), "metric is created at Space construction")
	assert.Equal(t, 6, s.Metric().Dim(), "metric dimension mirrors the space")

	assert.Equal(t, "matrix", matrices.PointTypeMatrix)
}

// TestNewSpace_BadShape ensures non-positive dimensions fail with ErrBadShape
// before any allocation.
func TestNewSpace_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -5},
		{0, 0},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			_, err := matrices.NewSpace(tc.rows, tc.cols)
			assert.True(t, errors.Is(err, matrices.ErrBadShape),
				"NewSpace(%d,%d) must fail with ErrBadShape, got %v", tc.rows, tc.cols, err)
		})
	}
}

// TestSpace_Belongs checks membership by exact shape: both dimensions must
// match, a single matching dimension is not enough.
func TestSpace_Belongs(t *testing.T) {
	s := mustSpace(t, 2, 3)

	assert.True(t, s.Belongs(randomFill(2, 3, fixedSeed)), "2x3 belongs to Mat(2,3)")
	assert.False(t, s.Belongs(randomFill(3, 3, fixedSeed)), "wrong row count")
	assert.False(t, s.Belongs(randomFill(2, 2, fixedSeed)), "wrong column count")
	assert.False(t, s.Belongs(randomFill(3, 2, fixedSeed)), "transposed shape does not belong")
	assert.False(t, s.Belongs(nil), "nil never belongs")
}

// TestSpace_BelongsBatch checks per-element membership with order preserved.
func TestSpace_BelongsBatch(t *testing.T) {
	s := mustSpace(t, 2, 2)

	b := matrices.NewBatch(
		randomFill(2, 2, 1),
		randomFill(3, 2, 2),
		randomFill(2, 2, 3),
		nil,
	)
	got := s.BelongsBatch(b)
	assert.Equal(t, []bool{true, false, true, false}, got)
}

// TestSpace_BelongsBatch_Empty: an empty batch yields an empty answer, not an error.
func TestSpace_BelongsBatch_Empty(t *testing.T) {
	s := mustSpace(t, 2, 2)
	assert.Empty(t, s.BelongsBatch(nil))
}
