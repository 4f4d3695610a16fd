// SPDX-License-Identifier: MIT
// Package matrices_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for spaces, matrices and batches.
//   - Keep all data finite and well-formed so numeric policy never interferes
//     with what a test actually asserts.

package matrices_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matspace/matrices"
)

// fixedSeed keeps every randomized fixture reproducible across runs.
const fixedSeed = 1337

// newRng returns a deterministic generator for sampling tests.
func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// mustSpace builds a Space or fails the test immediately.
func mustSpace(t *testing.T, rows, cols int) *matrices.Space {
	t.Helper()
	s, err := matrices.NewSpace(rows, cols)
	require.NoError(t, err, "NewSpace(%d,%d)", rows, cols)
	return s
}

// dense builds a rows×cols matrix from row-major values.
func dense(rows, cols int, vals ...float64) *mat.Dense {
	return mat.NewDense(rows, cols, vals)
}

// identity builds the n×n identity matrix via the package facade.
func identity(t *testing.T, n int) *mat.Dense {
	t.Helper()
	d, err := matrices.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)
	return d
}

// randomFill returns a rows×cols matrix with deterministic pseudo-random
// entries in [-1, 1).
func randomFill(rows, cols int, seed int64) *mat.Dense {
	rng := newRng(seed)
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, 2*rng.Float64()-1)
		}
	}
	return d
}

// requireEqualMat asserts entrywise closeness under the package default
// tolerance, failing with the full matrices on mismatch.
func requireEqualMat(t *testing.T, want, got *mat.Dense) {
	t.Helper()
	ok, err := matrices.Equal(want, got)
	require.NoError(t, err, "Equal")
	require.True(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v",
		mat.Formatted(want), mat.Formatted(got))
}
