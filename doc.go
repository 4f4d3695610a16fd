// Package matspace is a small geometry toolkit for the manifold of real
// m×n matrices: membership, algebra and a Frobenius metric on a flat space.
//
// 🚀 What is matspace?
//
//	A compact library that brings together:
//		• Space: the set of m×n real matrices with membership testing
//		  and uniform random sampling from a caller-supplied generator
//		• Algebra: chained products, the Lie bracket (commutator),
//		  transposition, symmetric/skew-symmetric decomposition and the
//		  congruence action m2·m1·m2ᵀ
//		• FrobeniusMetric: the entrywise inner product with its induced
//		  norms and distances
//		• Batch: a type-level batch-of-matrices container with broadcast,
//		  so single vs batched inputs can never be confused at runtime
//
// ✨ Why choose matspace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, strict
//     fail-fast shape validation
//   - Deterministic – seeded sampling, fixed scan orders, no global state
//   - Backed by gonum – all heavy numerics delegate to gonum/mat
//
// Everything lives in one subpackage:
//
//	matrices/ — the matrix manifold, its metric, kernels and batch forms
//
// Quick taste:
//
//	space, _ := matrices.NewSpace(2, 2)
//	a, _ := space.RandomUniform(rand.New(rand.NewSource(1)))
//	sym, _ := matrices.ToSymmetric(a)
//	ip, _ := space.Metric().InnerProduct(sym, sym, nil)
//
// Dive into the package examples for full scenarios.
//
//	go get github.com/katalvlaran/matspace/matrices
package matspace
