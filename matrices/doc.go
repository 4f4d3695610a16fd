// SPDX-License-Identifier: MIT

// Package matrices models the space of real m×n matrices as a flat manifold
// and equips it with the Frobenius (Euclidean) metric.
//
// The matrices package provides:
//
//   - Space: the set of all m×n real matrices with fixed shape; membership
//     testing and uniform random sampling.
//   - Pure algebraic kernels over *mat.Dense: chained product (Mul), the Lie
//     bracket (Bracket), transposition, symmetric/skew-symmetric projection
//     and tests, and the congruence action m2·m1·m2ᵀ.
//   - FrobeniusMetric: the position-independent inner product
//     ⟨a,b⟩ = Σ a[i,j]·b[i,j] together with the norms and distances it induces.
//   - Batch: an explicit batch-of-matrices container. Batch forms of every
//     kernel map element-wise with length-1 broadcasting, so "single vs batch"
//     is a type-level distinction rather than runtime rank sniffing.
//
// All heavy numerics (multiplication, elementwise arithmetic, approximate
// comparison) are delegated to gonum.org/v1/gonum/mat; this package adds the
// manifold vocabulary, strict fail-fast validation with sentinel errors, and
// the vectorization conventions.
//
// Operations are pure functions of their inputs: nothing is mutated, nothing
// is cached, and results are independent of batch-element evaluation order.
// The only entropy consumer, RandomUniform, takes a caller-supplied
// *rand.Rand so sampling stays reproducible under a fixed seed.
//
// See the examples in this package for usage patterns.
package matrices
