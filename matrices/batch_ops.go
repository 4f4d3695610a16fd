// SPDX-License-Identifier: MIT

// Package matrices: batched forms of the algebraic kernels.
//
// Each *Batch function maps its single-matrix counterpart over the elements
// of one or more Batch containers, broadcasting length-1 batches against
// longer ones. Elements are independent: results are identical regardless of
// evaluation order, and output order always follows input order. Validation
// is two-layered — batch structure here (nil elements, length conflicts),
// per-element shapes inside the delegated kernel.

package matrices

import "gonum.org/v1/gonum/mat"

// Batch operation tags, kept separate from the single-matrix tags so an error
// message names the exact entry point the caller used.
const (
	opMulBatch             = "MulBatch"
	opBracketBatch         = "BracketBatch"
	opTransposeBatch       = "TransposeBatch"
	opEqualBatch           = "EqualBatch"
	opIsSymmetricBatch     = "IsSymmetricBatch"
	opIsSkewSymmetricBatch = "IsSkewSymmetricBatch"
	opToSymmetricBatch     = "ToSymmetricBatch"
	opToSkewSymmetricBatch = "ToSkewSymmetricBatch"
	opCongruentBatch       = "CongruentBatch"
)

// mapUnary applies op to every element of b. Shared plumbing for the unary
// matrix→matrix batch kernels. Complexity: O(len(b)) kernel invocations.
func mapUnary(tag string, b Batch, op func(*mat.Dense) (*mat.Dense, error)) (Batch, error) {
	if err := ValidateBatch(b); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := make(Batch, len(b))
	var i int
	var err error
	for i = range b {
		if out[i], err = op(b[i]); err != nil {
			return nil, opErrorf(tag, err)
		}
	}
	return out, nil
}

// mapBinary applies op pairwise over a and b under length-1 broadcasting.
// Shared plumbing for the binary matrix×matrix→matrix batch kernels.
func mapBinary(tag string, a, b Batch, op func(x, y *mat.Dense) (*mat.Dense, error)) (Batch, error) {
	if err := ValidateBatch(a); err != nil {
		return nil, opErrorf(tag, err)
	}
	if err := ValidateBatch(b); err != nil {
		return nil, opErrorf(tag, err)
	}
	n, err := broadcastLen(len(a), len(b))
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	out := make(Batch, n)
	var i int
	for i = 0; i < n; i++ {
		if out[i], err = op(pick(a, i), pick(b, i)); err != nil {
			return nil, opErrorf(tag, err)
		}
	}
	return out, nil
}

// MulBatch computes the chained product element-wise across the operand
// batches: result[i] = Mul(a1[i], a2[i], …, an[i]) with length-1 operands
// broadcast to the common batch length.
//
// Errors: ErrNoOperands, ErrBatchLength, ErrNilMatrix, ErrDimensionMismatch.
func MulBatch(operands ...Batch) (Batch, error) {
	if len(operands) == 0 {
		return nil, opErrorf(opMulBatch, ErrNoOperands)
	}
	// Resolve the common batch length across all operands first, so a length
	// conflict is reported before any arithmetic runs.
	n := len(operands[0])
	var err error
	for _, b := range operands {
		if err = ValidateBatch(b); err != nil {
			return nil, opErrorf(opMulBatch, err)
		}
		if n, err = broadcastLen(n, len(b)); err != nil {
			return nil, opErrorf(opMulBatch, err)
		}
	}

	out := make(Batch, n)
	factors := make([]*mat.Dense, len(operands))
	var i, k int
	for i = 0; i < n; i++ {
		for k = range operands {
			factors[k] = pick(operands[k], i)
		}
		if out[i], err = Mul(factors...); err != nil {
			return nil, opErrorf(opMulBatch, err)
		}
	}
	return out, nil
}

// BracketBatch computes the commutator element-wise: result[i] = [a[i], b[i]].
func BracketBatch(a, b Batch) (Batch, error) {
	return mapBinary(opBracketBatch, a, b, Bracket)
}

// TransposeBatch transposes every matrix of the batch, leaving the batch
// axis untouched.
func TransposeBatch(b Batch) (Batch, error) {
	return mapUnary(opTransposeBatch, b, Transpose)
}

// ToSymmetricBatch maps ToSymmetric over the batch.
func ToSymmetricBatch(b Batch) (Batch, error) {
	return mapUnary(opToSymmetricBatch, b, ToSymmetric)
}

// ToSkewSymmetricBatch maps ToSkewSymmetric over the batch.
func ToSkewSymmetricBatch(b Batch) (Batch, error) {
	return mapUnary(opToSkewSymmetricBatch, b, ToSkewSymmetric)
}

// CongruentBatch computes the congruence action element-wise:
// result[i] = m2[i] · m1[i] · m2[i]ᵀ.
func CongruentBatch(m1, m2 Batch) (Batch, error) {
	return mapBinary(opCongruentBatch, m1, m2, Congruent)
}

// EqualBatch compares a and b element-wise, returning one boolean per batch
// position (the batch axis is preserved in the output, matrix axes are
// AND-reduced by the underlying Equal).
//
// Errors: ErrBatchLength, ErrNilMatrix, ErrDimensionMismatch, ErrBadTolerance.
func EqualBatch(a, b Batch, opts ...Option) ([]bool, error) {
	if err := ValidateBatch(a); err != nil {
		return nil, opErrorf(opEqualBatch, err)
	}
	if err := ValidateBatch(b); err != nil {
		return nil, opErrorf(opEqualBatch, err)
	}
	n, err := broadcastLen(len(a), len(b))
	if err != nil {
		return nil, opErrorf(opEqualBatch, err)
	}
	out := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		if out[i], err = Equal(pick(a, i), pick(b, i), opts...); err != nil {
			return nil, opErrorf(opEqualBatch, err)
		}
	}
	return out, nil
}

// IsSymmetricBatch reports, per batch position, whether the matrix equals
// its transpose within tolerance.
func IsSymmetricBatch(b Batch, opts ...Option) ([]bool, error) {
	return mapPredicate(opIsSymmetricBatch, b, func(m *mat.Dense) (bool, error) {
		return IsSymmetric(m, opts...)
	})
}

// IsSkewSymmetricBatch reports, per batch position, whether the matrix equals
// the negation of its transpose within tolerance.
func IsSkewSymmetricBatch(b Batch, opts ...Option) ([]bool, error) {
	return mapPredicate(opIsSkewSymmetricBatch, b, func(m *mat.Dense) (bool, error) {
		return IsSkewSymmetric(m, opts...)
	})
}

// mapPredicate applies a boolean kernel to every element of b, preserving the
// batch axis in the output slice.
func mapPredicate(tag string, b Batch, op func(*mat.Dense) (bool, error)) ([]bool, error) {
	if err := ValidateBatch(b); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := make([]bool, len(b))
	var i int
	var err error
	for i = range b {
		if out[i], err = op(b[i]); err != nil {
			return nil, opErrorf(tag, err)
		}
	}
	return out, nil
}
