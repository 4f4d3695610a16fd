// SPDX-License-Identifier: MIT

// Package matrices: algebraic kernels over single matrices.
//
// Every kernel here is a pure function: operands are never mutated, results
// are freshly allocated, and outputs depend only on inputs. Shape validation
// is strict and fail-fast via the central validators; the gonum backend is
// invoked only after shapes are known to be compatible, so it never panics
// on user input. All errors wrap package sentinels with a stable operation
// tag ("Mul: ...", "Bracket: ...") for uniform reporting.

package matrices

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul             = "Mul"
	opBracket         = "Bracket"
	opTranspose       = "Transpose"
	opEqual           = "Equal"
	opIsSymmetric     = "IsSymmetric"
	opIsSkewSymmetric = "IsSkewSymmetric"
	opToSymmetric     = "ToSymmetric"
	opToSkewSymmetric = "ToSkewSymmetric"
	opCongruent       = "Congruent"
)

// opErrorf wraps err with an operation tag, preserving the original sentinel
// via %w so callers can still match with errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the left-to-right chained product a1·a2·…·an.
//
// Implementation:
//   - Stage 1: require at least one operand; validate the first is non-nil.
//   - Stage 2: fold the remaining operands pairwise, validating inner
//     dimensions (acc.Cols == rhs.Rows) before each product.
//
// With a single operand the reduction identity applies and a clone of it is
// returned, so callers always own the result.
//
// Errors: ErrNoOperands, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(Σ rᵢ·cᵢ·cᵢ₊₁) time across the chain, O(r·c) space per product.
func Mul(operands ...*mat.Dense) (*mat.Dense, error) {
	if len(operands) == 0 {
		return nil, opErrorf(opMul, ErrNoOperands)
	}
	if err := ValidateNotNil(operands[0]); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Reduction identity: a fresh clone keeps the input immutable.
	acc := new(mat.Dense)
	acc.CloneFrom(operands[0])

	var rhs *mat.Dense
	for _, rhs = range operands[1:] {
		if err := ValidateMulCompatible(acc, rhs); err != nil {
			return nil, opErrorf(opMul, err)
		}
		next := new(mat.Dense)
		next.Mul(acc, rhs) // backend product; shapes pre-validated
		acc = next
	}

	return acc, nil
}

// Transpose returns a materialized copy of mᵀ (last two axes swapped).
// The input is never mutated. Errors: ErrNilMatrix.
// Complexity: O(r·c) time and space.
func Transpose(m *mat.Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	out := new(mat.Dense)
	out.CloneFrom(m.T())
	return out, nil
}

// Bracket computes the commutator [a, b] = a·b − b·a, measuring the failure
// of a and b to commute. Both operands must be square and of the same shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare.
// Complexity: O(n³) time, O(n²) space.
func Bracket(a, b *mat.Dense) (*mat.Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opBracket, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opBracket, err)
	}

	var ab, ba, out mat.Dense
	ab.Mul(a, b)
	ba.Mul(b, a)
	out.Sub(&ab, &ba)

	return &out, nil
}

// Equal reports whether a and b are entrywise close within the absolute
// tolerance (DefaultTolerance unless overridden via WithTolerance):
// |a[i,j] − b[i,j]| ≤ tol for every entry, i.e. an isclose reduced by
// logical AND over the matrix axes.
//
// The scan runs in fixed i→j order with a fast negative path on the first
// violating entry. NaN entries are never close to anything.
//
// Errors: ErrBadTolerance, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time, O(1) space.
func Equal(a, b *mat.Dense, opts ...Option) (bool, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opEqual, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, opErrorf(opEqual, err)
	}

	rows, cols := a.Dims()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !scalar.EqualWithinAbs(a.At(i, j), b.At(i, j), o.tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSymmetric reports whether m equals its transpose within tolerance.
// Square-only; delegates the comparison to Equal.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
// Complexity: O(n²).
func IsSymmetric(m *mat.Dense, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, opErrorf(opIsSymmetric, err)
	}
	t := new(mat.Dense)
	t.CloneFrom(m.T())
	ok, err := Equal(m, t, opts...)
	if err != nil {
		return false, opErrorf(opIsSymmetric, err)
	}
	return ok, nil
}

// IsSkewSymmetric reports whether m equals the negation of its transpose
// within tolerance. Square-only; delegates the comparison to Equal.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
// Complexity: O(n²).
func IsSkewSymmetric(m *mat.Dense, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, opErrorf(opIsSkewSymmetric, err)
	}
	nt := new(mat.Dense)
	nt.Scale(-1, m.T())
	ok, err := Equal(m, nt, opts...)
	if err != nil {
		return false, opErrorf(opIsSkewSymmetric, err)
	}
	return ok, nil
}

// ToSymmetric returns the symmetric part (m + mᵀ)/2 of a square matrix.
// Together with ToSkewSymmetric it forms the exact decomposition
// m = ToSymmetric(m) + ToSkewSymmetric(m).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func ToSymmetric(m *mat.Dense) (*mat.Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf(opToSymmetric, err)
	}
	var out mat.Dense
	out.Add(m, m.T())
	out.Scale(0.5, &out)
	return &out, nil
}

// ToSkewSymmetric returns the skew-symmetric part (m − mᵀ)/2 of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func ToSkewSymmetric(m *mat.Dense) (*mat.Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf(opToSkewSymmetric, err)
	}
	var out mat.Dense
	out.Sub(m, m.T())
	out.Scale(0.5, &out)
	return &out, nil
}

// Congruent computes the congruence action of m2 on m1: m2 · m1 · m2ᵀ.
// m1 must be square (n×n); m2 may be rectangular (k×n), producing a k×k
// result. The action preserves symmetry of m1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(k·n² + k²·n) time, O(k²) space.
func Congruent(m1, m2 *mat.Dense) (*mat.Dense, error) {
	if err := ValidateSquareNonNil(m1); err != nil {
		return nil, opErrorf(opCongruent, err)
	}
	if err := ValidateMulCompatible(m2, m1); err != nil {
		return nil, opErrorf(opCongruent, err)
	}
	t2 := new(mat.Dense)
	t2.CloneFrom(m2.T())
	out, err := Mul(m2, m1, t2)
	if err != nil {
		return nil, opErrorf(opCongruent, err)
	}
	return out, nil
}
