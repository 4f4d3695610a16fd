// SPDX-License-Identifier: MIT
// Package: matrices
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape/square checks here.
//   - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Every validator is O(1) except ValidateBatch, which is O(len(batch)).
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Shape conflicts are caught here, before gonum is ever invoked, so the
//     backend never panics on user input.

package matrices

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *mat.Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *mat.Dense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: cols", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare checks that m is square (rows == cols).
// Assumes m is not nil. Returns wrapped ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *mat.Dense) error {
	r, c := m.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil(m *mat.Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *mat.Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *mat.Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// ValidateBatch ensures every element of the batch is a concrete matrix.
// An empty batch is legal (operations on it yield empty results).
// Errors: ErrNilMatrix. Complexity: O(len(b)).
func ValidateBatch(b Batch) error {
	for i, m := range b {
		if m == nil {
			return validatorErrorf(fmt.Sprintf("ValidateBatch[%d]", i), ErrNilMatrix)
		}
	}
	return nil
}

// ValidateShape checks the (rows, cols) pair requested at construction.
// Errors: ErrBadShape when rows < 1 or cols < 1. Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}
	return nil
}
