// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/ring checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Ring identity is an O(1) comparison of Ring values, never a cell scan.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Ring → Shape).
//  - Each validator states what it validates and what it assumes.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lindet/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil (interface-nil or typed-nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed-nil *Dense hides behind a non-nil interface; reject it too.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateSameRing – Ensures operands share one coefficient ring.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Ring values are comparable by contract, so this is a single == check.
// Return: nil or wrapped ErrRingMismatch.
// Complexity: O(1).
func ValidateSameRing(a, b Matrix) error {
	if a.Ring() != b.Ring() {
		return validatorErrorf("ValidateSameRing", ErrRingMismatch)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: Matrix value (non-nil, caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil, has the required length n,
// and carries no nil elements. Zero-length vectors are legal when n == 0.
// Complexity: O(n).
func ValidateVecLen(x []ring.Element, n int) error {
	// Disallow nil slices to avoid subtle bugs in MatVec-like routines,
	// except for the empty case where nil and empty behave identically.
	if x == nil && n != 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	// Elements must be present; arithmetic on nil panics far from the cause.
	for i := 0; i < n; i++ {
		if x[i] == nil {
			return validatorErrorf("ValidateVecLen", ErrNilElement)
		}
	}

	return nil
}

// ValidateBinaryCompatible – Composite: NotNil(a) → NotNil(b) → SameRing → SameShape.
//
// Errors: Combines ErrNilMatrix, ErrRingMismatch and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinaryCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryCompatible", err)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return validatorErrorf("ValidateBinaryCompatible", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinaryCompatible", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures inputs non-nil, same ring, a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
