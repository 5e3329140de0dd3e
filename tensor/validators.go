// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Returns ErrNilTensor if d == nil. Complexity: O(1).
func ValidateNotNil[T Scalar](d *Dense[T]) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor) // single source of truth for "nil argument"
	}
	return nil
}

// ValidateSameShape ensures a and b have equal batch, rows and cols.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape[T Scalar](a, b *Dense[T]) error {
	if a.batch != b.batch {
		return validatorErrorf("ValidateSameShape: Batch", ErrDimensionMismatch)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare checks that d is square in its trailing dims (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[T Scalar](d *Dense[T]) error {
	if d.r != d.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: combines ErrNilTensor and ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape[T Scalar](a, b *Dense[T]) error {
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

// ValidateSquareNonNil — composite: NotNil → Square.
// Errors: ErrNilTensor, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil[T Scalar](d *Dense[T]) error {
	if err := ValidateNotNil(d); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(d); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateVecLen ensures a broadcast factor slice has exactly length n.
// We reuse ErrNilTensor for nil slices to keep the sentinel set small.
// Complexity: O(1).
func ValidateVecLen[E any](x []E, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilTensor)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	return nil
}
