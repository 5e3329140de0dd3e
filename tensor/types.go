// SPDX-License-Identifier: MIT
// Package tensor: element types and the scalar helper set.
//
// Purpose:
//   - Declare the Scalar constraint shared by every kernel in the package.
//   - Isolate the real/complex split behind a handful of tiny helpers so the
//     numeric code paths share one implementation instead of duplicating
//     formula structure per element type.
//
// Determinism & Performance:
//   - All helpers are pure, allocation-free and O(1).
//   - Type switches on `any(v)` compile to cheap type assertions; there is
//     exactly one switch per helper call, never per formula term.

package tensor

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of element types Dense can carry. float64 covers real
// symmetric workloads; complex128 covers Hermitian ones.
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of v. For float64 it is the identity.
// Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v // real values are self-conjugate
	}
}

// Abs returns |v| as a float64 for either element type.
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	return 0 // unreachable: Scalar admits exactly the two cases above
}

// AbsSq returns |v|² as a float64. Cheaper than Abs(v)*Abs(v) for complex
// values because it avoids the square root entirely.
// Complexity: O(1).
func AbsSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	return 0 // unreachable
}

// Re returns the real part of v as a float64.
// Complexity: O(1).
func Re[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}
	return 0 // unreachable
}

// FromFloat lifts a real scalar into T (imaginary part zero for complex128).
// Use it to feed real-valued rotation cosines, identities and thresholds
// into kernels that operate on either element type.
// Complexity: O(1).
func FromFloat[T Scalar](f float64) T {
	var zero T
	switch any(zero).(type) {
	case complex128:
		return any(complex(f, 0)).(T)
	default:
		return any(f).(T)
	}
}
