// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid: fewer than
	// two dims, or any dim ≤ 0. Constructors must validate before allocation.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index (batch, row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Concat on misaligned blocks, or a
	// broadcast factor slice of the wrong length.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNonSquare signals that square trailing dims were required but the
	// input's rows ≠ cols.
	ErrNonSquare = errors.New("tensor: matrix is not square")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadData signals that FromSlice received a data slice whose length
	// does not match the product of the requested shape.
	ErrBadData = errors.New("tensor: data length does not match shape")

	// ErrNaNInf signals a NaN or ±Inf tolerance where finite values are
	// required by the numeric policy (AllClose).
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)
