// SPDX-License-Identifier: MIT
// Package eigh: sentinel error set.
// Numeric edge cases (zero pivots, near-diagonal pencils, failure to converge
// within the sweep budget) are NOT errors in this package — they are handled
// by branch-free guards and the best-effort contract of Decompose. The only
// fail-fast conditions are structural: nil or non-square input.

package eigh

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates that a nil *tensor.Dense was passed to Decompose.
	ErrNilInput = errors.New("eigh: nil input matrix")

	// ErrNonSquare signals that the trailing dims of the input are not square.
	// Decompose fails fast with this sentinel before any partitioning begins.
	ErrNonSquare = errors.New("eigh: matrix is not square")
)

// eighErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil; caller responsibility.
func eighErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
