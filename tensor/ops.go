// SPDX-License-Identifier: MIT
// Package tensor: whole-array kernels over batched Dense operands.
//
// Purpose:
//   - Declare the canonical elementwise, broadcast and structural kernels
//     used by spectra's iterative solvers.
//   - Keep every kernel pure: operands are never mutated, each call allocates
//     exactly one fresh result.
//
// Determinism & Performance:
//   - Fixed loop orders (batch → row → col, or flat 0..n-1); results are
//     stable across runs for identical inputs.
//   - All kernels operate on the flat backing slice directly — there is no
//     interface dispatch anywhere on the hot path.
//
// Notes:
//   - All kernels use central validators and return plain sentinels wrapped
//     via tensorErrorf with an operation tag.

package tensor

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opScaleRows     = "ScaleRows"
	opScaleCols     = "ScaleCols"
	opSliceRows     = "SliceRows"
	opSliceCols     = "SliceCols"
	opConcatRows    = "ConcatRows"
	opConcatCols    = "ConcatCols"
	opPad           = "PadBottomRight"
	opConjTranspose = "ConjTranspose"
	opDiag          = "Diag"
	opWithDiag      = "WithDiagFloat"
	opZeroDiag      = "WithZeroDiag"
	opFrobSq        = "FrobSq"
	opAllClose      = "AllClose"
)

// tensorErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil; caller responsibility.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeWithTrailing returns a copy of shape with the trailing rows/cols dims
// replaced. Internal helper shared by slicing/concat/transpose kernels.
func shapeWithTrailing(shape []int, r, c int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	out[len(out)-2] = r
	out[len(out)-1] = c
	return out
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and the loop.
func addSub[T Scalar](a, b *Dense[T], sign float64, opTag string) (*Dense[T], error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, tensorErrorf(opTag, err)
	}

	// Allocate result with a's shape.
	out, err := NewDense[T](a.shape...)
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}

	// Single flat loop 0..n-1; keeping sign as a scalar multiplicand avoids
	// an extra branch inside the hot loop.
	sg := FromFloat[T](sign)
	n := len(a.data)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + sg*b.data[idx]
	}
	return out, nil
}

// Add computes the elementwise sum C = A + B over every batch element.
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func Add[T Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B over every batch element.
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func Sub[T Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// ScaleRows computes out[b,i,j] = f[b*rows+i] * x[b,i,j]: one factor per row
// of every batch element, broadcast along the columns.
// Implementation:
//   - Stage 1: ValidateNotNil(x); factor length must equal batch*rows.
//   - Stage 2: batch→row→col loops with the row factor hoisted per row.
//
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func ScaleRows[T Scalar](x *Dense[T], f []T) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(f, x.batch*x.r); err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	out, err := NewDense[T](x.shape...)
	if err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	var b, i, j, base int
	var rf T // row factor, read once per row
	for b = 0; b < x.batch; b++ {
		for i = 0; i < x.r; i++ {
			rf = f[b*x.r+i]
			base = (b*x.r + i) * x.c
			for j = 0; j < x.c; j++ {
				out.data[base+j] = rf * x.data[base+j]
			}
		}
	}
	return out, nil
}

// ScaleRowsFloat is ScaleRows with real factors lifted into T once per row.
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func ScaleRowsFloat[T Scalar](x *Dense[T], f []float64) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(f, x.batch*x.r); err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	out, err := NewDense[T](x.shape...)
	if err != nil {
		return nil, tensorErrorf(opScaleRows, err)
	}
	var b, i, j, base int
	var rf T
	for b = 0; b < x.batch; b++ {
		for i = 0; i < x.r; i++ {
			rf = FromFloat[T](f[b*x.r+i]) // lift once per row, not per element
			base = (b*x.r + i) * x.c
			for j = 0; j < x.c; j++ {
				out.data[base+j] = rf * x.data[base+j]
			}
		}
	}
	return out, nil
}

// ScaleCols computes out[b,i,j] = f[b*cols+j] * x[b,i,j]: one factor per
// column of every batch element, broadcast along the rows.
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func ScaleCols[T Scalar](x *Dense[T], f []T) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(f, x.batch*x.c); err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	out, err := NewDense[T](x.shape...)
	if err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	var b, i, j, base, fbase int
	for b = 0; b < x.batch; b++ {
		fbase = b * x.c
		for i = 0; i < x.r; i++ {
			base = (b*x.r + i) * x.c
			for j = 0; j < x.c; j++ {
				out.data[base+j] = f[fbase+j] * x.data[base+j]
			}
		}
	}
	return out, nil
}

// ScaleColsFloat is ScaleCols with real factors. The factors are lifted into
// T once per batch element to keep the inner loop multiply-only.
// Errors: ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(batch*r*c) plus O(c) scratch.
func ScaleColsFloat[T Scalar](x *Dense[T], f []float64) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(f, x.batch*x.c); err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	out, err := NewDense[T](x.shape...)
	if err != nil {
		return nil, tensorErrorf(opScaleCols, err)
	}
	lifted := make([]T, x.c) // per-batch column factors, lifted once
	var b, i, j, base int
	for b = 0; b < x.batch; b++ {
		for j = 0; j < x.c; j++ {
			lifted[j] = FromFloat[T](f[b*x.c+j])
		}
		for i = 0; i < x.r; i++ {
			base = (b*x.r + i) * x.c
			for j = 0; j < x.c; j++ {
				out.data[base+j] = lifted[j] * x.data[base+j]
			}
		}
	}
	return out, nil
}

// SliceRows returns rows [from, to) of every batch element as a fresh Dense.
// Errors: ErrNilTensor, ErrOutOfRange (empty or out-of-bounds range).
// Complexity: Time O(batch*(to-from)*c), Space same.
func SliceRows[T Scalar](x *Dense[T], from, to int) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opSliceRows, err)
	}
	if from < 0 || to > x.r || from >= to {
		return nil, tensorErrorf(opSliceRows, ErrOutOfRange)
	}
	out, err := NewDense[T](shapeWithTrailing(x.shape, to-from, x.c)...)
	if err != nil {
		return nil, tensorErrorf(opSliceRows, err)
	}
	rows := to - from
	var b, i int
	for b = 0; b < x.batch; b++ {
		for i = 0; i < rows; i++ {
			// contiguous row copy: source row (from+i), destination row i
			src := (b*x.r + from + i) * x.c
			dst := (b*rows + i) * x.c
			copy(out.data[dst:dst+x.c], x.data[src:src+x.c])
		}
	}
	return out, nil
}

// SliceCols returns columns [from, to) of every batch element as a fresh Dense.
// Errors: ErrNilTensor, ErrOutOfRange.
// Complexity: Time O(batch*r*(to-from)), Space same.
func SliceCols[T Scalar](x *Dense[T], from, to int) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opSliceCols, err)
	}
	if from < 0 || to > x.c || from >= to {
		return nil, tensorErrorf(opSliceCols, ErrOutOfRange)
	}
	cols := to - from
	out, err := NewDense[T](shapeWithTrailing(x.shape, x.r, cols)...)
	if err != nil {
		return nil, tensorErrorf(opSliceCols, err)
	}
	var b, i int
	for b = 0; b < x.batch; b++ {
		for i = 0; i < x.r; i++ {
			src := (b*x.r+i)*x.c + from
			dst := (b*x.r + i) * cols
			copy(out.data[dst:dst+cols], x.data[src:src+cols])
		}
	}
	return out, nil
}

// ConcatRows stacks the given blocks vertically (along rows) per batch
// element. All parts must share batch and column counts.
// Errors: ErrNilTensor (no parts or a nil part), ErrDimensionMismatch.
// Complexity: Time O(total elements), Space same.
func ConcatRows[T Scalar](parts ...*Dense[T]) (*Dense[T], error) {
	if len(parts) == 0 {
		return nil, tensorErrorf(opConcatRows, ErrNilTensor)
	}
	head := parts[0]
	if err := ValidateNotNil(head); err != nil {
		return nil, tensorErrorf(opConcatRows, err)
	}
	rows := 0
	for _, p := range parts {
		if err := ValidateNotNil(p); err != nil {
			return nil, tensorErrorf(opConcatRows, err)
		}
		if p.batch != head.batch || p.c != head.c {
			return nil, tensorErrorf(opConcatRows, ErrDimensionMismatch)
		}
		rows += p.r
	}
	out, err := NewDense[T](shapeWithTrailing(head.shape, rows, head.c)...)
	if err != nil {
		return nil, tensorErrorf(opConcatRows, err)
	}
	var b, i, at int
	for b = 0; b < head.batch; b++ {
		at = 0 // running destination row within batch element b
		for _, p := range parts {
			for i = 0; i < p.r; i++ {
				src := (b*p.r + i) * p.c
				dst := (b*rows + at + i) * head.c
				copy(out.data[dst:dst+head.c], p.data[src:src+p.c])
			}
			at += p.r
		}
	}
	return out, nil
}

// ConcatCols stitches the given blocks horizontally (along columns) per batch
// element. All parts must share batch and row counts.
// Errors: ErrNilTensor (no parts or a nil part), ErrDimensionMismatch.
// Complexity: Time O(total elements), Space same.
func ConcatCols[T Scalar](parts ...*Dense[T]) (*Dense[T], error) {
	if len(parts) == 0 {
		return nil, tensorErrorf(opConcatCols, ErrNilTensor)
	}
	head := parts[0]
	if err := ValidateNotNil(head); err != nil {
		return nil, tensorErrorf(opConcatCols, err)
	}
	cols := 0
	for _, p := range parts {
		if err := ValidateNotNil(p); err != nil {
			return nil, tensorErrorf(opConcatCols, err)
		}
		if p.batch != head.batch || p.r != head.r {
			return nil, tensorErrorf(opConcatCols, ErrDimensionMismatch)
		}
		cols += p.c
	}
	out, err := NewDense[T](shapeWithTrailing(head.shape, head.r, cols)...)
	if err != nil {
		return nil, tensorErrorf(opConcatCols, err)
	}
	var b, i, at int
	for b = 0; b < head.batch; b++ {
		for i = 0; i < head.r; i++ {
			at = 0 // running destination column within row i
			for _, p := range parts {
				src := (b*p.r + i) * p.c
				dst := (b*head.r+i)*cols + at
				copy(out.data[dst:dst+p.c], p.data[src:src+p.c])
				at += p.c
			}
		}
	}
	return out, nil
}

// PadBottomRight zero-extends every batch element by dr rows at the bottom
// and dc columns at the right. dr and dc may be zero (plain copy).
// Errors: ErrNilTensor, ErrBadShape (negative padding).
// Complexity: Time O(batch*(r+dr)*(c+dc)), Space same.
func PadBottomRight[T Scalar](x *Dense[T], dr, dc int) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opPad, err)
	}
	if dr < 0 || dc < 0 {
		return nil, tensorErrorf(opPad, ErrBadShape)
	}
	rows, cols := x.r+dr, x.c+dc
	out, err := NewDense[T](shapeWithTrailing(x.shape, rows, cols)...)
	if err != nil {
		return nil, tensorErrorf(opPad, err)
	}
	// Copy the original block; the padding stays at the zero value.
	var b, i int
	for b = 0; b < x.batch; b++ {
		for i = 0; i < x.r; i++ {
			src := (b*x.r + i) * x.c
			dst := (b*rows + i) * cols
			copy(out.data[dst:dst+x.c], x.data[src:src+x.c])
		}
	}
	return out, nil
}

// ConjTranspose returns the per-batch conjugate transpose: out[b,j,i] =
// conj(x[b,i,j]). For float64 elements this is a plain transpose.
// Errors: ErrNilTensor.
// Complexity: Time O(batch*r*c), Space O(batch*r*c).
func ConjTranspose[T Scalar](x *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opConjTranspose, err)
	}
	out, err := NewDense[T](shapeWithTrailing(x.shape, x.c, x.r)...)
	if err != nil {
		return nil, tensorErrorf(opConjTranspose, err)
	}
	var b, i, j, base int
	for b = 0; b < x.batch; b++ {
		for i = 0; i < x.r; i++ {
			base = (b*x.r + i) * x.c
			for j = 0; j < x.c; j++ {
				// data[b,i,j] → out[b,j,i], conjugated
				out.data[(b*x.c+j)*x.r+i] = Conj(x.data[base+j])
			}
		}
	}
	return out, nil
}

// Diag extracts the main diagonal of every batch element as a 1×n row.
// Errors: ErrNilTensor, ErrNonSquare.
// Complexity: Time O(batch*n), Space O(batch*n).
func Diag[T Scalar](x *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(x); err != nil {
		return nil, tensorErrorf(opDiag, err)
	}
	n := x.r
	out, err := NewDense[T](shapeWithTrailing(x.shape, 1, n)...)
	if err != nil {
		return nil, tensorErrorf(opDiag, err)
	}
	var b, d int
	for b = 0; b < x.batch; b++ {
		for d = 0; d < n; d++ {
			out.data[b*n+d] = x.data[(b*n+d)*n+d]
		}
	}
	return out, nil
}

// WithDiagFloat returns a copy of x whose main diagonal is replaced by the
// given real values (lifted into T), one value per batch element per index:
// vals[b*n+d]. The input is never mutated.
// Errors: ErrNilTensor, ErrNonSquare, ErrDimensionMismatch.
// Complexity: Time O(batch*n²), Space O(batch*n²).
func WithDiagFloat[T Scalar](x *Dense[T], vals []float64) (*Dense[T], error) {
	if err := ValidateSquareNonNil(x); err != nil {
		return nil, tensorErrorf(opWithDiag, err)
	}
	n := x.r
	if err := ValidateVecLen(vals, x.batch*n); err != nil {
		return nil, tensorErrorf(opWithDiag, err)
	}
	out := x.Clone()
	var b, d int
	for b = 0; b < x.batch; b++ {
		for d = 0; d < n; d++ {
			out.data[(b*n+d)*n+d] = FromFloat[T](vals[b*n+d])
		}
	}
	return out, nil
}

// WithZeroDiag returns a copy of x whose main diagonal is zeroed.
// Errors: ErrNilTensor, ErrNonSquare.
// Complexity: Time O(batch*n²), Space O(batch*n²).
func WithZeroDiag[T Scalar](x *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(x); err != nil {
		return nil, tensorErrorf(opZeroDiag, err)
	}
	out := x.Clone()
	n := x.r
	var zero T
	var b, d int
	for b = 0; b < x.batch; b++ {
		for d = 0; d < n; d++ {
			out.data[(b*n+d)*n+d] = zero
		}
	}
	return out, nil
}

// FrobSq returns the squared Frobenius norm of every batch element:
// out[b] = Σ_{i,j} |x[b,i,j]|².
// Errors: ErrNilTensor.
// Complexity: Time O(batch*r*c), Space O(batch).
func FrobSq[T Scalar](x *Dense[T]) ([]float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, tensorErrorf(opFrobSq, err)
	}
	out := make([]float64, x.batch)
	per := x.r * x.c // elements per batch slice
	var b, k int
	var acc float64
	for b = 0; b < x.batch; b++ {
		acc = 0 // reset accumulator per batch element
		base := b * per
		for k = 0; k < per; k++ {
			acc += AbsSq(x.data[base+k])
		}
		out[b] = acc
	}
	return out, nil
}

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| over identical shapes.
// Returns (true, nil) if every element satisfies the relation. Negative
// tolerances are normalized to their absolute values; NaN/Inf tolerances are
// rejected per numeric policy.
// Errors: ErrNaNInf, ErrNilTensor, ErrDimensionMismatch.
// Complexity: Time O(batch*r*c), Space O(1).
func AllClose[T Scalar](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, tensorErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, tensorErrorf(opAllClose, err)
	}
	n := len(a.data)
	for idx := 0; idx < n; idx++ {
		if Abs(a.data[idx]-b.data[idx]) > atol+rtol*Abs(b.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}
	return true, nil
}
