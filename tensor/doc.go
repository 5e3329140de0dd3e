// Package tensor provides a minimal batched dense matrix type and the
// whole-block operations the eigh solver is built from.
//
// The tensor package provides:
//
//   - Dense[T], a row-major matrix with arbitrary leading batch dims and a
//     Scalar element type (float64 or complex128).
//   - Constructors: NewDense, Zeros, Identity, FromSlice, ZerosLike.
//   - Elementwise kernels (Add, Sub) and row/column scaling against
//     per-batch coefficient vectors (ScaleRows, ScaleCols and the Float
//     variants).
//   - Block surgery: SliceRows/SliceCols, ConcatRows/ConcatCols,
//     PadBottomRight.
//   - Structure helpers: ConjTranspose, Diag, WithDiagFloat, WithZeroDiag,
//     FrobSq, AllClose.
//
// Every operation is pure: inputs are never mutated and each call returns a
// freshly allocated result.  Shapes are validated up front and violations
// surface as wrapped sentinel errors (ErrBadShape, ErrDimensionMismatch,
// ErrOutOfRange, ...), so errors.Is works across the package boundary.
//
// The layout is fixed: element (b, i, j) lives at data[(b·rows+i)·cols+j],
// and Raw exposes the backing slice for callers that need tight loops.
package tensor
