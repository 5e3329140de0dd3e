// Package tensor provides batched dense array primitives for spectra's
// numeric kernels. Dense is a concrete, row-major implementation storing
// elements in one flat slice for performance and cache friendliness; an
// arbitrary leading batch shape is folded into a single batch axis so every
// kernel broadcasts over it uniformly.
package tensor

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, b, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d): %w", method, b, row, col, err)
}

// Dense is a batched row-major matrix of Scalar values.
// shape holds the full user-facing shape (leading batch dims + rows + cols);
// batch is the product of the leading dims (1 when there are none);
// data holds batch*r*c elements, batch-major then row-major.
type Dense[T Scalar] struct {
	shape []int // full shape, len(shape) >= 2
	batch int   // product of shape[:len(shape)-2], at least 1
	r, c  int   // trailing dims: rows and columns
	data  []T   // flat backing storage, length == batch*r*c
}

// NewDense creates a zero-initialized Dense with the given shape. The last
// two dims are rows × cols; any leading dims form the batch shape.
// Stage 1 (Validate): at least two dims, all dims > 0.
// Stage 2 (Prepare): fold leading dims into one batch axis, allocate storage.
// Complexity: O(batch*r*c) time and memory.
func NewDense[T Scalar](shape ...int) (*Dense[T], error) {
	// Validate rank and positivity of every dim.
	if len(shape) < 2 {
		return nil, ErrBadShape
	}
	total := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrBadShape
		}
		total *= d
	}

	// Fold leading dims into one batch axis.
	r, c := shape[len(shape)-2], shape[len(shape)-1]
	batch := total / (r * c)

	// Keep a private copy of the shape so callers cannot alias it.
	own := make([]int, len(shape))
	copy(own, shape)

	return &Dense[T]{shape: own, batch: batch, r: r, c: c, data: make([]T, total)}, nil
}

// Zeros is a thin alias of NewDense with an intention-revealing name.
func Zeros[T Scalar](shape ...int) (*Dense[T], error) {
	return NewDense[T](shape...)
}

// Identity returns a batched identity matrix: ones on the diagonal of every
// batch element, zeros elsewhere. The trailing dims must be square.
// Complexity: O(batch*n²) zeroing + O(batch*n) diagonal writes.
func Identity[T Scalar](shape ...int) (*Dense[T], error) {
	out, err := NewDense[T](shape...)
	if err != nil {
		return nil, err
	}
	if out.r != out.c {
		return nil, ErrNonSquare
	}
	one := FromFloat[T](1)
	n := out.r
	for b := 0; b < out.batch; b++ { // fixed batch order guarantees reproducibility
		base := b * n * n
		for i := 0; i < n; i++ {
			out.data[base+i*n+i] = one
		}
	}
	return out, nil
}

// FromSlice builds a Dense from row-major (batch-major) data. The slice is
// copied; the caller keeps ownership of its argument.
// Errors: ErrBadShape (invalid shape), ErrBadData (length mismatch).
// Complexity: O(len(data)).
func FromSlice[T Scalar](data []T, shape ...int) (*Dense[T], error) {
	out, err := NewDense[T](shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(out.data) {
		return nil, ErrBadData
	}
	copy(out.data, data)
	return out, nil
}

// ZerosLike returns a new zero Dense with the same shape as d.
// Handy to preallocate staging buffers in iterative schemes.
func ZerosLike[T Scalar](d *Dense[T]) (*Dense[T], error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	return NewDense[T](d.shape...)
}

// Shape returns a copy of the full shape (batch dims + rows + cols).
// Complexity: O(rank).
func (d *Dense[T]) Shape() []int {
	out := make([]int, len(d.shape))
	copy(out, d.shape)
	return out
}

// Rows returns the number of rows (second-to-last dim). Complexity: O(1).
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns (last dim). Complexity: O(1).
func (d *Dense[T]) Cols() int { return d.c }

// Batch returns the folded batch size (product of leading dims, ≥ 1).
// Complexity: O(1).
func (d *Dense[T]) Batch() int { return d.batch }

// Raw exposes the flat backing slice, batch-major then row-major:
// element (b, i, j) lives at (b*Rows()+i)*Cols()+j. Mutations are visible to
// the Dense. Intended for tight cross-package kernels that have already
// validated shapes; prefer At/Set everywhere else.
func (d *Dense[T]) Raw() []T { return d.data }

// indexOf computes the flat index for (b, row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) indexOf(b, row, col int) (int, error) {
	if b < 0 || b >= d.batch {
		return 0, ErrOutOfRange
	}
	if row < 0 || row >= d.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}
	return (b*d.r+row)*d.c + col, nil
}

// At retrieves the element at (b, row, col) where b is the folded batch index.
// Complexity: O(1).
func (d *Dense[T]) At(b, row, col int) (T, error) {
	idx, err := d.indexOf(b, row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf("At", b, row, col, err)
	}
	return d.data[idx], nil
}

// Set assigns value v at (b, row, col). Complexity: O(1).
func (d *Dense[T]) Set(b, row, col int, v T) error {
	idx, err := d.indexOf(b, row, col)
	if err != nil {
		return denseErrorf("Set", b, row, col, err)
	}
	d.data[idx] = v
	return nil
}

// Clone returns a deep copy of the Dense.
// Complexity: O(batch*r*c) time and memory.
func (d *Dense[T]) Clone() *Dense[T] {
	shape := make([]int, len(d.shape))
	copy(shape, d.shape)
	data := make([]T, len(d.data))
	copy(data, d.data)
	return &Dense[T]{shape: shape, batch: d.batch, r: d.r, c: d.c, data: data}
}

// String implements fmt.Stringer for easy debugging. Batch elements are
// printed one after another, rows bracketed.
// Complexity: O(batch*r*c) for string construction.
func (d *Dense[T]) String() string {
	var sb strings.Builder
	var b, i, j int
	for b = 0; b < d.batch; b++ { // iterate over batch elements
		if d.batch > 1 {
			fmt.Fprintf(&sb, "batch %d:\n", b)
		}
		for i = 0; i < d.r; i++ { // iterate over rows
			sb.WriteString("[") // open row
			for j = 0; j < d.c; j++ {
				// compute flat index directly for performance
				fmt.Fprintf(&sb, "%v", d.data[(b*d.r+i)*d.c+j])
				if j < d.c-1 {
					sb.WriteString(", ") // separate values with comma
				}
			}
			sb.WriteString("]\n") // close row
		}
	}
	return sb.String()
}
