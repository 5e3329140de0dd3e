package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/tensor"
)

// TestAddSub checks the elementwise kernels and their shape guard.
func TestAddSub(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []float64{10, 20, 30, 40}, 2, 2)

	sum, err := tensor.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Raw())

	diff, err := tensor.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Raw())

	// Operands must never be mutated.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Raw())

	other := mustDense(t, []float64{1, 2}, 1, 2)
	_, err = tensor.Add(a, other)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestScaleRows verifies per-row broadcasting with a batch of two elements:
// factor f[b*rows+i] multiplies every entry of row i in batch element b.
func TestScaleRows(t *testing.T) {
	x := mustDense(t, []float64{
		1, 1, // batch 0, row 0
		2, 2, // batch 0, row 1
		3, 3, // batch 1, row 0
		4, 4, // batch 1, row 1
	}, 2, 2, 2)

	out, err := tensor.ScaleRowsFloat(x, []float64{10, 100, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 200, 200, 3, 3, 0, 0}, out.Raw())

	_, err = tensor.ScaleRowsFloat(x, []float64{1, 2})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch, "factor length must be batch*rows")
}

// TestScaleCols verifies per-column broadcasting: factor f[b*cols+j]
// multiplies every entry of column j in batch element b.
func TestScaleCols(t *testing.T) {
	x := mustDense(t, []float64{
		1, 2,
		3, 4,
	}, 2, 2)

	out, err := tensor.ScaleColsFloat(x, []float64{10, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, -2, 30, -4}, out.Raw())

	outT, err := tensor.ScaleCols(x, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 4}, outT.Raw())
}

// TestSliceConcat_RoundTrip splits a matrix into halves and reassembles it,
// along both axes, expecting bit-identical contents.
func TestSliceConcat_RoundTrip(t *testing.T) {
	x := mustDense(t, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)

	top, err := tensor.SliceRows(x, 0, 2)
	require.NoError(t, err)
	bot, err := tensor.SliceRows(x, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, top.Raw())

	back, err := tensor.ConcatRows(top, bot)
	require.NoError(t, err)
	assert.Equal(t, x.Raw(), back.Raw(), "row split/concat must round-trip")

	left, err := tensor.SliceCols(x, 0, 2)
	require.NoError(t, err)
	right, err := tensor.SliceCols(x, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5, 6, 9, 10, 13, 14}, left.Raw())

	back, err = tensor.ConcatCols(left, right)
	require.NoError(t, err)
	assert.Equal(t, x.Raw(), back.Raw(), "column split/concat must round-trip")

	_, err = tensor.SliceRows(x, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "empty range must error")
	_, err = tensor.SliceCols(x, 0, 5)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

// TestConcat_Mismatch rejects misaligned blocks.
func TestConcat_Mismatch(t *testing.T) {
	a := mustDense(t, []float64{1, 2}, 1, 2)
	b := mustDense(t, []float64{1, 2, 3}, 1, 3)

	_, err := tensor.ConcatRows(a, b)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)

	_, err = tensor.ConcatCols[float64]()
	assert.ErrorIs(t, err, tensor.ErrNilTensor, "no parts must error")
}

// TestPadBottomRight zero-extends and preserves the original block.
func TestPadBottomRight(t *testing.T) {
	x := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	out, err := tensor.PadBottomRight(x, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 3, out.Cols())
	assert.Equal(t, []float64{
		1, 2, 0,
		3, 4, 0,
		0, 0, 0,
	}, out.Raw())

	same, err := tensor.PadBottomRight(x, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, x.Raw(), same.Raw(), "zero padding is a plain copy")

	_, err = tensor.PadBottomRight(x, -1, 0)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestConjTranspose_Real checks the plain transpose path.
func TestConjTranspose_Real(t *testing.T) {
	x := mustDense(t, []float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	out, err := tensor.ConjTranspose(x)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 2, out.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.Raw())
}

// TestConjTranspose_Complex checks that entries are conjugated.
func TestConjTranspose_Complex(t *testing.T) {
	x, err := tensor.FromSlice([]complex128{
		1 + 2i, 3 - 1i,
		0 + 1i, 5,
	}, 2, 2)
	require.NoError(t, err)

	out, err := tensor.ConjTranspose(x)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 - 2i, 0 - 1i, 3 + 1i, 5}, out.Raw())
}

// TestDiagOps covers Diag extraction, diagonal replacement and zeroing, and
// that all three leave the input untouched.
func TestDiagOps(t *testing.T) {
	x := mustDense(t, []float64{
		1, 2,
		3, 4,
	}, 2, 2)

	d, err := tensor.Diag(x)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Rows(), "diagonal is a 1×n row")
	assert.Equal(t, []float64{1, 4}, d.Raw())

	rep, err := tensor.WithDiagFloat(x, []float64{-7, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{-7, 2, 3, 8}, rep.Raw())

	zeroed, err := tensor.WithZeroDiag(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 3, 0}, zeroed.Raw())

	assert.Equal(t, []float64{1, 2, 3, 4}, x.Raw(), "inputs must stay intact")

	rect := mustDense(t, []float64{1, 2}, 1, 2)
	_, err = tensor.Diag(rect)
	assert.ErrorIs(t, err, tensor.ErrNonSquare)
	_, err = tensor.WithDiagFloat(x, []float64{1})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestFrobSq computes per-batch squared norms.
func TestFrobSq(t *testing.T) {
	x := mustDense(t, []float64{
		1, 2, 3, 4, // batch 0: 1+4+9+16 = 30
		0, 0, 0, 5, // batch 1: 25
	}, 2, 2, 2)

	out, err := tensor.FrobSq(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{30, 25}, out, 1e-12)

	c, err := tensor.FromSlice([]complex128{3 + 4i}, 1, 1)
	require.NoError(t, err)
	cn, err := tensor.FrobSq(c)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, cn[0], 1e-12, "|3+4i|² = 25")
}

// TestAllClose exercises the tolerance relation and its guards.
func TestAllClose(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4.00005}, 2, 2)

	ok, err := tensor.AllClose(a, b, 0, 1e-4)
	require.NoError(t, err)
	assert.True(t, ok, "within atol")

	ok, err = tensor.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok, "outside atol")

	_, err = tensor.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, tensor.ErrNaNInf, "NaN tolerance must error")
}
