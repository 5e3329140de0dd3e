package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/spectra/tensor"
)

// ExampleFromSlice builds a 2×2 matrix from row-major data and reads it back.
func ExampleFromSlice() {
	m, _ := tensor.FromSlice([]float64{
		1, 2,
		3, 4,
	}, 2, 2)

	v, _ := m.At(0, 1, 0)
	fmt.Println("rows:", m.Rows(), "cols:", m.Cols())
	fmt.Println("m[1][0] =", v)
	fmt.Print(m)
	// Output:
	// rows: 2 cols: 2
	// m[1][0] = 3
	// [1, 2]
	// [3, 4]
}

// ExampleConjTranspose transposes and conjugates a complex matrix.
func ExampleConjTranspose() {
	m, _ := tensor.FromSlice([]complex128{
		1 + 2i, 3,
		0, 4 - 1i,
	}, 2, 2)

	h, _ := tensor.ConjTranspose(m)
	v, _ := h.At(0, 0, 0)
	fmt.Println(v)
	// Output:
	// (1-2i)
}
