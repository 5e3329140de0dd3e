package eigh_test

import (
	"fmt"

	"github.com/katalvlaran/spectra/eigh"
	"github.com/katalvlaran/spectra/tensor"
)

// ExampleDecompose diagonalizes the classic 2×2 symmetric matrix
// [[2,1],[1,2]] with spectrum {3, 1}. Eigenvalues come back in descending
// magnitude order; column i of the eigenvector matrix pairs with value i.
func ExampleDecompose() {
	m, _ := tensor.FromSlice([]float64{
		2, 1,
		1, 2,
	}, 2, 2)

	vals, vecs, err := eigh.Decompose(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w := vals.Raw()
	v := vecs.Raw()
	fmt.Printf("eigenvalues: [%g %g]\n", w[0], w[1])
	fmt.Printf("first eigenvector: [%.4f %.4f]\n", v[0], v[2])
	// Output:
	// eigenvalues: [3 1]
	// first eigenvector: [0.7071 0.7071]
}

// ExampleDecompose_batched solves two independent diagonal matrices in one
// call; leading dims of the input form the batch shape.
func ExampleDecompose_batched() {
	m, _ := tensor.FromSlice([]float64{
		5, 0,
		0, -9, // batch element 0
		1, 0,
		0, 2, // batch element 1
	}, 2, 2, 2)

	vals, _, err := eigh.Decompose(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w := vals.Raw()
	fmt.Printf("element 0: [%g %g]\n", w[0], w[1])
	fmt.Printf("element 1: [%g %g]\n", w[2], w[3])
	// Output:
	// element 0: [-9 5]
	// element 1: [2 1]
}

// ExampleDecompose_hermitian shows the complex128 path: a Hermitian matrix
// has a real spectrum even though its eigenvectors are complex.
func ExampleDecompose_hermitian() {
	m, _ := tensor.FromSlice([]complex128{
		2, 1i,
		-1i, 2,
	}, 2, 2)

	vals, _, err := eigh.Decompose(m, eigh.WithEpsilon(1e-8))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w := vals.Raw()
	fmt.Printf("eigenvalues: [%g %g]\n", w[0], w[1])
	// Output:
	// eigenvalues: [3 1]
}
