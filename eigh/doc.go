// Package eigh computes eigenvalues and eigenvectors of batches of real
// symmetric or complex Hermitian matrices via parallel-order block Jacobi.
//
// 🚀 What is block Jacobi?
//
//	The classical Jacobi method zeroes one off-diagonal pair per rotation.
//	The parallel-order variant splits the matrix into four quadrants and
//	zeroes mid = ⌈n/2⌉ independent pivot pencils per round, re-pairing
//	indices between rounds with a round-robin permutation so that one
//	sweep of N−1 rounds touches every pair.  The whole batch advances in
//	lock-step, which is exactly the shape accelerators and vectorized
//	loops want.
//
// ✨ Key features:
//   - one generic entry point, Decompose, for float64 and complex128
//   - batched: any leading dims are independent matrices, solved together
//   - pure functional sweeps: the input matrix is never mutated
//   - best-effort budget: hitting max iterations returns the current
//     estimate, never an error
//   - eigenvalues sorted by descending magnitude; near-zeros snapped to 0
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/spectra/eigh"
//	  "github.com/katalvlaran/spectra/tensor"
//	)
//
//	a, _ := tensor.FromSlice([]float64{2, 1, 1, 2}, 2, 2)
//	vals, vecs, err := eigh.Decompose(a,
//	  eigh.WithEpsilon(1e-8),
//	  eigh.WithMaxIter(30),
//	)
//	// vals ≈ [3, 1]; columns of vecs are the matching eigenvectors.
//
// Only squareness is validated: symmetry/Hermitianity of the input is the
// caller's contract, as checking it costs as much as a sweep.
//
// Performance:
//
//   - Time:   O(iter·batch·N³)
//   - Memory: O(batch·N²) fresh per sweep
//
// See example_test.go for runnable walkthroughs.
package eigh
