// Package spectra is an in-memory toolkit for batched dense linear algebra
// with a focus on spectral decompositions — symmetric and Hermitian
// eigenproblems solved by data-parallel Jacobi sweeps.
//
// 🚀 What is spectra?
//
//	A modern, zero-logging, deterministic library that brings together:
//		• Batched storage: row-major Dense arrays over float64 or complex128,
//		  with an arbitrary leading batch shape handled uniformly
//		• Whole-array kernels: elementwise arithmetic, row/column broadcasts,
//		  slicing, concatenation, diagonal surgery, conjugate transpose
//		• Spectral solver: a parallel-order block-Jacobi eigendecomposition
//		  (eigh) that diagonalizes all pivot pairs of a sweep at once
//
// ✨ Why choose spectra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, fixed loop orders, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Batch-native – one call decomposes a single matrix or a stack of them
//
// Under the hood, everything is organized under two subpackages:
//
//	tensor/ — batched Dense storage and the whole-array kernel set
//	eigh/   — symmetric/Hermitian eigendecomposition via block-Jacobi sweeps
//
// Quick sketch:
//
//	    A = V·diag(w)·Vᴴ
//
//	eigh.Decompose returns w (descending by magnitude) and V (columns are
//	eigenvectors, co-indexed with w) for real symmetric or complex Hermitian
//	input, over any leading batch shape.
//
// Dive into the runnable examples in each package's example_test.go.
//
//	go get github.com/katalvlaran/spectra
package spectra
