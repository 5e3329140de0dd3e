// SPDX-License-Identifier: MIT
// Package eigh: the decomposition driver and public facade.

package eigh

import (
	"math"
	"sort"

	"github.com/katalvlaran/spectra/tensor"
)

const (
	opDecompose = "Decompose"
	opAssemble  = "assemble"
)

// Decompose computes the eigenvalues and eigenvectors of a batch of real
// symmetric (float64) or complex Hermitian (complex128) matrices using the
// parallel-order block-Jacobi method: every round diagonalizes all pivot
// pencils at once, and a fixed permutation network re-pairs indices between
// rounds so that one sweep of N−1 rounds addresses every off-diagonal pair.
//
// Implementation:
//   - Stage 1: validate (non-nil, square trailing dims); resolve options;
//     take the trivial n == 1 shortcut.
//   - Stage 2: partition into mid×mid quadrants (zero-padding odd n),
//     initialize the accumulator to identity, run sweeps until every batch
//     element satisfies off_norm ≤ eps²·frob_norm or the sweep budget runs
//     out, then recombine, trim padding, sort and snap.
//
// Behavior highlights:
//   - Pure functional iteration: each sweep builds fresh blocks; the input
//     matrix is never mutated.
//   - Best-effort contract: exhausting maxIter is NOT an error — the current
//     estimate is returned silently.
//   - Ordering: eigenvalues descend by absolute magnitude. Ties keep their
//     pre-sort order (stable sort over the diagonal of the converged matrix,
//     tl positions before br positions).
//   - Snap-to-zero: any eigenvalue or eigenvector entry with magnitude ≤ eps
//     is returned as exactly zero.
//
// Inputs:
//   - m: square in its last two dims; any leading dims form the batch shape
//     and are handled independently with identical eps/maxIter.
//   - opts: WithEpsilon (default 1e-6), WithMaxIter (default 15).
//
// Returns:
//   - eigenvalues: Dense[float64] of shape batch + [1, n] — one descending
//     1×n row per batch element (Hermitian input ⇒ real spectrum).
//   - eigenvectors: Dense[T] of shape batch + [n, n]; column i pairs with
//     eigenvalue i, so A ≈ V·diag(w)·Vᴴ and Vᴴ·V ≈ I within tolerance.
//
// Errors:
//   - ErrNilInput  (nil matrix).
//   - ErrNonSquare (trailing dims differ) — raised before any partitioning.
//
// Determinism:
//   - Fixed round/sweep ordering and fixed batch→index loops; identical
//     inputs produce identical outputs.
//
// Complexity:
//   - Time O(iter·N·batch·N²) = O(iter·batch·N³) per call, Space O(batch·N²).
func Decompose[T tensor.Scalar](m *tensor.Dense[T], opts ...Option) (*tensor.Dense[float64], *tensor.Dense[T], error) {
	if m == nil {
		return nil, nil, eighErrorf(opDecompose, ErrNilInput)
	}
	if m.Rows() != m.Cols() {
		return nil, nil, eighErrorf(opDecompose, ErrNonSquare)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	batch := m.Batch()
	shape := m.Shape()
	batchShape := shape[:len(shape)-2]

	// Trivial case: a 1×1 matrix is its own spectrum; no iteration needed.
	if n == 1 {
		vals, err := tensor.NewDense[float64](valueShape(batchShape, 1)...)
		if err != nil {
			return nil, nil, eighErrorf(opDecompose, err)
		}
		vecs, err := tensor.NewDense[T](vectorShape(batchShape, 1)...)
		if err != nil {
			return nil, nil, eighErrorf(opDecompose, err)
		}
		raw := m.Raw()
		one := tensor.FromFloat[T](1)
		for b := 0; b < batch; b++ {
			vals.Raw()[b] = tensor.Re(raw[b])
			vecs.Raw()[b] = one
		}
		return vals, vecs, nil
	}

	// Partition into four mid×mid quadrants, zero-padding odd n so the
	// blocks tile the working matrix exactly.
	work := m
	if n%2 == 1 {
		padded, err := tensor.PadBottomRight(m, 1, 1)
		if err != nil {
			return nil, nil, eighErrorf(opDecompose, err)
		}
		work = padded
	}
	full := work.Rows() // N = 2·mid
	mid := full / 2

	st, err := partition(work, mid, batchShape)
	if err != nil {
		return nil, nil, eighErrorf(opDecompose, err)
	}

	// Outer loop: sweep until every batch element is converged or the
	// budget is spent. Non-convergence is not an error by contract.
	frob, off, err := norms(st)
	if err != nil {
		return nil, nil, eighErrorf(opDecompose, err)
	}
	for iter := 0; iter < o.maxIter && unconverged(off, frob, o.eps); iter++ {
		if st, err = sweep(st); err != nil {
			return nil, nil, eighErrorf(opDecompose, err)
		}
		if frob, off, err = norms(st); err != nil {
			return nil, nil, eighErrorf(opDecompose, err)
		}
	}

	return assemble(st, o, n, full, mid, batch, batchShape)
}

// valueShape returns batchShape + [1, n]: eigenvalues are one row per batch
// element.
func valueShape(batchShape []int, n int) []int {
	out := make([]int, 0, len(batchShape)+2)
	out = append(out, batchShape...)
	return append(out, 1, n)
}

// vectorShape returns batchShape + [n, n].
func vectorShape(batchShape []int, n int) []int {
	out := make([]int, 0, len(batchShape)+2)
	out = append(out, batchShape...)
	return append(out, n, n)
}

// partition slices the working matrix into its four quadrants and builds the
// identity accumulator split the same way (vtl = vbr = I, vtr = vbl = 0).
func partition[T tensor.Scalar](work *tensor.Dense[T], mid int, batchShape []int) (blocks[T], error) {
	full := work.Rows()
	topRows, err := tensor.SliceRows(work, 0, mid)
	if err != nil {
		return blocks[T]{}, err
	}
	botRows, err := tensor.SliceRows(work, mid, full)
	if err != nil {
		return blocks[T]{}, err
	}
	var st blocks[T]
	if st.tl, err = tensor.SliceCols(topRows, 0, mid); err != nil {
		return blocks[T]{}, err
	}
	if st.tr, err = tensor.SliceCols(topRows, mid, full); err != nil {
		return blocks[T]{}, err
	}
	if st.bl, err = tensor.SliceCols(botRows, 0, mid); err != nil {
		return blocks[T]{}, err
	}
	if st.br, err = tensor.SliceCols(botRows, mid, full); err != nil {
		return blocks[T]{}, err
	}

	blockShape := vectorShape(batchShape, mid)
	if st.vtl, err = tensor.Identity[T](blockShape...); err != nil {
		return blocks[T]{}, err
	}
	if st.vbr, err = tensor.Identity[T](blockShape...); err != nil {
		return blocks[T]{}, err
	}
	if st.vtr, err = tensor.Zeros[T](blockShape...); err != nil {
		return blocks[T]{}, err
	}
	if st.vbl, err = tensor.Zeros[T](blockShape...); err != nil {
		return blocks[T]{}, err
	}
	return st, nil
}

// assemble recombines the converged blocks into the final (eigenvalues,
// eigenvectors) pair: diag(tl) ⧺ diag(br) for the values, the conjugate
// transpose of the accumulator for the vectors, padding trimmed, both sorted
// by descending magnitude with a stable tie-break, near-zeros snapped.
func assemble[T tensor.Scalar](st blocks[T], o Options, n, full, mid, batch int, batchShape []int) (*tensor.Dense[float64], *tensor.Dense[T], error) {
	// Eigenvalues in home-position order: tl diagonal, then br diagonal.
	// The sweep's round count equals the permutation cycle length, so every
	// index is back in its original slot here.
	wAll := make([]float64, batch*full)
	tlRaw, brRaw := st.tl.Raw(), st.br.Raw()
	var b, d, i, k int
	for b = 0; b < batch; b++ {
		for d = 0; d < mid; d++ {
			diag := (b*mid+d)*mid + d
			wAll[b*full+d] = tensor.Re(tlRaw[diag])
			wAll[b*full+mid+d] = tensor.Re(brRaw[diag])
		}
	}

	// Eigenvector matrix: Q = Vᴴ of the assembled accumulator blocks.
	top, err := tensor.ConcatCols(st.vtl, st.vtr)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}
	bot, err := tensor.ConcatCols(st.vbl, st.vbr)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}
	vfull, err := tensor.ConcatRows(top, bot)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}
	q, err := tensor.ConjTranspose(vfull)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}

	// Trim the padding row/column back to the caller's n.
	if full != n {
		if q, err = tensor.SliceRows(q, 0, n); err != nil {
			return nil, nil, eighErrorf(opAssemble, err)
		}
		if q, err = tensor.SliceCols(q, 0, n); err != nil {
			return nil, nil, eighErrorf(opAssemble, err)
		}
	}

	vals, err := tensor.NewDense[float64](valueShape(batchShape, n)...)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}
	vecs, err := tensor.NewDense[T](vectorShape(batchShape, n)...)
	if err != nil {
		return nil, nil, eighErrorf(opAssemble, err)
	}

	// Per batch element: stable argsort by descending |w|, then write the
	// permuted, snapped values and vector columns.
	qRaw, valsRaw, vecsRaw := q.Raw(), vals.Raw(), vecs.Raw()
	order := make([]int, n)
	var zero T
	for b = 0; b < batch; b++ {
		wb := wAll[b*full : b*full+n] // padded tail (if any) is excluded
		for k = range order {
			order[k] = k
		}
		// Stable: equal magnitudes keep their pre-sort (tl-then-br) order.
		sort.SliceStable(order, func(x, y int) bool {
			return math.Abs(wb[order[x]]) > math.Abs(wb[order[y]])
		})
		for k = 0; k < n; k++ {
			src := order[k]
			v := wb[src]
			if math.Abs(v) <= o.eps {
				v = 0 // snap near-zero eigenvalues exactly
			}
			valsRaw[b*n+k] = v
			for i = 0; i < n; i++ {
				e := qRaw[(b*n+i)*n+src]
				if tensor.Abs(e) <= o.eps {
					e = zero // snap near-zero vector entries exactly
				}
				vecsRaw[(b*n+i)*n+k] = e
			}
		}
	}
	return vals, vecs, nil
}
