// SPDX-License-Identifier: MIT
// Package eigh: the permutation network.
//
// Purpose:
//   - After each rotation round, re-index block entries so that successive
//     rounds pair up previously non-adjacent indices — the classical
//     round-robin tournament schedule of parallel Jacobi methods.
//   - Position 0 of the top block stays fixed; the remaining 2k−1 positions
//     form a single cycle, so after 2k−1 rounds every index is back in its
//     home slot and every off-diagonal pair has been pivoted at least once.
//
// The row and column variants apply the same index rule along different
// axes. Rows permute vertical block pairs (tl,bl), (tr,br) and the
// eigenvector accumulator; columns permute horizontal pairs (tl,tr), (bl,br).
// The accumulator gets the ROW permutation only: it tracks cumulative
// rotations applied from the left, never column re-indexing of the data.

package eigh

import "github.com/katalvlaran/spectra/tensor"

// Permutation op tags for error wrapping.
const (
	opPermuteRows = "permuteRowsInCol"
	opPermuteCols = "permuteColsInRow"
)

// permuteRowsInCol rotates rows between a (top, bottom) block pair of height
// k according to the tournament schedule:
//
//	k = 1: identity
//	k = 2: top' = [top[0], bottom[0]]           bottom' = [bottom[1], top[1]]
//	k > 2: top' = [top[0], bottom[0], top[1:k-1]] bottom' = [bottom[1:], top[k-1]]
//
// The k-switch is explicit and resolved from the block dimension alone.
// Complexity: Time O(batch·k·cols), Space same (fresh blocks for k ≥ 2).
func permuteRowsInCol[T tensor.Scalar](top, bottom *tensor.Dense[T]) (*tensor.Dense[T], *tensor.Dense[T], error) {
	k := top.Rows()
	switch {
	case k == 1:
		// A single row pair has nothing to rotate.
		return top, bottom, nil

	case k == 2:
		t0, err := tensor.SliceRows(top, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		t1, err := tensor.SliceRows(top, 1, 2)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		b0, err := tensor.SliceRows(bottom, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		b1, err := tensor.SliceRows(bottom, 1, 2)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		topOut, err := tensor.ConcatRows(t0, b0)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		bottomOut, err := tensor.ConcatRows(b1, t1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		return topOut, bottomOut, nil

	default:
		t0, err := tensor.SliceRows(top, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		tMid, err := tensor.SliceRows(top, 1, k-1) // rows 1..k-2 keep order
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		tLast, err := tensor.SliceRows(top, k-1, k)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		b0, err := tensor.SliceRows(bottom, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		bRest, err := tensor.SliceRows(bottom, 1, k)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		topOut, err := tensor.ConcatRows(t0, b0, tMid)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		bottomOut, err := tensor.ConcatRows(bRest, tLast)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteRows, err)
		}
		return topOut, bottomOut, nil
	}
}

// permuteColsInRow is the column analogue of permuteRowsInCol, applied to a
// (left, right) block pair of width k with the identical index rule.
// Complexity: Time O(batch·rows·k), Space same (fresh blocks for k ≥ 2).
func permuteColsInRow[T tensor.Scalar](left, right *tensor.Dense[T]) (*tensor.Dense[T], *tensor.Dense[T], error) {
	k := left.Cols()
	switch {
	case k == 1:
		return left, right, nil

	case k == 2:
		l0, err := tensor.SliceCols(left, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		l1, err := tensor.SliceCols(left, 1, 2)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		r0, err := tensor.SliceCols(right, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		r1, err := tensor.SliceCols(right, 1, 2)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		leftOut, err := tensor.ConcatCols(l0, r0)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		rightOut, err := tensor.ConcatCols(r1, l1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		return leftOut, rightOut, nil

	default:
		l0, err := tensor.SliceCols(left, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		lMid, err := tensor.SliceCols(left, 1, k-1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		lLast, err := tensor.SliceCols(left, k-1, k)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		r0, err := tensor.SliceCols(right, 0, 1)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		rRest, err := tensor.SliceCols(right, 1, k)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		leftOut, err := tensor.ConcatCols(l0, r0, lMid)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		rightOut, err := tensor.ConcatCols(rRest, lLast)
		if err != nil {
			return nil, nil, eighErrorf(opPermuteCols, err)
		}
		return leftOut, rightOut, nil
	}
}
