// SPDX-License-Identifier: MIT
// Package eigh: the sweep engine.
//
// Purpose:
//   - Drive one full sweep of N−1 rotation rounds over the quadrant blocks
//     (N = 2·mid, the padded working dimension), so that every off-diagonal
//     pair is brought to a pivot position at least once per sweep.
//   - Keep every round a pure functional update: all four quadrant blocks
//     (and the accumulator blocks) of round r+1 are built from round r's
//     blocks only. No in-place writes, hence no read-after-write hazards
//     between the four independent quadrant updates.
//
// Rotation application (per round, per pivot pair p = top index, q = bottom):
//
//	rows:    row_p' = c·row_p − s̄·row_q      row_q' = s·row_p + c·row_q
//	columns: col_p' = c·col_p − s·col_q      col_q' = s̄·col_p + c·col_q
//
// In block form the row step mixes vertical pairs (tl,bl), (tr,br) with c/s
// broadcast per row, and the column step mixes horizontal pairs (tl,tr),
// (bl,br) with c/s broadcast per column. The eigenvector accumulator gets
// the row step only (it collects rotations applied from the left).

package eigh

import "github.com/katalvlaran/spectra/tensor"

// Sweep-engine op tags for error wrapping.
const (
	opRound     = "round"
	opSweep     = "sweep"
	opRowRotate = "rotateRowPair"
	opColRotate = "rotateColPair"
)

// blocks is the full per-iteration state: the four quadrant blocks of the
// working matrix and the four blocks of the eigenvector accumulator. All
// eight share the shape batch×mid×mid.
type blocks[T tensor.Scalar] struct {
	tl, tr, bl, br     *tensor.Dense[T] // working matrix quadrants
	vtl, vtr, vbl, vbr *tensor.Dense[T] // accumulator quadrants (orthogonal/unitary)
}

// rotateRowPair applies the row half of the rotation to a vertical block
// pair: top' = c∘top − s̄∘bottom, bottom' = s∘top + c∘bottom, where ∘ scales
// row i by the factor at pivot index i. Inputs are never mutated.
func rotateRowPair[T tensor.Scalar](top, bottom *tensor.Dense[T], rot rotation[T]) (*tensor.Dense[T], *tensor.Dense[T], error) {
	cTop, err := tensor.ScaleRowsFloat(top, rot.c)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	sBottom, err := tensor.ScaleRows(bottom, rot.sConj)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	topOut, err := tensor.Sub(cTop, sBottom)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	sTop, err := tensor.ScaleRows(top, rot.s)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	cBottom, err := tensor.ScaleRowsFloat(bottom, rot.c)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	bottomOut, err := tensor.Add(sTop, cBottom)
	if err != nil {
		return nil, nil, eighErrorf(opRowRotate, err)
	}
	return topOut, bottomOut, nil
}

// rotateColPair applies the column half of the rotation to a horizontal
// block pair: left' = left∘c − right∘s, right' = left∘s̄ + right∘c, where ∘
// scales column j by the factor at pivot index j. Inputs are never mutated.
func rotateColPair[T tensor.Scalar](left, right *tensor.Dense[T], rot rotation[T]) (*tensor.Dense[T], *tensor.Dense[T], error) {
	cLeft, err := tensor.ScaleColsFloat(left, rot.c)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	sRight, err := tensor.ScaleCols(right, rot.s)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	leftOut, err := tensor.Sub(cLeft, sRight)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	sLeft, err := tensor.ScaleCols(left, rot.sConj)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	cRight, err := tensor.ScaleColsFloat(right, rot.c)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	rightOut, err := tensor.Add(sLeft, cRight)
	if err != nil {
		return nil, nil, eighErrorf(opColRotate, err)
	}
	return leftOut, rightOut, nil
}

// round executes one rotation round against a single consistent snapshot st:
//  1. rotation parameters from the current tl/tr/br diagonals;
//  2. row rotation of the vertical quadrant pairs;
//  3. column rotation of the horizontal quadrant pairs;
//  4. pencil results onto the diagonals (rt1→tl, rt2→br, zero→tr/bl);
//  5. permutation network: rows then columns for the data, rows only for
//     the accumulator;
//  6. row rotation of the accumulator with the conjugated sine.
//
// Returns a fresh state; st is left untouched.
func round[T tensor.Scalar](st blocks[T]) (blocks[T], error) {
	rot := solveRotations(st.tl, st.tr, st.br)

	// Rows: mix the top and bottom halves of the working matrix.
	tl, bl, err := rotateRowPair(st.tl, st.bl, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	tr, br, err := rotateRowPair(st.tr, st.br, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}

	// Columns: mix the left and right halves of the row-rotated matrix.
	tl, tr, err = rotateColPair(tl, tr, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	bl, br, err = rotateColPair(bl, br, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}

	// Pencil results: the rotated pair is diagonal by construction, so the
	// analytic values replace whatever numeric noise the rotation left.
	tl, err = tensor.WithDiagFloat(tl, rot.rt1)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	br, err = tensor.WithDiagFloat(br, rot.rt2)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	tr, err = tensor.WithZeroDiag(tr)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	bl, err = tensor.WithZeroDiag(bl)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}

	// Tournament schedule: rows between vertical pairs, columns between
	// horizontal pairs — the same index rule along both axes.
	tl, bl, err = permuteRowsInCol(tl, bl)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	tr, br, err = permuteRowsInCol(tr, br)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	tl, tr, err = permuteColsInRow(tl, tr)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	bl, br, err = permuteColsInRow(bl, br)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}

	// Accumulator: the same row rotation and row permutation, nothing else.
	vtl, vbl, err := rotateRowPair(st.vtl, st.vbl, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	vtr, vbr, err := rotateRowPair(st.vtr, st.vbr, rot)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	vtl, vbl, err = permuteRowsInCol(vtl, vbl)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}
	vtr, vbr, err = permuteRowsInCol(vtr, vbr)
	if err != nil {
		return blocks[T]{}, eighErrorf(opRound, err)
	}

	return blocks[T]{tl: tl, tr: tr, bl: bl, br: br, vtl: vtl, vtr: vtr, vbl: vbl, vbr: vbr}, nil
}

// sweep runs N−1 strictly sequential rounds (N = 2·mid). The round count
// matches the cycle length of the permutation network, so block entries are
// back in their home slots when the sweep completes.
func sweep[T tensor.Scalar](st blocks[T]) (blocks[T], error) {
	rounds := 2*st.tl.Rows() - 1
	var err error
	for r := 0; r < rounds; r++ { // round r+1 depends on round r's output
		st, err = round(st)
		if err != nil {
			return blocks[T]{}, eighErrorf(opSweep, err)
		}
	}
	return st, nil
}
