// SPDX-License-Identifier: MIT
// Package eigh: the convergence monitor.
//
// sqNorm and offNorm are recomputed once per outer iteration, never inside a
// round: inner rounds do not consult convergence. The off-diagonal norm is
// the full norm with the diagonals of tl and br removed — the diagonals of
// tr and bl sit off the main diagonal of the assembled matrix by
// construction and therefore always count.

package eigh

import "github.com/katalvlaran/spectra/tensor"

const opNorms = "norms"

// norms returns, per batch element, the squared Frobenius norm of the full
// working matrix and of its off-diagonal part.
// Complexity: Time O(batch·mid²), Space O(batch).
func norms[T tensor.Scalar](st blocks[T]) (frob, off []float64, err error) {
	var part []float64
	frob = make([]float64, st.tl.Batch())
	for _, blk := range []*tensor.Dense[T]{st.tl, st.tr, st.bl, st.br} {
		part, err = tensor.FrobSq(blk)
		if err != nil {
			return nil, nil, eighErrorf(opNorms, err)
		}
		for b := range frob {
			frob[b] += part[b]
		}
	}

	// off = frob minus the main-diagonal contributions of tl and br.
	off = make([]float64, len(frob))
	copy(off, frob)
	mid := st.tl.Rows()
	tlRaw, brRaw := st.tl.Raw(), st.br.Raw()
	var b, d, diag int
	for b = 0; b < st.tl.Batch(); b++ {
		for d = 0; d < mid; d++ {
			diag = (b*mid+d)*mid + d
			off[b] -= tensor.AbsSq(tlRaw[diag]) + tensor.AbsSq(brRaw[diag])
		}
	}

	// Guard against tiny negative residue from float subtraction.
	for b = range off {
		if off[b] < 0 {
			off[b] = 0
		}
	}
	return frob, off, nil
}

// unconverged reports whether any batch element still violates
// off ≤ eps²·frob. Converged elements keep sweeping harmlessly: their
// pencils hit the near-diagonal guard and rotate by identity.
func unconverged(off, frob []float64, eps float64) bool {
	eps2 := eps * eps
	for b := range off {
		if off[b] > eps2*frob[b] {
			return true
		}
	}
	return false
}
