// SPDX-License-Identifier: MIT
// Package eigh: the rotation solver.
//
// Purpose:
//   - Given the diagonals of the tl/tr/br quadrant blocks, compute for every
//     pivot pair the Jacobi rotation (cosine, sine) that diagonalizes its
//     2×2 pencil, plus the two updated diagonal values.
//   - The solver is pure and elementwise: one independent computation per
//     batch element per diagonal index, no cross-talk, no side effects.
//
// Numeric policy (all guards branch on neutral substitutes, never error):
//   - tr == 0      → phase w := 1 and tau := 0 instead of dividing by zero.
//   - tau tie      → sign(0) = +1, so t = 1/(tau + sign·√(1+tau²)) always
//     takes the cancellation-free branch.
//   - near-diagonal pencil (|tr| ≤ pencilGuard·min(|tl|,|br|)) → t forced to
//     0 so numerical noise cannot drive a spurious rotation.

package eigh

import (
	"math"

	"github.com/katalvlaran/spectra/tensor"
)

// pencilGuard is the relative threshold below which an off-diagonal entry is
// treated as already zero and the pencil as already diagonal.
const pencilGuard = 1e-5

// rotation holds the per-pivot rotation parameters of one round, indexed by
// b*mid+d (batch element b, diagonal position d). The cosine and the updated
// diagonal values are always real; the sine carries the unit-modulus phase
// factor w = conj(tr)/|tr| in the complex case.
type rotation[T tensor.Scalar] struct {
	c     []float64 // rotation cosines
	s     []T       // rotation sines (phase-scaled for complex input)
	sConj []T       // conjugated sines, precomputed once per round
	rt1   []float64 // updated tl diagonal values: tl − t·|tr|
	rt2   []float64 // updated br diagonal values: br + t·|tr|
}

// solveRotations computes the Jacobi rotation for every pivot pair from the
// current tl/tr/br diagonals. bl is not consulted: the pencil is
// symmetric/Hermitian, so bl's diagonal is the conjugate of tr's.
//
// Implementation:
//   - Stage 1: extract the phase factor w and reduce tr to its magnitude,
//     so the remaining computation is purely real.
//   - Stage 2: tau = (br−tl)/(2·|tr|), t from the cancellation-free branch,
//     near-diagonal guard, then c = 1/√(1+t²), s = t·c·w.
//
// Determinism: fixed batch→diagonal loop order; no data-dependent ordering.
// Complexity: Time O(batch·mid), Space O(batch·mid) for the outputs.
func solveRotations[T tensor.Scalar](tl, tr, br *tensor.Dense[T]) rotation[T] {
	mid, batch := tl.Rows(), tl.Batch()
	total := batch * mid
	rot := rotation[T]{
		c:     make([]float64, total),
		s:     make([]T, total),
		sConj: make([]T, total),
		rt1:   make([]float64, total),
		rt2:   make([]float64, total),
	}

	tlRaw, trRaw, brRaw := tl.Raw(), tr.Raw(), br.Raw()
	var (
		b, d, k, diag int     // loop iterators and flat offsets
		mag           float64 // |tr| at the pivot
		a, dd         float64 // real diagonal values of tl and br
		tau, sign, t  float64 // intermediate rotation parameters
		c             float64 // rotation cosine
		w             T       // unit-modulus phase factor of tr
	)
	for b = 0; b < batch; b++ {
		for d = 0; d < mid; d++ {
			k = b*mid + d
			diag = (b*mid+d)*mid + d

			// Phase extraction: w = conj(tr)/|tr| when tr ≠ 0, else 1.
			// After this step tr participates only through its magnitude.
			mag = tensor.Abs(trRaw[diag])
			if mag > 0 {
				w = tensor.Conj(trRaw[diag]) / tensor.FromFloat[T](mag)
			} else {
				w = tensor.FromFloat[T](1)
			}

			// Hermitian inputs carry real diagonals; read the real parts.
			a = tensor.Re(tlRaw[diag])
			dd = tensor.Re(brRaw[diag])

			// tau = (br − tl) / (2·tr), with 0 substituted at tr == 0.
			tau = 0
			if mag != 0 {
				tau = (dd - a) / (2 * mag)
			}

			// t = 1/(tau + sign(tau)·√(1+tau²)), sign(0) = +1. Adding the
			// equal-signed root keeps the denominator away from zero.
			sign = 1
			if tau < 0 {
				sign = -1
			}
			t = 1 / (tau + sign*math.Sqrt(1+tau*tau))

			// Near-diagonal pencil: force a no-op rotation.
			if mag <= pencilGuard*math.Min(math.Abs(a), math.Abs(dd)) {
				t = 0
			}

			c = 1 / math.Sqrt(1+t*t)
			rot.c[k] = c
			rot.s[k] = tensor.FromFloat[T](t*c) * w
			rot.sConj[k] = tensor.Conj(rot.s[k])
			rot.rt1[k] = a - t*mag
			rot.rt2[k] = dd + t*mag
		}
	}
	return rot
}
