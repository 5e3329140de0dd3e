// SPDX-License-Identifier: MIT

// Package eigh: functional configuration for the decomposition driver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package eigh

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence and zero-snap threshold. The outer
	// loop stops once off_norm ≤ eps²·frob_norm, and any result entry with
	// magnitude ≤ eps is snapped to exactly zero.
	DefaultEpsilon = 1e-6

	// DefaultMaxIter is the hard cap on outer sweeps per matrix. Exhausting
	// it is NOT an error: Decompose returns its current best estimate.
	DefaultMaxIter = 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "eigh: WithEpsilon: eps must be finite and non-negative"
	panicMaxIterInvalid = "eigh: WithMaxIter: maxIter must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps     float64 // ≥ 0, finite; DefaultEpsilon
	maxIter int     // ≥ 1; DefaultMaxIter
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the convergence/zero-snap threshold eps.
// eps = 0 degenerates to "run the full sweep budget and snap nothing".
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithMaxIter sets the hard sweep budget per matrix.
// Panics with a stable message when maxIter < 1.
func WithMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = maxIter }
}

// gatherOptions resolves defaults then applies the given setters in order.
// Deterministic: later options win on conflict.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
