// SPDX-License-Identifier: MIT

// Package cmatrix: functional configuration for numeric comparisons.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package cmatrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRTol is the relative tolerance used by AllClose-like checks.
	DefaultRTol = 1e-10

	// DefaultATol is the absolute tolerance used by AllClose-like checks.
	DefaultATol = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRTolInvalid = "cmatrix: WithRTol: rtol must be finite, non-negative"
	panicATolInvalid = "cmatrix: WithATol: atol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rtol float64 // >= 0; DefaultRTol
	atol float64 // >= 0; DefaultATol
}

// WithRTol sets the relative tolerance for closeness checks.
// Panics with a stable message when rtol is negative or non-finite.
func WithRTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithATol sets the absolute tolerance for closeness checks.
// Panics with a stable message when atol is negative or non-finite.
func WithATol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicATolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// gatherOptions resolves defaults, then applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{rtol: DefaultRTol, atol: DefaultATol}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
