// SPDX-License-Identifier: MIT

package monomial

import (
	"math"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/sym"
)

// ErrEmpty indicates a matrix resummation without any monomial (the shape
// is unknown).
var ErrEmpty = errors.New("monomial: empty matrix decomposition")

// DefaultExactTolerance is the relative tolerance of WithExactForms.
const DefaultExactTolerance = 1e-9

// Option configures Prettify.
type Option func(*Options)

// Options holds the resolved prettify configuration.
type Options struct {
	decimals int // <0 disables rounding
	zeroAtol float64
	zeroSet  bool
	exact    bool
	exactTol float64
}

// WithDecimals rounds real and imaginary parts to n decimal digits.
// Panics when n is negative.
func WithDecimals(n int) Option {
	if n < 0 {
		panic("monomial: WithDecimals: n must be >= 0")
	}

	return func(o *Options) { o.decimals = n }
}

// WithZeroAtol zeroes real or imaginary parts whose magnitude is at most
// atol. Panics when atol is negative or not finite.
func WithZeroAtol(atol float64) Option {
	if atol < 0 || math.IsNaN(atol) || math.IsInf(atol, 0) {
		panic("monomial: WithZeroAtol: atol must be finite, non-negative")
	}

	return func(o *Options) {
		o.zeroAtol = atol
		o.zeroSet = true
	}
}

// WithExactForms snaps real and imaginary parts to (p/q)·√n where one is
// within DefaultExactTolerance (sqrt(3)/2 instead of 0.8660254037844386).
func WithExactForms() Option {
	return func(o *Options) {
		o.exact = true
		if o.exactTol == 0 {
			o.exactTol = DefaultExactTolerance
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{decimals: -1}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ExactForm recognises v ≈ (p/q)·√n (q ≤ 12, square-free n ≤ 30) within
// tol relative to max(1, |v|) and returns the exact value and its text.
func ExactForm(v, tol float64) (float64, string, bool) {
	return sym.ExactForm(v, tol)
}

// cleanPart applies rounding, zeroing and exact snapping, in that order.
func cleanPart(v float64, o Options) float64 {
	if o.decimals >= 0 {
		p := math.Pow(10, float64(o.decimals))
		v = math.Round(v*p) / p
	}
	if o.zeroSet && math.Abs(v) <= o.zeroAtol {
		v = 0
	}
	if o.exact {
		if exact, _, ok := sym.ExactForm(v, o.exactTol); ok {
			v = exact
		}
	}

	return v
}

// Prettify cleans the numeric coefficients of e and resums it.
//
// Implementation:
//   - Stage 1: Decompose over all symbols, so every coefficient is numeric.
//   - Stage 2: per coefficient, round to the requested decimals, zero real
//     and imaginary parts within the absolute tolerance, snap to exact forms.
//   - Stage 3: resum Σ monomial·coefficient.
func Prettify(e sym.Expr, opts ...Option) sym.Expr {
	o := gatherOptions(opts...)
	dec := Decompose(e)

	parts := make([]sym.Expr, 0, len(dec))
	for _, k := range dec.Keys() {
		ent := dec[k]
		c, _ := ent.Coeff.AsConst() // numeric: every symbol is a generator
		c = complex(cleanPart(real(c), o), cleanPart(imag(c), o))
		if c == 0 {
			continue
		}
		parts = append(parts, ent.Monomial.Scale(c))
	}

	return sym.Sum(parts...)
}

// PrettifyMatrix applies Prettify to every entry.
func PrettifyMatrix(m *sym.Matrix, opts ...Option) (*sym.Matrix, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrConfiguration, "monomial: nil matrix")
	}

	return m.Map(func(_, _ int, e sym.Expr) (sym.Expr, error) { return Prettify(e, opts...), nil })
}
