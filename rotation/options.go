// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

// DefaultTolerance bounds |det R − 1| and |RᵀR − I| entry-wise.
const DefaultTolerance = 1e-8

// Option configures Validate, Rotate and RotateMatrix.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	tol      float64
	actOn    [][3]sym.Symbol
	spinOps  spin.Operators
	withSpin bool
}

// WithTolerance sets the validation tolerance. Panics when tol is not a
// finite positive number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("rotation: WithTolerance: tol must be finite and > 0")
	}

	return func(o *Options) { o.tol = tol }
}

// WithActOn replaces the default operator triples (momentum, position,
// magnetic field) that are substituted v ↦ R·v.
func WithActOn(triples ...[3]sym.Symbol) Option {
	cp := make([][3]sym.Symbol, len(triples))
	copy(cp, triples)

	return func(o *Options) { o.actOn = cp }
}

// WithSpinOperators makes RotateMatrix conjugate the substituted matrix by
// U = exp(i·n·S) built from ops.
func WithSpinOperators(ops spin.Operators) Option {
	return func(o *Options) {
		o.spinOps = ops
		o.withSpin = true
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:   DefaultTolerance,
		actOn: [][3]sym.Symbol{symbols.Momentum, symbols.Position, symbols.Magnetic},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
