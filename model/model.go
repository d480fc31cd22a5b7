// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/rotation"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
)

// Model is a continuum Hamiltonian together with the spin operators of its
// basis. Models are immutable; Rotate and Prettify return new models.
type Model struct {
	h       *sym.Matrix
	ops     spin.Operators
	hasSpin bool
}

// Option configures New.
type Option func(*options)

type options struct {
	spins    []float64
	ops      spin.Operators
	spinsSet bool
	opsSet   bool
}

// WithSpins builds the spin operators from per-subsystem spins
// (spin.Composite; a negative entry uses the hole convention).
func WithSpins(spins ...float64) Option {
	cp := append([]float64(nil), spins...)

	return func(o *options) { o.spins, o.spinsSet = cp, true }
}

// WithSpinOperators attaches explicit spin operators.
func WithSpinOperators(ops spin.Operators) Option {
	return func(o *options) { o.ops, o.opsSet = ops, true }
}

// New wraps h. Spin operators are optional; without them Rotate only
// substitutes symbols.
//
// Errors:
//   - errors.ErrConfiguration when both WithSpins and WithSpinOperators are
//     given, or when the operators are not of shape (3, n, n) for an n×n h.
//   - errors.ErrDomain for invalid spins.
func New(h *sym.Matrix, opts ...Option) (*Model, error) {
	if h == nil {
		return nil, errors.Wrap(errors.ErrConfiguration, "model: nil Hamiltonian")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.spinsSet && o.opsSet {
		return nil, errors.Wrap(errors.ErrConfiguration, "model: spins and spin operators are mutually exclusive")
	}

	m := &Model{h: h}
	switch {
	case o.spinsSet:
		ops, err := spin.Composite(o.spins)
		if err != nil {
			return nil, err
		}
		m.ops, m.hasSpin = ops, true
	case o.opsSet:
		m.ops, m.hasSpin = o.ops, true
	}

	if m.hasSpin {
		r, c := h.Shape()
		for i, s := range m.ops {
			if s == nil || s.Rows() != r || s.Cols() != c {
				return nil, errors.Wrapf(errors.ErrConfiguration,
					"model: spin operator %d must have shape (%d, %d)", i, r, c)
			}
		}
	}

	return m, nil
}

// Hamiltonian returns the symbolic Hamiltonian.
func (m *Model) Hamiltonian() *sym.Matrix { return m.h }

// SpinOperators returns the spin operators and whether any are attached.
func (m *Model) SpinOperators() (spin.Operators, bool) { return m.ops, m.hasSpin }

// RotateOption configures Model.Rotate.
type RotateOption func(*rotateOptions)

type rotateOptions struct {
	rot    []rotation.Option
	noSpin bool
}

// WithActOn selects the operator triples substituted v ↦ R·v.
func WithActOn(triples ...[3]sym.Symbol) RotateOption {
	return func(o *rotateOptions) { o.rot = append(o.rot, rotation.WithActOn(triples...)) }
}

// WithRotationTolerance sets the tolerance of the rotation check.
func WithRotationTolerance(tol float64) RotateOption {
	opt := rotation.WithTolerance(tol)

	return func(o *rotateOptions) { o.rot = append(o.rot, opt) }
}

// WithoutSpin skips the U·H·U† spin conjugation.
func WithoutSpin() RotateOption {
	return func(o *rotateOptions) { o.noSpin = true }
}

// Rotate returns the model rotated by r. Symbols are substituted first;
// then, when spin operators are attached and WithoutSpin is not given,
// the Hamiltonian is conjugated with exp(i n·S).
func (m *Model) Rotate(r rotation.Matrix, opts ...RotateOption) (*Model, error) {
	var o rotateOptions
	for _, opt := range opts {
		opt(&o)
	}
	rot := o.rot
	if m.hasSpin && !o.noSpin {
		rot = append(rot, rotation.WithSpinOperators(m.ops))
	}

	h, err := rotation.RotateMatrix(m.h, r, rot...)
	if err != nil {
		return nil, errors.Wrap(err, "model: rotate")
	}
	out := *m
	out.h = h

	return &out, nil
}

// Prettify returns the model with a cleaned-up Hamiltonian
// (monomial.PrettifyMatrix).
func (m *Model) Prettify(opts ...monomial.Option) (*Model, error) {
	h, err := monomial.PrettifyMatrix(m.h, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "model: prettify")
	}
	out := *m
	out.h = h

	return &out, nil
}

// String renders the Hamiltonian.
func (m *Model) String() string { return m.h.String() }
