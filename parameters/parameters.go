// SPDX-License-Identifier: MIT

package parameters

import (
	"math"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
)

// ErrRenormalizeTarget is returned when Renormalize gets zero or two targets.
var ErrRenormalizeTarget = errors.New("parameters: exactly one of new gamma_0 or new P must be given")

// Parameters holds the bare parameter set of one material for one band set.
// Values are never mutated; Renormalize returns a new Parameters.
type Parameters struct {
	Material string
	Bands    bands.Set
	Class    SymmetryClass

	r    *Renormalizer
	bare Set
}

// Bare returns a copy of the bare values.
func (p *Parameters) Bare() Set { return p.bare.Clone() }

// Effective converts the bare values back with the same band set.
func (p *Parameters) Effective() (Set, error) { return p.r.ToEffective(p.bare, p.Bands) }

// Get returns a bare value.
func (p *Parameters) Get(name string) (float64, bool) {
	v, ok := p.bare[name]

	return v, ok
}

// Bindings returns the bare values together with the physical constants,
// in the form expected by sym.Expr.Eval and sym.Matrix.Eval.
func (p *Parameters) Bindings() map[string]complex128 {
	out := make(map[string]complex128, len(p.bare)+4)
	for k, v := range Constants() {
		out[k] = complex(v, 0)
	}
	for k, v := range p.bare {
		out[k] = complex(v, 0)
	}

	return out
}

// String renders material, bands and bare values.
func (p *Parameters) String() string {
	return p.Material + " [" + p.Bands.String() + "] " + p.bare.String()
}

// Target selects the quantity Renormalize keeps fixed in the bare set.
type Target func(*target)

type target struct {
	gamma0, p       float64
	hasGamma0, hasP bool
}

// WithNewGamma0 requests bare gamma_0 = g. Panics on NaN or ±Inf.
func WithNewGamma0(g float64) Target {
	if math.IsNaN(g) || math.IsInf(g, 0) {
		panic("parameters: WithNewGamma0 must be finite")
	}

	return func(t *target) { t.gamma0, t.hasGamma0 = g, true }
}

// WithNewP requests P = p (eV·nm). Panics on NaN or ±Inf.
func WithNewP(p float64) Target {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		panic("parameters: WithNewP must be finite")
	}

	return func(t *target) { t.p, t.hasP = p, true }
}

// Renormalize trades the bare conduction band curvature gamma_0 against the
// Kane coupling P while keeping the effective gamma_0 unchanged. This is the
// usual cure for spurious solutions: choose a bare gamma_0 of 0 or 1 and let
// P absorb the difference.
//
// With scale = Σ over gamma_0 rules of retained hole bands of the correction
// evaluated at P = 1, T = 1 (Γ8v: (2/3)/E_0, Γ7v: (1/3)/(E_0+Δ_0)):
//
//	γ0_eff = γ0 + P²·scale/T
//	new γ0 target g:  P² = (γ0_eff − g)·T/scale, γ0 = g
//	new P target p:   γ0 = γ0_eff − p²·scale/T, P = p
//
// Every other bare value is kept.
//
// Errors:
//   - ErrRenormalizeTarget unless exactly one target is given.
//   - errors.ErrDomain without Γ6c or without any of Γ8v and Γ7v, or when the
//     requested gamma_0 would need P² < 0.
//   - *errors.MissingParameterError when gamma_0, P or a formula dependency
//     is absent.
func (p *Parameters) Renormalize(targets ...Target) (*Parameters, error) {
	var t target
	for _, opt := range targets {
		opt(&t)
	}
	if t.hasGamma0 == t.hasP {
		return nil, ErrRenormalizeTarget
	}
	if !p.Bands.Has(bands.Gamma6c) || !(p.Bands.Has(bands.Gamma8v) || p.Bands.Has(bands.Gamma7v)) {
		return nil, errors.Wrapf(errors.ErrDomain,
			"parameters: renormalize needs gamma_6c and a hole band, have [%s]", p.Bands.String())
	}

	scale, err := p.couplingScale()
	if err != nil {
		return nil, err
	}
	g0, ok := p.bare["gamma_0"]
	if !ok {
		return nil, errors.NewMissingParameter("gamma_0", "gamma_0")
	}
	kane, ok := p.bare["P"]
	if !ok {
		return nil, errors.NewMissingParameter("gamma_0", "P")
	}
	effective := g0 + kane*kane*scale/T

	next := p.bare.Clone()
	if t.hasGamma0 {
		p2 := (effective - t.gamma0) * T / scale
		if p2 < 0 {
			return nil, errors.Wrapf(errors.ErrDomain,
				"parameters: gamma_0=%v exceeds effective gamma_0=%v (P² < 0)", t.gamma0, effective)
		}
		next["P"] = math.Sqrt(p2)
		next["gamma_0"] = t.gamma0
	} else {
		next["P"] = t.p
		next["gamma_0"] = effective - t.p*t.p*scale/T
	}

	out := *p
	out.Bands = append(bands.Set(nil), p.Bands...)
	out.bare = next

	return &out, nil
}

// couplingScale evaluates the gamma_0 corrections of the retained bands
// with P = 1 and T = 1.
func (p *Parameters) couplingScale() (float64, error) {
	env := p.bare.Clone()
	env["P"], env["T"] = 1, 1

	var scale float64
	for _, rule := range p.r.rules.Rules("gamma_0") {
		if !p.Bands.Has(rule.Band) {
			continue
		}
		for _, dep := range rule.Formula.Vars() {
			if !env.Has(dep) {
				return 0, errors.NewMissingParameter("gamma_0", dep)
			}
		}
		v, err := rule.Formula.Eval(env)
		if err != nil {
			return 0, errors.Wrap(err, "parameters: renormalize scale")
		}
		scale += v
	}
	if scale == 0 {
		return 0, errors.Wrap(errors.ErrDomain, "parameters: renormalize scale is zero")
	}

	return scale, nil
}
