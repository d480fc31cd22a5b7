// SPDX-License-Identifier: MIT

package parameters

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
)

// Renormalizer converts parameter sets between effective values (as measured
// and stored in data banks) and bare values (as used in a multi-band model
// where the coupled bands are explicit).
//
// A Renormalizer is immutable and safe for concurrent use.
type Renormalizer struct {
	rules *RuleSet
	opts  options
}

// NewRenormalizer selects the rule set of class.
//
// Errors:
//   - errors.ErrConfiguration for an unknown class.
func NewRenormalizer(class SymmetryClass, opts ...Option) (*Renormalizer, error) {
	rs, err := Rules(class)
	if err != nil {
		return nil, err
	}

	return &Renormalizer{rules: rs, opts: gatherOptions(opts...)}, nil
}

// NewRenormalizerWithRules uses a caller-built rule set.
func NewRenormalizerWithRules(rs *RuleSet, opts ...Option) *Renormalizer {
	return &Renormalizer{rules: rs, opts: gatherOptions(opts...)}
}

// RuleSet returns the rule set in use.
func (r *Renormalizer) RuleSet() *RuleSet { return r.rules }

// Prepare computes the derived quantities of a raw data bank entry and applies
// the valence band offset. Derived parameters replace their source
// (m_c is removed once gamma_0 = 1 / m_c is set); E_v is created when absent.
// Prepare on an already prepared set only shifts E_v.
//
// Errors:
//   - errors.ErrDomain when a derived formula is not finite (m_c = 0).
func (r *Renormalizer) Prepare(raw Set) (Set, error) {
	out := raw.Clone()
	for _, d := range r.rules.derived {
		v, ok := out[d.From]
		if !ok {
			continue
		}
		x, err := d.Formula.Eval(map[string]float64{d.From: v})
		if err != nil {
			return nil, errors.Wrapf(err, "parameters: derive %s from %s", d.Name, d.From)
		}
		out[d.Name] = x
		delete(out, d.From)
	}
	out["E_v"] += r.opts.vbo

	return out, nil
}

// ToBare prepares effective and subtracts, for every renormalized parameter
// present, the correction of each rule band contained in b.
//
// Implementation:
//   - Stage 1: Prepare.
//   - Stage 2: for each parameter in both the set and the rule set, for each
//     rule band in b, evaluate the formula with T and the input values bound.
//   - Stage 3: subtract. Parameters outside the rule set pass through.
//
// Errors:
//   - errors.ErrConfiguration when b is not a canonical band set.
//   - *errors.MissingParameterError (matches errors.ErrMissingParameter) when
//     a formula dependency is absent.
//   - errors.ErrDomain for a non-finite correction (E_0 = 0).
//
// Complexity: O(R) formula evaluations, R = number of rules.
func (r *Renormalizer) ToBare(effective Set, b bands.Set) (Set, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	prepared, err := r.Prepare(effective)
	if err != nil {
		return nil, err
	}

	return r.apply(prepared, b, -1)
}

// ToEffective adds the same corrections ToBare subtracts. It does not
// Prepare: the input is already a bare set. The round trip therefore closes
// against the prepared set, ToEffective(ToBare(raw)) == Prepare(raw): the
// valence band offset stays in E_v and gamma_0 stays in place of m_c.
//
// Errors: as ToBare.
func (r *Renormalizer) ToEffective(bare Set, b bands.Set) (Set, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return r.apply(bare, b, +1)
}

// apply adds sign times every applicable correction to a copy of in.
// Corrections are evaluated against in, never against partial results.
func (r *Renormalizer) apply(in Set, b bands.Set, sign float64) (Set, error) {
	env := in.Clone()
	env["T"] = T

	out := in.Clone()
	for _, name := range r.rules.order {
		if !in.Has(name) {
			continue
		}
		for _, rule := range r.rules.rules[name] {
			if !b.Has(rule.Band) {
				continue
			}
			for _, dep := range rule.Formula.Vars() {
				if !env.Has(dep) {
					return nil, errors.NewMissingParameter(name, dep)
				}
			}
			v, err := rule.Formula.Eval(env)
			if err != nil {
				return nil, errors.Wrapf(err, "parameters: correction of %s from %s", name, rule.Band)
			}
			out[name] += sign * v
			r.opts.logger.Debug("applied correction",
				zap.String("parameter", name),
				zap.String("band", string(rule.Band)),
				zap.Float64("value", sign*v),
			)
		}
	}

	return out, nil
}

// New builds a Parameters value for material restricted to b. raw is
// treated as effective and converted with ToBare unless AlreadyBare is given.
func (r *Renormalizer) New(material string, b bands.Set, raw Set, opts ...Option) (*Parameters, error) {
	if err := b.Validate(); err != nil {
		return nil, errors.Wrapf(err, "parameters: material %s", material)
	}
	o := gatherOptions(opts...)

	bare := raw.Clone()
	if !o.alreadyBare {
		var err error
		if bare, err = r.ToBare(raw, b); err != nil {
			return nil, errors.Wrapf(err, "parameters: material %s", material)
		}
	}

	out := &Parameters{Material: material, Class: r.rules.class, r: r, bare: bare}
	out.Bands = append(out.Bands, b...)

	return out, nil
}
