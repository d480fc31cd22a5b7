// SPDX-License-Identifier: MIT

package peierls

import (
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/formula"
	"github.com/katalvlaran/semicon/kp"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

// Site coordinates of the hopping end points i (target) and j (source),
// the lattice constant and the integration variable.
var (
	SiteI   = [3]sym.Symbol{sym.C("x_i"), sym.C("y_i"), sym.C("z_i")}
	SiteJ   = [3]sym.Symbol{sym.C("x_j"), sym.C("y_j"), sym.C("z_j")}
	Lattice = sym.C("a")

	param = sym.C("_t")
)

// ErrNotPolynomial is returned when the vector potential is not a
// polynomial along the straight path between two sites.
var ErrNotPolynomial = errors.New("peierls: vector potential is not polynomial along the path")

// ParseVectorPotential parses a three-component list such as
// "[-B_z * y, 0, 0]". The components are Cartesian regardless of the
// dimension of the system.
//
// Errors:
//   - formula.ErrSyntax for malformed input.
//   - errors.ErrConfiguration when the list does not have three items.
func ParseVectorPotential(src string) ([3]sym.Expr, error) {
	var a [3]sym.Expr
	f, err := formula.Parse(src)
	if err != nil {
		return a, err
	}
	items, err := f.List()
	if err != nil {
		return a, err
	}
	if !f.IsList() || len(items) != 3 {
		return a, errors.Wrapf(errors.ErrConfiguration,
			"peierls: vector potential %q must have 3 components", src)
	}
	copy(a[:], items)

	return a, nil
}

// Phase returns the Peierls phase of the hopping from site j to site i,
//
//	φ_ij = (2π/φ_0) Σ_k (r_j − r_i)_k ∫₀¹ A_k(r_i + t(r_j − r_i)) dt
//
// in terms of SiteI, SiteJ and phi_0.
//
// Errors:
//   - ErrNotPolynomial when a component has negative powers along the path.
func Phase(a [3]sym.Expr) (sym.Expr, error) {
	t := sym.Var(param)
	path := make(map[sym.Symbol]sym.Expr, 3)
	for k, r := range symbols.Position {
		ri, rj := sym.Var(SiteI[k]), sym.Var(SiteJ[k])
		path[r] = ri.Add(rj.Sub(ri).Mul(t))
	}

	parts := make([]sym.Expr, 0, 3)
	for k, ak := range a {
		if ak.IsZero() {
			continue
		}
		along, err := ak.Subs(path)
		if err != nil {
			return sym.Expr{}, errors.Wrapf(ErrNotPolynomial, "component %d: %v", k, err)
		}
		integral, err := integrateUnit(along)
		if err != nil {
			return sym.Expr{}, errors.Wrapf(err, "component %d", k)
		}
		step := sym.Var(SiteJ[k]).Sub(sym.Var(SiteI[k]))
		parts = append(parts, step.Mul(integral))
	}

	phi0, err := sym.Var(symbols.Constant(symbols.Phi0)).Inverse()
	if err != nil {
		return sym.Expr{}, err
	}

	return sym.Sum(parts...).Mul(phi0).Scale(complex(2*math.Pi, 0)), nil
}

// integrateUnit integrates a polynomial in the path parameter over [0, 1].
func integrateUnit(e sym.Expr) (sym.Expr, error) {
	terms := make([]sym.Term, 0, len(e.Terms()))
	for _, term := range e.Terms() {
		n := 0
		rest := make([]sym.Factor, 0, len(term.Factors()))
		for _, f := range term.Factors() {
			if f.Sym == param {
				n += f.Pow
				continue
			}
			rest = append(rest, f)
		}
		if n < 0 {
			return sym.Expr{}, ErrNotPolynomial
		}
		terms = append(terms, sym.NewTerm(term.Coeff()/complex(float64(n+1), 0), rest...))
	}

	return sym.FromTerms(terms...), nil
}

// Offset is a hopping vector in lattice units along the discretized
// coordinates, in the order of the coords string ("xz" uses [0] and [1]).
type Offset [3]int

// Hopping is a tight-binding hopping amplitude with its Peierls phase.
type Hopping struct {
	Amplitude sym.Expr
	Phase     sym.Expr
}

// Evaluate returns Amplitude·exp(i·Phase) for the given bindings.
func (h Hopping) Evaluate(values map[string]complex128) (complex128, error) {
	amp, err := h.Amplitude.Eval(values)
	if err != nil {
		return 0, err
	}
	phase, err := h.Phase.Eval(values)
	if err != nil {
		return 0, err
	}

	return amp * cmplx.Exp(1i*phase), nil
}

// String renders "amplitude * exp(I * (phase))".
func (h Hopping) String() string {
	return "(" + h.Amplitude.String() + ") * exp(I * (" + h.Phase.String() + "))"
}

// Apply attaches the Peierls phase of a to every hopping of tb.
// The target site i sits at the position operators of coords, the source
// site j at target + offset·a. Coordinates that are not discretized carry
// no hopping and contribute no phase.
//
// Errors:
//   - errors.ErrConfiguration for invalid coords or an offset along a
//     coordinate that is not discretized.
//   - ErrNotPolynomial from Phase.
func Apply(tb map[Offset]sym.Expr, coords string, a [3]sym.Expr) (map[Offset]Hopping, error) {
	if err := kp.ValidateCoords(coords); err != nil {
		return nil, err
	}
	phase, err := Phase(a)
	if err != nil {
		return nil, err
	}

	offsets := make([]Offset, 0, len(tb))
	for off := range tb {
		offsets = append(offsets, off)
	}
	sort.Slice(offsets, func(i, j int) bool {
		for k := range offsets[i] {
			if offsets[i][k] != offsets[j][k] {
				return offsets[i][k] < offsets[j][k]
			}
		}
		return false
	})

	out := make(map[Offset]Hopping, len(tb))
	for _, off := range offsets {
		for k := len(coords); k < 3; k++ {
			if off[k] != 0 {
				return nil, errors.Wrapf(errors.ErrConfiguration,
					"peierls: offset %v has more components than coords %q", off, coords)
			}
		}

		subs := make(map[sym.Symbol]sym.Expr, 6)
		for k, r := range symbols.Position {
			pos := sym.Var(r)
			subs[SiteI[k]] = pos
			subs[SiteJ[k]] = pos
			if n := strings.IndexByte(coords, "xyz"[k]); n >= 0 {
				subs[SiteJ[k]] = pos.Add(sym.Var(Lattice).Scale(complex(float64(off[n]), 0)))
			}
		}
		p, err := phase.Subs(subs)
		if err != nil {
			return nil, err
		}
		out[off] = Hopping{Amplitude: tb[off], Phase: p}
	}

	return out, nil
}
