// SPDX-License-Identifier: MIT

package sym

import (
	"math/cmplx"
	"sort"
	"strings"

	"github.com/katalvlaran/semicon/errors"
)

// Expr is an expanded sum of canonical terms.
//
// The zero value is the expression 0. Terms are kept sorted by
// (degree, monomial key) with like monomials merged and exact zeros
// dropped, so two expressions that expand to the same polynomial have the
// same term list. Expr values are never mutated after construction.
type Expr struct {
	terms []Term
}

// Const returns the constant expression c.
func Const(c complex128) Expr { return FromTerms(NewTerm(c)) }

// Real returns the constant expression v.
func Real(v float64) Expr { return Const(complex(v, 0)) }

// Var returns the expression consisting of the single symbol s.
func Var(s Symbol) Expr { return FromTerms(NewTerm(1, Factor{Sym: s, Pow: 1})) }

// FromTerms sums the given terms into a canonical expression.
func FromTerms(terms ...Term) Expr {
	if len(terms) == 0 {
		return Expr{}
	}

	index := make(map[string]int, len(terms))
	merged := make([]Term, 0, len(terms))
	for _, t := range terms {
		if k, ok := index[t.key]; ok {
			merged[k].coeff += t.coeff
			continue
		}
		index[t.key] = len(merged)
		merged = append(merged, t)
	}

	out := merged[:0]
	for _, t := range merged {
		if t.coeff != 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Degree(), out[j].Degree()
		if di != dj {
			return di < dj
		}

		return out[i].key < out[j].key
	})

	return Expr{terms: out}
}

// Sum returns Σ es.
func Sum(es ...Expr) Expr {
	var all []Term
	for _, e := range es {
		all = append(all, e.terms...)
	}

	return FromTerms(all...)
}

// Product returns es[0]·es[1]·... in order; the empty product is 1.
func Product(es ...Expr) Expr {
	out := Const(1)
	for _, e := range es {
		out = out.Mul(e)
	}

	return out
}

// Terms returns a copy of the canonical term list.
func (e Expr) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)

	return out
}

// IsZero reports whether e has no terms.
func (e Expr) IsZero() bool { return len(e.terms) == 0 }

// AsConst returns the value of a constant expression.
func (e Expr) AsConst() (complex128, bool) {
	switch len(e.terms) {
	case 0:
		return 0, true
	case 1:
		if len(e.terms[0].factors) == 0 {
			return e.terms[0].coeff, true
		}
	}

	return 0, false
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr { return Sum(e, o) }

// Sub returns e − o.
func (e Expr) Sub(o Expr) Expr { return Sum(e, o.Neg()) }

// Neg returns −e.
func (e Expr) Neg() Expr { return e.Scale(-1) }

// Scale returns c·e.
func (e Expr) Scale(c complex128) Expr {
	if c == 0 {
		return Expr{}
	}
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		t.coeff *= c
		out[i] = t
	}

	return FromTerms(out...)
}

// Mul returns e·o, distributing over both sums. Non-commuting factors of
// e precede those of o in every product term.
func (e Expr) Mul(o Expr) Expr {
	if e.IsZero() || o.IsZero() {
		return Expr{}
	}
	out := make([]Term, 0, len(e.terms)*len(o.terms))
	for _, a := range e.terms {
		for _, b := range o.terms {
			out = append(out, mulTerms(a, b))
		}
	}

	return FromTerms(out...)
}

// Pow returns e**n. Negative powers are defined for monomials only.
//
// Errors:
//   - ErrNotMonomial when n < 0 and e is not a single non-zero term.
func (e Expr) Pow(n int) (Expr, error) {
	if n >= 0 {
		out := Const(1)
		for i := 0; i < n; i++ {
			out = out.Mul(e)
		}

		return out, nil
	}

	inv, err := e.Inverse()
	if err != nil {
		return Expr{}, err
	}

	return inv.Pow(-n)
}

// Inverse returns 1/e for a monomial e; (c·A·B)^-1 = c^-1·B^-1·A^-1.
func (e Expr) Inverse() (Expr, error) {
	if len(e.terms) != 1 {
		return Expr{}, errors.Wrapf(ErrNotMonomial, "sym: cannot invert %q", e.String())
	}

	t := e.terms[0]
	fs := make([]Factor, len(t.factors))
	for i, f := range t.factors {
		fs[len(fs)-1-i] = Factor{Sym: f.Sym, Pow: -f.Pow}
	}

	return FromTerms(NewTerm(1/t.coeff, fs...)), nil
}

// Subs replaces symbols simultaneously: every occurrence of a key of m in
// e is replaced by the mapped expression, and replacements are never
// substituted again. The result is re-expanded.
//
// Errors:
//   - ErrNotMonomial when a symbol with a negative power is mapped to a
//     non-monomial expression.
func (e Expr) Subs(m map[Symbol]Expr) (Expr, error) {
	if len(m) == 0 {
		return e, nil
	}

	var acc []Term
	for _, t := range e.terms {
		prod := Const(t.coeff)
		for _, f := range t.factors {
			repl, ok := m[f.Sym]
			if !ok {
				prod = prod.Mul(FromTerms(NewTerm(1, f)))
				continue
			}
			p, err := repl.Pow(f.Pow)
			if err != nil {
				return Expr{}, errors.Wrapf(err, "sym: substituting %s", f.Sym)
			}
			prod = prod.Mul(p)
		}
		acc = append(acc, prod.terms...)
	}

	return FromTerms(acc...), nil
}

// Dagger returns the Hermitian adjoint: coefficients are conjugated and the
// order of non-commuting factors is reversed. Every symbol is treated as
// self-adjoint.
func (e Expr) Dagger() Expr {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		fs := make([]Factor, len(t.factors))
		copy(fs, t.factors)
		first := 0
		for first < len(fs) && fs[first].Sym.Commutative {
			first++
		}
		for l, r := first, len(fs)-1; l < r; l, r = l+1, r-1 {
			fs[l], fs[r] = fs[r], fs[l]
		}
		out[i] = NewTerm(cmplx.Conj(t.coeff), fs...)
	}

	return FromTerms(out...)
}

// Symbols returns the distinct symbols of e, sorted.
func (e Expr) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	var out []Symbol
	for _, t := range e.terms {
		for _, f := range t.factors {
			if _, ok := seen[f.Sym]; ok {
				continue
			}
			seen[f.Sym] = struct{}{}
			out = append(out, f.Sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Eval evaluates e numerically. Symbols are looked up by Name, so E_0(x, y, z)
// binds to values["E_0"].
//
// Errors:
//   - ErrUnboundSymbol when a symbol has no value.
//   - ErrNonFinite when the result is NaN or Inf (a zero under a negative power).
func (e Expr) Eval(values map[string]complex128) (complex128, error) {
	var sum complex128
	for _, t := range e.terms {
		v := t.coeff
		for _, f := range t.factors {
			x, ok := values[f.Sym.Name]
			if !ok {
				return 0, errors.Wrapf(ErrUnboundSymbol, "sym: %s", f.Sym.Name)
			}
			v *= intPow(x, f.Pow)
		}
		sum += v
	}
	if cmplx.IsNaN(sum) || cmplx.IsInf(sum) {
		return 0, errors.Wrapf(ErrNonFinite, "sym: evaluating %q", e.String())
	}

	return sum, nil
}

// intPow computes x**n for integer n by repeated multiplication.
func intPow(x complex128, n int) complex128 {
	if n < 0 {
		return 1 / intPow(x, -n)
	}
	r := complex128(1)
	for i := 0; i < n; i++ {
		r *= x
	}

	return r
}

// Equal reports whether e and o agree term by term within atol; monomials
// present on one side only are compared against zero.
func (e Expr) Equal(o Expr, atol float64) bool {
	d := e.Sub(o)
	for _, t := range d.terms {
		if cmplx.Abs(t.coeff) > atol {
			return false
		}
	}

	return true
}

// String renders e in a form the formula package can parse back.
func (e Expr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, t := range e.terms {
		s := t.String()
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
			continue
		}
		b.WriteString(" + ")
		b.WriteString(s)
	}

	return b.String()
}
