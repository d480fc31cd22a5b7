// SPDX-License-Identifier: MIT

package sym

import (
	"sort"
	"strconv"
	"strings"
)

// Factor is a symbol raised to a non-zero integer power.
type Factor struct {
	Sym Symbol
	Pow int
}

// String renders s, s**n or s**(-n).
func (f Factor) String() string {
	switch {
	case f.Pow == 1:
		return f.Sym.String()
	case f.Pow < 0:
		return f.Sym.String() + "**(" + strconv.Itoa(f.Pow) + ")"
	default:
		return f.Sym.String() + "**" + strconv.Itoa(f.Pow)
	}
}

// Term is coeff · f1^p1 · f2^p2 · ... in canonical form:
//   - commuting factors first, sorted by name, one entry per symbol;
//   - non-commuting factors afterwards, in product order, adjacent equal
//     symbols merged;
//   - no factor with a zero power.
type Term struct {
	coeff   complex128
	factors []Factor
	key     string // canonical monomial key, "1" for the empty product
}

// NewTerm builds a canonical term.
func NewTerm(coeff complex128, factors ...Factor) Term {
	return canonicalTerm(coeff, factors)
}

// Coeff returns the numeric coefficient.
func (t Term) Coeff() complex128 { return t.coeff }

// Factors returns a copy of the canonical factor list.
func (t Term) Factors() []Factor {
	out := make([]Factor, len(t.factors))
	copy(out, t.factors)

	return out
}

// Key returns the canonical monomial key ("1" when there are no factors).
func (t Term) Key() string { return t.key }

// Degree returns the sum of the factor powers.
func (t Term) Degree() int {
	d := 0
	for _, f := range t.factors {
		d += f.Pow
	}

	return d
}

// canonicalTerm splits commuting and non-commuting factors, merges the
// former by symbol and the latter by adjacency (with cancellation cascades),
// and computes the monomial key.
func canonicalTerm(coeff complex128, factors []Factor) Term {
	var comm []Factor
	var nc []Factor
	for _, f := range factors {
		if f.Pow == 0 {
			continue
		}
		if f.Sym.Commutative {
			comm = append(comm, f)
			continue
		}
		// stack merge keeps x·x^-1 cancellations exposing outer neighbours
		if n := len(nc); n > 0 && nc[n-1].Sym == f.Sym {
			nc[n-1].Pow += f.Pow
			if nc[n-1].Pow == 0 {
				nc = nc[:n-1]
			}
			continue
		}
		nc = append(nc, f)
	}

	sort.SliceStable(comm, func(i, j int) bool { return comm[i].Sym.less(comm[j].Sym) })
	merged := make([]Factor, 0, len(comm)+len(nc))
	for _, f := range comm {
		if n := len(merged); n > 0 && merged[n-1].Sym == f.Sym {
			merged[n-1].Pow += f.Pow
			if merged[n-1].Pow == 0 {
				merged = merged[:n-1]
			}
			continue
		}
		merged = append(merged, f)
	}
	merged = append(merged, nc...)

	return Term{coeff: coeff, factors: merged, key: monomialKey(merged)}
}

// monomialKey joins the factor strings with '*'.
func monomialKey(fs []Factor) string {
	if len(fs) == 0 {
		return "1"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}

	return strings.Join(parts, "*")
}

// mulTerms returns a·b respecting non-commuting order.
func mulTerms(a, b Term) Term {
	fs := make([]Factor, 0, len(a.factors)+len(b.factors))
	fs = append(fs, a.factors...)
	fs = append(fs, b.factors...)

	return canonicalTerm(a.coeff*b.coeff, fs)
}

// String renders the term with its coefficient.
func (t Term) String() string {
	if len(t.factors) == 0 {
		return formatCoeff(t.coeff)
	}
	switch t.coeff {
	case 1:
		return t.key
	case -1:
		return "-" + t.key
	}

	return formatCoeff(t.coeff) + "*" + t.key
}
