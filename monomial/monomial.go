// SPDX-License-Identifier: MIT

package monomial

import (
	"sort"

	"github.com/katalvlaran/semicon/sym"
)

// Entry pairs a monomial with its aggregated coefficient.
type Entry struct {
	Monomial sym.Expr // product of generator powers, coefficient 1
	Coeff    sym.Expr // everything else, numeric factor included
}

// Map is a decomposition keyed by the canonical monomial string ("1" for
// the empty product). Iteration order carries no meaning; use Keys for a
// deterministic walk.
type Map map[string]Entry

// Decompose splits e into Σ monomial·coefficient over the generators.
//
// Implementation:
//   - Stage 1: default generators are all symbols of e.
//   - Stage 2: each expanded term is split into its generator factors, in
//     product order (the key), and the remaining factors times the numeric
//     coefficient (the value).
//   - Stage 3: values with equal keys are summed.
//
// Non-commuting coefficient factors that sit between generators are moved
// after them; only the order within each group is kept. The resum
// Map.Expr() == e therefore holds only when every non-generator factor
// commutes or no such factor sits between generators: over the momenta,
// k_x·gamma_0(z)·k_x decomposes to k_x**2 ↦ gamma_0(z) and resums to
// k_x²·gamma_0(z). Decompose with all symbols as generators keeps any order.
//
// Complexity: O(terms · factors).
func Decompose(e sym.Expr, gens ...sym.Symbol) Map {
	if len(gens) == 0 {
		gens = e.Symbols()
	}
	isGen := make(map[sym.Symbol]bool, len(gens))
	for _, g := range gens {
		isGen[g] = true
	}

	out := make(Map)
	for _, t := range e.Terms() {
		var key, rest []sym.Factor
		for _, f := range t.Factors() {
			if isGen[f.Sym] {
				key = append(key, f)
			} else {
				rest = append(rest, f)
			}
		}
		mono := sym.NewTerm(1, key...)
		val := sym.FromTerms(sym.NewTerm(t.Coeff(), rest...))

		prev, ok := out[mono.Key()]
		if !ok {
			out[mono.Key()] = Entry{Monomial: sym.FromTerms(mono), Coeff: val}
			continue
		}
		prev.Coeff = prev.Coeff.Add(val)
		out[mono.Key()] = prev
	}

	return out
}

// Keys returns the monomial keys sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Expr resums Σ monomial·coefficient.
func (m Map) Expr() sym.Expr {
	parts := make([]sym.Expr, 0, len(m))
	for _, k := range m.Keys() {
		e := m[k]
		parts = append(parts, e.Monomial.Mul(e.Coeff))
	}

	return sym.Sum(parts...)
}

// Equal compares coefficients key by key within atol; a key missing on one
// side counts as a zero coefficient.
func (m Map) Equal(o Map, atol float64) bool {
	for k, e := range m {
		if !e.Coeff.Equal(o[k].Coeff, atol) {
			return false
		}
	}
	for k, e := range o {
		if _, ok := m[k]; !ok && !e.Coeff.Equal(sym.Expr{}, atol) {
			return false
		}
	}

	return true
}

// MatrixEntry pairs a monomial with its coefficient matrix.
type MatrixEntry struct {
	Monomial sym.Expr
	Coeff    *sym.Matrix
}

// MatrixMap is the element-wise decomposition of a matrix, aggregated per
// monomial into coefficient matrices of the input's shape.
type MatrixMap map[string]MatrixEntry

// DecomposeMatrix decomposes every entry of m. Default generators are all
// symbols of m. Coefficient matrices have zeros where a monomial is absent.
func DecomposeMatrix(m *sym.Matrix, gens ...sym.Symbol) (MatrixMap, error) {
	if len(gens) == 0 {
		gens = m.Symbols()
	}
	r, c := m.Shape()

	type acc struct {
		mono  sym.Expr
		cells []sym.Expr
	}
	byKey := make(map[string]*acc)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			e, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			for k, ent := range Decompose(e, gens...) {
				a, ok := byKey[k]
				if !ok {
					a = &acc{mono: ent.Monomial, cells: make([]sym.Expr, r*c)}
					byKey[k] = a
				}
				a.cells[i*c+j] = a.cells[i*c+j].Add(ent.Coeff)
			}
		}
	}

	out := make(MatrixMap, len(byKey))
	for k, a := range byKey {
		cells := a.cells
		coeff, err := sym.NewMatrix(r, c, func(i, j int) sym.Expr { return cells[i*c+j] })
		if err != nil {
			return nil, err
		}
		out[k] = MatrixEntry{Monomial: a.mono, Coeff: coeff}
	}

	return out, nil
}

// Keys returns the monomial keys sorted.
func (m MatrixMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Matrix resums Σ monomial·coefficient matrix.
func (m MatrixMap) Matrix() (*sym.Matrix, error) {
	var out *sym.Matrix
	for _, k := range m.Keys() {
		e := m[k]
		term := e.Coeff.Scale(e.Monomial)
		if out == nil {
			out = term
			continue
		}
		var err error
		if out, err = out.Add(term); err != nil {
			return nil, err
		}
	}
	if out == nil {
		return nil, ErrEmpty
	}

	return out, nil
}

// Equal compares coefficient matrices key by key within atol; a key
// missing on one side counts as a zero matrix.
func (m MatrixMap) Equal(o MatrixMap, atol float64) bool {
	return m.covers(o, atol) && o.covers(m, atol)
}

func (m MatrixMap) covers(o MatrixMap, atol float64) bool {
	for k, e := range m {
		other, ok := o[k]
		if ok {
			if !e.Coeff.Equal(other.Coeff, atol) {
				return false
			}
			continue
		}
		r, c := e.Coeff.Shape()
		zero, _ := sym.NewMatrix(r, c, nil)
		if !e.Coeff.Equal(zero, atol) {
			return false
		}
	}

	return true
}
