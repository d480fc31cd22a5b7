// SPDX-License-Identifier: MIT

package sym

import "strings"

// Symbol is an atom of the algebra.
//
// Commutative symbols (parameters, magnetic field components, constants)
// commute with everything. Non-commuting symbols (momentum and position
// operators, position-dependent parameters) keep their relative order in
// every product. Args, when non-empty, renders the symbol as a function of
// coordinates, e.g. E_0(x, y, z); such symbols are always non-commuting.
//
// Symbol is comparable and is used directly as a substitution map key.
type Symbol struct {
	Name        string
	Args        string
	Commutative bool
}

// C returns a commuting symbol.
func C(name string) Symbol { return Symbol{Name: name, Commutative: true} }

// NC returns a non-commuting symbol.
func NC(name string) Symbol { return Symbol{Name: name} }

// Func returns a non-commuting symbol depending on the given coordinates,
// rendered as name(c1, c2, ...).
func Func(name string, coords ...string) Symbol {
	return Symbol{Name: name, Args: strings.Join(coords, ", ")}
}

// String renders the symbol as it appears in expressions.
func (s Symbol) String() string {
	if s.Args == "" {
		return s.Name
	}

	return s.Name + "(" + s.Args + ")"
}

// less orders symbols by rendered name; commuting before non-commuting on ties.
func (s Symbol) less(o Symbol) bool {
	a, b := s.String(), o.String()
	if a != b {
		return a < b
	}

	return s.Commutative && !o.Commutative
}
