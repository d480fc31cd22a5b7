// SPDX-License-Identifier: MIT

// Package symbols fixes the symbol vocabulary of k·p Hamiltonians: the
// momentum, position and magnetic field triples, the varied material
// parameters and the physical constants.
//
// Momentum and position operators never commute. Magnetic field components
// and constants always commute. Material parameters commute unless they
// depend on coordinates, in which case they become operators E_0(x, y, z).
package symbols

import (
	"strings"

	"github.com/katalvlaran/semicon/sym"
)

// Operator triples acted on by rotations.
var (
	Momentum = [3]sym.Symbol{sym.NC("k_x"), sym.NC("k_y"), sym.NC("k_z")}
	Position = [3]sym.Symbol{sym.NC("x"), sym.NC("y"), sym.NC("z")}
	Magnetic = [3]sym.Symbol{sym.C("B_x"), sym.C("B_y"), sym.C("B_z")}
)

// VariedParameters are the material parameters that may depend on position.
var VariedParameters = []string{
	"E_0", "E_v", "Delta_0", "P", "kappa", "g_c", "q",
	"gamma_0", "gamma_1", "gamma_2", "gamma_3",
}

// Constant symbol names.
const (
	Hbar = "hbar"
	M0   = "m_0"
	MuB  = "mu_B"
	Phi0 = "phi_0"
)

var operators = func() map[string]sym.Symbol {
	m := make(map[string]sym.Symbol, 6)
	for _, s := range append(Momentum[:], Position[:]...) {
		m[s.Name] = s
	}

	return m
}()

// IsVaried reports whether name is a position-dependent capable parameter.
func IsVaried(name string) bool {
	for _, v := range VariedParameters {
		if v == name {
			return true
		}
	}

	return false
}

// Parameter returns the symbol of a material parameter. With empty coords
// the symbol commutes; otherwise it is E_0(x, y, z)-style and non-commuting.
// Names outside VariedParameters always commute.
func Parameter(name, coords string) sym.Symbol {
	if coords == "" || !IsVaried(name) {
		return sym.C(name)
	}

	return sym.Func(name, strings.Split(coords, "")...)
}

// Resolve maps a parsed identifier to its symbol: operators by name,
// explicit call arguments to a coordinate-dependent symbol, anything else
// to a commuting symbol.
func Resolve(name, args string) sym.Symbol {
	if s, ok := operators[name]; ok && args == "" {
		return s
	}
	if args != "" {
		return sym.Symbol{Name: name, Args: args}
	}

	return sym.C(name)
}

// Constant returns the commuting symbol of a physical constant.
func Constant(name string) sym.Symbol { return sym.C(name) }

// Var is a shorthand for sym.Var(Parameter(name, coords)).
func Var(name, coords string) sym.Expr { return sym.Var(Parameter(name, coords)) }
