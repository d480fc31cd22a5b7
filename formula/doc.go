// SPDX-License-Identifier: MIT

// Package formula parses the small arithmetic language used by
// renormalization rules, vector potentials and printed Hamiltonians:
//
//	(2 / 3) * (1 / T) * P**2 / E_0
//	[-B_z * y, 0, 0]
//	sqrt(3)/2*k_x + I*E_0(x, y, z)
//
// A parsed Formula can be evaluated numerically with named bindings (Eval),
// asked for its free names (Vars), or converted into a sym.Expr (Expr,
// List, Sympify). Identifiers become symbols through symbols.Resolve unless
// WithResolver or WithLocals says otherwise.
//
// Operator precedence follows Python: ** binds tighter than unary minus,
// so -2**2 == -4.
package formula
