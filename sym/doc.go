// SPDX-License-Identifier: MIT

// Package sym is a small Laurent-polynomial algebra over commuting and
// non-commuting symbols with complex128 coefficients.
//
// MAIN DESCRIPTION
//
// It covers exactly what k·p Hamiltonians need and nothing more:
//
//   - Expr: an always-expanded sum of terms. A term is a coefficient times an
//     ordered product of symbol powers. Commuting symbols are gathered and
//     sorted; non-commuting symbols (k_x, x, E_0(x, y, z)) keep their order,
//     so k_x·E_0(x)·k_x and E_0(x)·k_x² stay distinct.
//   - Subs: simultaneous substitution. Replacing k_x ↦ k_y and k_y ↦ −k_x in
//     one call never feeds the first replacement into the second.
//   - Dagger: conjugates coefficients and reverses operator order.
//   - Matrix: immutable matrices of Expr with products, block-diagonal
//     composition, band filtering (Induced) and products with numeric
//     cmatrix.Dense operands (used for U·H·U†).
//
// Integer powers may be negative (ħ²/(2·m_0) is the monomial ħ²·m_0⁻¹/2);
// inverting a sum is rejected with ErrNotMonomial.
//
// String output uses the notation understood by package formula
// (k_x**2, I, sqrt(3)/2), so printed expressions can be parsed back.
//
// Non-goals: no simplification beyond expansion, no transcendental
// functions, no symbolic coefficients other than symbols themselves.
package sym
