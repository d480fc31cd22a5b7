// SPDX-License-Identifier: MIT

// Package monomial decomposes expressions and matrices into
// monomial → coefficient maps and uses them to prettify Hamiltonians.
//
//	Decompose(A·(x² + y) + B·x + C, x, y) = {1: C, x: B, x**2: A, y: A}
//
// An expression with no generator factor lands under the key "1".
// Decompose followed by Map.Expr reproduces the input after expansion.
//
// Prettify rounds, zeroes and snaps the numeric coefficients to exact
// forms (sqrt(3)/2), then resums; it is how symbolic Hamiltonians built
// with floating point lose their 1e-17 noise.
package monomial
