// SPDX-License-Identifier: MIT

// Package cmatrix implements the small dense complex128 matrix toolkit the
// k·p machinery needs: spin operators, unitary rotation matrices and the
// numeric coefficient blocks of the Hamiltonian are all *Dense values.
//
// MAIN DESCRIPTION
//
//   - Storage is row-major and owned by the value; every kernel returns a new
//     matrix and never mutates its operands.
//   - Public accessors (At, Set, Induced) return errors instead of panicking.
//   - All failures wrap a sentinel from errors.go so callers can use errors.Is.
//   - Closeness policy (AllClose, IsHermitian) is configured through the
//     functional options WithRTol / WithATol.
//
// Operations:
//
//	Add, Sub, Mul, Scale, ConjTranspose, Commutator, Trace, BlockDiag,
//	LinearCombination, Expm, AllClose, IsHermitian, Dense.Induced.
//
// Expm delegates to gonum through the real 2n×2n embedding of a complex
// matrix.
package cmatrix
