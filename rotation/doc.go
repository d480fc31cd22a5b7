// SPDX-License-Identifier: MIT

// Package rotation rotates symbolic k·p expressions and Hamiltonians.
//
// MAIN DESCRIPTION
//
// Given a proper rotation R (det R = +1, RᵀR = I), a Hamiltonian H(k, r, B)
// is rotated in two fixed stages:
//
//  1. Symbols: each acted-on operator triple v = (v_x, v_y, v_z) is replaced
//     by R·v in one simultaneous substitution and the result is re-expanded.
//     Sequential substitution would feed k_x ↦ k_y into k_y ↦ −k_x.
//  2. Spin (optional): with the spin operators S of the basis, the matrix is
//     conjugated by U = exp(i·n·S), where n is the rotation vector of R
//     (axis times angle): H' = U·H·U†.
//
// Doing stage 2 before stage 1 gives a different, wrong, Hamiltonian.
//
// Numerics: det and RᵀR use gonum/mat, the rotation vector goes through a
// unit quaternion (gonum/num/quat), and exp(i·n·S) is cmatrix.Expm.
//
// Complexity: substitution is linear in the number of terms times the
// expansion factor (at most 3 per rotated operator); conjugation is
// O(n²) symbolic entries times n numeric products for an n×n Hamiltonian.
package rotation
