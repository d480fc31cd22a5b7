// SPDX-License-Identifier: MIT

// Package kp builds the symbolic 8-band k·p Hamiltonian components of
// zinc-blende semiconductors.
//
// Two components exist:
//
//	foreman  Kane model with Burt-Foreman operator ordering
//	zeeman   coupling to a magnetic field (Winkler form)
//
// Both are 8×8 sym.Matrix values in the basis Γ6c (0..1), Γ8v (2..5),
// Γ7v (6..7). When coords names spatial directions, material parameters
// become non-commuting functions such as gamma_1(x, y, z), and the ordering
// of momentum operators around them is kept exactly as in Burt-Foreman
// envelope function theory.
//
// Components are built on first use and cached per (component, coords).
package kp
