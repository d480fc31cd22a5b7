// SPDX-License-Identifier: MIT

// Package peierls adds a magnetic field to tight-binding hoppings through
// the Peierls substitution
//
//	t_ij → t_ij · exp(i φ_ij),  φ_ij = (2π/φ_0) ∫_{r_i}^{r_j} A(r)·dr
//
// with the line integral taken along the straight path between the sites.
// The vector potential is given in Cartesian components, for example the
// Landau gauge "[-B_z * y, 0, 0]", and must be polynomial in x, y and z.
package peierls
