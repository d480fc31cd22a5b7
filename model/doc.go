// SPDX-License-Identifier: MIT

// Package model pairs symbolic Hamiltonians with the spin operators of their
// basis, so that a rotation of the crystal frame can act on both the
// operators (k, r, B) and the spinor components.
//
//	zb, err := model.NewZincBlende(model.WithBands("gamma_6c", "gamma_8v"))
//	rotated, err := zb.Rotate(r)
//	params, err := zb.Parameters("InAs", "")
//
// ZincBlende reads effective parameters from a data bank and converts them
// to bare values for exactly the bands kept in the model.
package model
