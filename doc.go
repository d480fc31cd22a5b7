// SPDX-License-Identifier: MIT

// Package semicon builds symbolic k·p Hamiltonians of zinc-blende
// semiconductors and the material parameters that go with them.
//
// The module is organized bottom-up:
//
//	errors/       sentinel errors and cockroachdb/errors re-exports
//	cmatrix/      dense complex matrices, Hermitian checks, expm
//	sym/          commutative and non-commutative symbolic expressions
//	formula/      parser for parameter formulas and vector potentials
//	symbols/      momentum, position, field and constant vocabulary
//	spin/         spin-s operators and composite spin bases
//	monomial/     monomial decomposition and coefficient prettifying
//	rotation/     SO(3) rotations of symbols and spinful bases
//	bands/        Γ6c, Γ8v, Γ7v band set and canonical order
//	parameters/   data banks, renormalization of effective parameters
//	kp/           Foreman and Zeeman components of the 8-band model
//	model/        Model and ZincBlende: Hamiltonian plus spin operators
//	peierls/      Peierls phases of tight-binding hoppings
//	cmd/semicon   command line front end
//
// Quick example:
//
//	zb, err := model.NewZincBlende(
//		model.WithBands("gamma_6c", "gamma_8v"),
//		model.WithComponents(kp.ComponentForeman, kp.ComponentZeeman),
//	)
//	if err != nil { … }
//	p, err := zb.Parameters("GaAs", "winkler")
//	h, err := zb.Hamiltonian().Eval(p.Bindings()) // after binding k_x, k_y, k_z
//
//	go get github.com/katalvlaran/semicon
package semicon
