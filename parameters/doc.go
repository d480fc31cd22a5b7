// SPDX-License-Identifier: MIT

// Package parameters loads material data banks and converts their effective
// parameters into the bare parameters of a multi-band k·p model.
//
// Effective parameters (masses, Luttinger parameters, g-factors) are
// measured quantities: they already contain the contribution of every
// remote band. Once a band is treated explicitly in the Hamiltonian its
// contribution must be removed, otherwise it is counted twice. For the
// zinc-blende class the corrections are the second-order Löwdin terms of
// the Kane coupling P:
//
//	gamma_0 = 1/m_c:  Γ8v (2/3)·P²/(T·E_0),   Γ7v (1/3)·P²/(T·(E_0+Δ_0))
//	g_c:              Γ8v −(2/3)·P²/(T·E_0),  Γ7v (2/3)·P²/(T·(E_0+Δ_0))
//	gamma_1:          Γ6c (1/3)·P²/(T·E_0)
//	gamma_2, gamma_3, kappa: Γ6c (1/6)·P²/(T·E_0)
//
// with T = ħ²/(2m_0). ToBare subtracts the corrections of the bands present
// in the model, ToEffective adds them back:
//
//	r, _ := parameters.NewRenormalizer(parameters.ZincBlende)
//	bare, err := r.ToBare(effective, bands.All)
//
// Data banks are YAML or TOML documents of the shape
// {material: {parameters: {name: number}}}. Two banks are embedded
// (winkler, lawaetz); BankCache loads each bank once per process.
//
// Parameters.Renormalize moves weight between the bare gamma_0 and P
// while the effective gamma_0 stays fixed.
package parameters
