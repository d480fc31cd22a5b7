// SPDX-License-Identifier: MIT

package parameters

// Physical constants in the unit system of the data banks: energies in eV,
// lengths in nm, fields in T.
const (
	// ElectronMass is m_0 c² in eV.
	ElectronMass = 0.51099895000e6

	// HbarC is ħc in eV·nm.
	HbarC = 197.3269804

	// BohrMagneton is μ_B in eV/T.
	BohrMagneton = 5.7883818060e-5

	// FluxQuantum is φ_0 = h/e in T·nm² (twice the superconducting quantum).
	FluxQuantum = 2 * 2.067833848e-15 * 1e18
)

// T is ħ²/(2m_0) in eV·nm², the constant bound to "T" in rule formulas.
const T = HbarC * HbarC / 2 / ElectronMass

// Constants returns the symbol values of the physical constants as they
// appear in Hamiltonians (hbar, m_0, mu_B, phi_0). ħ is expressed through
// ħc so that ħ²/(2 m_0) == T.
func Constants() Set {
	return Set{
		"hbar":  HbarC,
		"m_0":   ElectronMass,
		"mu_B":  BohrMagneton,
		"phi_0": FluxQuantum,
	}
}
