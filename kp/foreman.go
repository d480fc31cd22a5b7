// SPDX-License-Identifier: MIT

package kp

import (
	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

// kinetic returns ħ²/(2m_0) as a symbolic factor.
func kinetic() sym.Expr {
	hbar := sym.Var(symbols.Constant(symbols.Hbar))
	m0, _ := sym.Var(symbols.Constant(symbols.M0)).Inverse()

	return hbar.Mul(hbar).Mul(m0).Scale(0.5)
}

// Foreman builds the 8×8 Kane Hamiltonian with Burt-Foreman operator
// ordering in the Γ6c, Γ8v, Γ7v basis.
//
// Implementation:
//   - Stage 1: conduction, coupling and valence blocks in (S, X, Y, Z), with
//     position-dependent parameters kept between the momentum operators
//     (k·A·k, k_i·N+·k_j + k_j·N−·k_i).
//   - Stage 2: spin ⊗ orbital doubling plus spin-orbit coupling Δ_0/3.
//   - Stage 3: change of basis U·H·U† and the E_v − Δ_0/3 valence shift.
//
// With non-empty coords every varied parameter becomes E_0(x, y, z)-style.
//
// Errors:
//   - errors.ErrConfiguration for invalid coords.
func Foreman(coords string) (*sym.Matrix, error) {
	if err := ValidateCoords(coords); err != nil {
		return nil, err
	}
	p := func(name string) sym.Expr { return symbols.Var(name, coords) }
	t := kinetic()
	k := [3]sym.Expr{}
	for i, s := range symbols.Momentum {
		k[i] = sym.Var(s)
	}

	var (
		ec = p("E_v").Add(p("E_0"))
		ac = p("gamma_0").Mul(t)
		l  = p("gamma_1").Add(p("gamma_2").Scale(4)).Mul(t).Neg()
		m  = p("gamma_1").Sub(p("gamma_2").Scale(2)).Mul(t).Neg()

		kappaTerm = p("kappa").Scale(3).Add(sym.Real(1))
		np        = p("gamma_3").Scale(3).Add(kappaTerm).Mul(t).Neg()
		nm        = p("gamma_3").Scale(3).Sub(kappaTerm).Mul(t).Neg()
	)

	h4, err := sym.NewMatrix(4, 4, func(i, j int) sym.Expr {
		switch {
		case i == 0 && j == 0:
			out := ec
			for _, ki := range k {
				out = out.Add(sym.Product(ki, ac, ki))
			}
			return out
		case i == 0:
			return sym.Product(p("P"), k[j-1]).Scale(1i)
		case j == 0:
			return sym.Product(k[i-1], p("P")).Scale(-1i)
		}

		return valence(k, i-1, j-1, l, m, np, nm)
	})
	if err != nil {
		return nil, errors.Wrap(err, "kp: foreman")
	}

	h8, err := sym.BlockDiag(h4, h4)
	if err != nil {
		return nil, err
	}
	so, err := sym.FromDense(spinOrbitPattern())
	if err != nil {
		return nil, err
	}
	if h8, err = h8.Add(so.Scale(p("Delta_0").Scale(complex(1.0/3.0, 0)))); err != nil {
		return nil, err
	}

	udag := molenkamp()
	u, err := cmatrix.ConjTranspose(udag)
	if err != nil {
		return nil, err
	}
	if h8, err = h8.MulDenseLeft(u); err != nil {
		return nil, err
	}
	if h8, err = h8.MulDenseRight(udag); err != nil {
		return nil, err
	}

	shift := p("E_v").Sub(p("Delta_0").Scale(complex(1.0/3.0, 0)))

	return h8.Map(func(i, j int, e sym.Expr) (sym.Expr, error) {
		if i == j && i >= 2 {
			return e.Add(shift), nil
		}
		return e, nil
	})
}

// valence is the (i, j) entry of the Γ15 block in (X, Y, Z).
func valence(k [3]sym.Expr, i, j int, l, m, np, nm sym.Expr) sym.Expr {
	if i != j {
		return sym.Product(k[i], np, k[j]).Add(sym.Product(k[j], nm, k[i]))
	}
	out := sym.Product(k[i], l, k[i])
	for n := range k {
		if n != i {
			out = out.Add(sym.Product(k[n], m, k[n]))
		}
	}

	return out
}
