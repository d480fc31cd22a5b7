// SPDX-License-Identifier: MIT

package kp

import (
	"math"

	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

// couplingT returns the Γ7v–Γ8v coupling matrices T_x, T_y, T_z (2×4).
func couplingT() [3]*cmatrix.Dense {
	s3 := math.Sqrt(3)
	c := complex(1/(3*math.Sqrt2), 0)
	cy := complex(0, -1/(3*math.Sqrt2))
	cz := complex(math.Sqrt2/3, 0)

	return [3]*cmatrix.Dense{
		cmatrix.MustFromRows([][]complex128{
			{c * complex(-s3, 0), 0, c, 0},
			{0, -c, 0, c * complex(s3, 0)},
		}),
		cmatrix.MustFromRows([][]complex128{
			{cy * complex(s3, 0), 0, cy, 0},
			{0, cy, 0, cy * complex(s3, 0)},
		}),
		cmatrix.MustFromRows([][]complex128{
			{0, cz, 0, 0},
			{0, 0, cz, 0},
		}),
	}
}

// fieldSum returns Σ_i m_i·B_i as a symbolic matrix.
func fieldSum(ms [3]*cmatrix.Dense) (*sym.Matrix, error) {
	var out *sym.Matrix
	for i, m := range ms {
		term, err := sym.FromDense(m)
		if err != nil {
			return nil, err
		}
		term = term.Scale(sym.Var(symbols.Magnetic[i]))
		if out == nil {
			out = term
			continue
		}
		if out, err = out.Add(term); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Zeeman builds the 8×8 Zeeman term in Winkler's form:
//
//	Γ6c Γ6c:  ½ g_c μ_B σ·B
//	Γ8v Γ8v: −2 μ_B (κ J·B + q Σ_i J_i³ B_i)
//	Γ7v Γ8v: −3 μ_B κ T·B, Γ8v Γ7v its adjoint
//	Γ7v Γ7v: −2 κ μ_B σ·B
//
// Errors:
//   - errors.ErrConfiguration for invalid coords.
func Zeeman(coords string) (*sym.Matrix, error) {
	if err := ValidateCoords(coords); err != nil {
		return nil, err
	}
	p := func(name string) sym.Expr { return symbols.Var(name, coords) }
	muB := sym.Var(symbols.Constant(symbols.MuB))

	sigma, err := spin.Matrices(0.5)
	if err != nil {
		return nil, err
	}
	j, err := spin.Matrices(1.5)
	if err != nil {
		return nil, err
	}
	var pauli, cubes, tdag [3]*cmatrix.Dense
	t := couplingT()
	for i := range sigma {
		if pauli[i], err = cmatrix.Scale(sigma[i], 2); err != nil {
			return nil, err
		}
		sq, err := cmatrix.Mul(j[i], j[i])
		if err != nil {
			return nil, err
		}
		if cubes[i], err = cmatrix.Mul(sq, j[i]); err != nil {
			return nil, err
		}
		if tdag[i], err = cmatrix.ConjTranspose(t[i]); err != nil {
			return nil, err
		}
	}

	sigmaB, err := fieldSum(pauli)
	if err != nil {
		return nil, err
	}
	jB, err := fieldSum(j)
	if err != nil {
		return nil, err
	}
	j3B, err := fieldSum(cubes)
	if err != nil {
		return nil, err
	}
	tB, err := fieldSum(t)
	if err != nil {
		return nil, err
	}
	tdagB, err := fieldSum(tdag)
	if err != nil {
		return nil, err
	}

	b66 := sigmaB.Scale(sym.Product(p("g_c"), muB).Scale(0.5))
	b88, err := jB.Scale(p("kappa")).Add(j3B.Scale(p("q")))
	if err != nil {
		return nil, err
	}
	b88 = b88.Scale(muB.Scale(-2))
	b78 := tB.Scale(sym.Product(p("kappa"), muB).Scale(-3))
	b87 := tdagB.Scale(sym.Product(p("kappa"), muB).Scale(-3))
	b77 := sigmaB.Scale(sym.Product(p("kappa"), muB).Scale(-2))

	blocks := []struct {
		r, c int
		m    *sym.Matrix
	}{
		{0, 0, b66}, {2, 2, b88}, {2, 6, b87}, {6, 2, b78}, {6, 6, b77},
	}

	rows := make([][]sym.Expr, 8)
	for r := range rows {
		rows[r] = make([]sym.Expr, 8)
	}
	for _, b := range blocks {
		br, bc := b.m.Shape()
		for r := 0; r < br; r++ {
			for c := 0; c < bc; c++ {
				if rows[b.r+r][b.c+c], err = b.m.At(r, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return sym.MatrixFromRows(rows)
}
