// SPDX-License-Identifier: MIT

package kp

import (
	"math"

	"github.com/katalvlaran/semicon/cmatrix"
)

// orbital is a vector in the (S, X, Y, Z) orbital space.
type orbital [4]complex128

func (o orbital) add(p orbital, c complex128) orbital {
	for i := range o {
		o[i] += c * p[i]
	}

	return o
}

func (o orbital) scale(c complex128) orbital {
	for i := range o {
		o[i] *= c
	}

	return o
}

// Orbitals with the X, Y, Z phase convention i|X>, i|Y>, i|Z>.
var (
	orbS = orbital{1, 0, 0, 0}
	orbX = orbital{0, 1i, 0, 0}
	orbY = orbital{0, 0, 1i, 0}
	orbZ = orbital{0, 0, 0, 1i}
	orb0 = orbital{}

	orbPlus  = orbX.add(orbY, 1i)  // X + iY
	orbMinus = orbX.add(orbY, -1i) // X − iY
)

// spinor places up and down orbital parts into the 8-dimensional
// spin ⊗ orbital space and scales by c.
func spinor(up, down orbital, c complex128) [8]complex128 {
	var v [8]complex128
	for i := 0; i < 4; i++ {
		v[i] = c * up[i]
		v[4+i] = c * down[i]
	}

	return v
}

// molenkamp returns the matrix whose columns are the Γ6c, Γ8v, Γ7v basis
// states expressed in spin ⊗ (S, X, Y, Z).
func molenkamp() *cmatrix.Dense {
	s2, s3, s6 := complex(math.Sqrt2, 0), complex(math.Sqrt(3), 0), complex(math.Sqrt(6), 0)

	basis := [8][8]complex128{
		spinor(orbS, orb0, 1),
		spinor(orb0, orbS, 1),
		spinor(orbPlus, orb0, 1/s2),
		spinor(orbZ.scale(-2), orbPlus, 1/s6),
		spinor(orbMinus, orbZ.scale(2), -1/s6),
		spinor(orb0, orbMinus, -1/s2),
		spinor(orbZ, orbPlus, 1/s3),
		spinor(orbMinus, orbZ.scale(-1), 1/s3),
	}

	rows := make([][]complex128, 8)
	for r := range rows {
		rows[r] = make([]complex128, 8)
		for n := range basis {
			rows[r][n] = basis[n][r]
		}
	}

	return cmatrix.MustFromRows(rows)
}

// spinOrbitPattern is the spin-orbit coupling in spin ⊗ (S, X, Y, Z) in
// units of Δ_0/3.
func spinOrbitPattern() *cmatrix.Dense {
	m, _ := cmatrix.NewDense(8, 8)
	for _, e := range []struct {
		i, j int
		v    complex128
	}{
		{2, 1, 1i}, {7, 1, 1}, {1, 2, -1i}, {7, 2, 1i},
		{5, 3, -1}, {6, 3, -1i}, {3, 5, -1}, {6, 5, -1i},
		{3, 6, 1i}, {5, 6, 1i}, {1, 7, 1}, {2, 7, -1i},
	} {
		_ = m.Set(e.i, e.j, e.v)
	}

	return m
}
