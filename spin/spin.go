// SPDX-License-Identifier: MIT

// Package spin builds angular-momentum operators.
//
// Matrices(s) returns (Sx, Sy, Sz) of dimension 2s+1 in the basis
// |s, s⟩, |s, s−1⟩, …, |s, −s⟩. With d_i = √(2i(s+1) − i(i+1)), i = 1..2s:
//
//	Sz = diag(s, s−1, …, −s)
//	Sx[i−1][i] = Sx[i][i−1] = d_i / 2
//	Sy[i−1][i] = −i·d_i / 2, Sy[i][i−1] = +i·d_i / 2
//
// so that [Sx, Sy] = i·Sz cyclically. Composite stacks several such triples
// block-diagonally; a negative entry selects the hole convention −S(|s|).
package spin

import (
	"math"

	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
)

// halfIntegerTol bounds |2s − round(2s)| for s to count as a half-integer.
const halfIntegerTol = 1e-9

// MaxSpin is the largest s Matrices accepts (dimension 2·MaxSpin+1).
const MaxSpin = 100

// Operators is the triple (Sx, Sy, Sz).
type Operators [3]*cmatrix.Dense

// Matrices returns the spin-s operators.
//
// Errors:
//   - errors.ErrDomain when s < 0, s is not finite, 2s is not integral, or
//     s exceeds MaxSpin.
func Matrices(s float64) (Operators, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return Operators{}, errors.Wrapf(errors.ErrDomain, "spin: s=%v must be a non-negative half-integer", s)
	}
	if s > MaxSpin {
		return Operators{}, errors.Wrapf(errors.ErrDomain, "spin: s=%v exceeds %d", s, MaxSpin)
	}
	twoS := math.Round(2 * s)
	if math.Abs(2*s-twoS) > halfIntegerTol {
		return Operators{}, errors.Wrapf(errors.ErrDomain, "spin: s=%v is not a half-integer", s)
	}
	s = twoS / 2
	dim := int(twoS) + 1

	sx, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return Operators{}, err
	}
	sy, _ := cmatrix.NewDense(dim, dim)
	sz, _ := cmatrix.NewDense(dim, dim)

	for k := 0; k < dim; k++ {
		if err = sz.Set(k, k, complex(s-float64(k), 0)); err != nil {
			return Operators{}, err
		}
	}
	for i := 1; i < dim; i++ {
		fi := float64(i)
		half := math.Sqrt(2*fi*(s+1)-fi*(fi+1)) / 2
		_ = sx.Set(i-1, i, complex(half, 0))
		_ = sx.Set(i, i-1, complex(half, 0))
		_ = sy.Set(i-1, i, complex(0, -half))
		_ = sy.Set(i, i-1, complex(0, half))
	}

	return Operators{sx, sy, sz}, nil
}

// Negate returns (−Sx, −Sy, −Sz).
func (o Operators) Negate() (Operators, error) {
	var out Operators
	for k, m := range o {
		n, err := cmatrix.Scale(m, -1)
		if err != nil {
			return Operators{}, err
		}
		out[k] = n
	}

	return out, nil
}

// Dim returns the matrix dimension.
func (o Operators) Dim() int {
	if o[0] == nil {
		return 0
	}

	return o[0].Rows()
}

// Induced restricts every operator to the given basis indices.
func (o Operators) Induced(idx []int) (Operators, error) {
	var out Operators
	for k, m := range o {
		sub, err := m.Induced(idx, idx)
		if err != nil {
			return Operators{}, err
		}
		out[k] = sub
	}

	return out, nil
}

// Composite returns the block-diagonal direct sum of the triples for spins.
// A negative spin contributes −Matrices(−s).
//
// Errors:
//   - errors.ErrDomain for an empty list or an invalid |s|.
func Composite(spins []float64) (Operators, error) {
	if len(spins) == 0 {
		return Operators{}, errors.Wrap(errors.ErrDomain, "spin: no subsystems")
	}

	parts := make([]Operators, len(spins))
	for i, s := range spins {
		ops, err := Matrices(math.Abs(s))
		if err != nil {
			return Operators{}, err
		}
		if s < 0 {
			if ops, err = ops.Negate(); err != nil {
				return Operators{}, err
			}
		}
		parts[i] = ops
	}

	var out Operators
	for k := 0; k < 3; k++ {
		blocks := make([]*cmatrix.Dense, len(parts))
		for i, p := range parts {
			blocks[i] = p[k]
		}
		bd, err := cmatrix.BlockDiag(blocks...)
		if err != nil {
			return Operators{}, err
		}
		out[k] = bd
	}

	return out, nil
}
