// SPDX-License-Identifier: MIT
// Package cmatrix: constructors and comparison facades.
//
// Purpose:
//   - Provide thin entry points for building matrices from literals.
//   - Keep closeness checks (AllClose, IsHermitian) in one place so callers
//     share a single numeric policy.

package cmatrix

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/semicon/errors"
)

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewDiag returns the square matrix with d on its diagonal.
func NewDiag(d ...complex128) (*Dense, error) {
	m, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if err = m.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromRows builds a Dense from a row-major literal.
//
// Errors:
//   - ErrInvalidDimensions for an empty literal; ErrRaggedRows for unequal rows;
//     ErrNaNInf for non-finite entries.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, errors.Wrapf(ErrRaggedRows, "FromRows: row %d", i)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// MustFromRows is FromRows for package-level literals; it panics on error.
func MustFromRows(rows [][]complex128) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (false, nil) when some element differs and an error for nil or
// mismatched operands.
func AllClose(a, b *Dense, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	o := gatherOptions(opts...)
	for k := range a.data {
		if cmplx.Abs(a.data[k]-b.data[k]) > o.atol+o.rtol*cmplx.Abs(b.data[k]) {
			return false, nil
		}
	}

	return true, nil
}

// IsHermitian reports m == m† within the absolute tolerance.
func IsHermitian(m *Dense, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf("IsHermitian", err)
	}

	o := gatherOptions(opts...)
	for i := 0; i < m.r; i++ {
		for j := i; j < m.c; j++ {
			if cmplx.Abs(m.at(i, j)-cmplx.Conj(m.at(j, i))) > o.atol {
				return false, nil
			}
		}
	}

	return true, nil
}

// MaxAbs returns max |m[i,j]|; handy for residual checks in tests.
func MaxAbs(m *Dense) float64 {
	best := 0.0
	for _, v := range m.data {
		best = math.Max(best, cmplx.Abs(v))
	}

	return best
}
