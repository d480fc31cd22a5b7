// SPDX-License-Identifier: MIT
// Package cmatrix provides operations on complex dense matrices: element-wise
// addition and subtraction, matrix product, scaling, conjugate transpose,
// commutator and block-diagonal composition. All functions validate fail-fast
// and return wrapped sentinels on dimension mismatches. Operands are never
// mutated; every kernel allocates a fresh result.

package cmatrix

import (
	"math/cmplx"

	"github.com/katalvlaran/semicon/errors"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opDagger     = "ConjTranspose"
	opCommutator = "Commutator"
	opBlockDiag  = "BlockDiag"
	opExpm       = "Expm"
	opTrace      = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := mustDense(a.r, a.c)
	for k := range res.data {
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible.
//   - Stage 2: i→k→j loop order over the flat buffers (cache-friendly on row-major data).
//
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := mustDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				res.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// ConjTranspose returns m† (conjugate transpose).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDagger, err)
	}

	res := mustDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Commutator returns [a, b] = a·b − b·a for square operands of equal size.
func Commutator(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}

	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}

	return Sub(ab, ba)
}

// BlockDiag returns the direct sum diag(blocks[0], blocks[1], ...).
// Blocks need not be square.
//
// Errors:
//   - ErrInvalidDimensions when no blocks are given; ErrNilMatrix for a nil block.
func BlockDiag(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opBlockDiag, ErrInvalidDimensions)
	}

	rows, cols := 0, 0
	for _, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		rows += b.r
		cols += b.c
	}

	res := mustDense(rows, cols)
	r0, c0 := 0, 0
	for _, b := range blocks {
		for i := 0; i < b.r; i++ {
			copy(res.data[(r0+i)*cols+c0:(r0+i)*cols+c0+b.c], b.data[i*b.c:(i+1)*b.c])
		}
		r0 += b.r
		c0 += b.c
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var s complex128
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}

	return s, nil
}

// LinearCombination returns Σ coeffs[k]·ms[k] for same-shaped matrices.
// Used to build n·S from a rotation vector and spin operators.
func LinearCombination(coeffs []complex128, ms []*Dense) (*Dense, error) {
	if len(coeffs) != len(ms) || len(ms) == 0 {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}

	res, err := Scale(ms[0], coeffs[0])
	if err != nil {
		return nil, err
	}
	for k := 1; k < len(ms); k++ {
		if err = ValidateBinarySameShape(res, ms[k]); err != nil {
			return nil, matrixErrorf(opAdd, err)
		}
		for q := range res.data {
			res.data[q] += coeffs[k] * ms[k].data[q]
		}
	}

	return res, nil
}
