// SPDX-License-Identifier: MIT

package rotation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/formula"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/rotation"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

var rz90 = rotation.Matrix{
	{0, -1, 0},
	{1, 0, 0},
	{0, 0, 1},
}

func sympify(t *testing.T, src string) sym.Expr {
	t.Helper()
	e, err := formula.Sympify(src)
	require.NoError(t, err)

	return e
}

func TestValidate(t *testing.T) {
	require.NoError(t, rotation.Validate(rz90))

	improper := rotation.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}
	require.ErrorIs(t, rotation.Validate(improper), errors.ErrDomain)

	sheared := rotation.Matrix{{2, 0, 0}, {0, 0.5, 0}, {0, 0, 1}} // det = 1
	require.ErrorIs(t, rotation.Validate(sheared), errors.ErrDomain)

	nan := rotation.Matrix{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.ErrorIs(t, rotation.Validate(nan), errors.ErrDomain)

	// a looser tolerance admits a slightly perturbed matrix
	noisy := rz90
	noisy[2][2] += 1e-6
	require.ErrorIs(t, rotation.Validate(noisy), errors.ErrDomain)
	require.NoError(t, rotation.Validate(noisy, rotation.WithTolerance(1e-5)))
}

func TestRotationVector(t *testing.T) {
	n, err := rotation.RotationVector(rz90)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, math.Pi / 2}, n[:], 1e-12)

	half := rotation.Matrix{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	n, err = rotation.RotationVector(half)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Pi, 0, 0}, n[:], 1e-12)

	id := rotation.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	n, err = rotation.RotationVector(id)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, n[:], 1e-15)

	axis := [3]float64{1, 2, 2}
	r, err := rotation.AxisAngle(axis, 1.1)
	require.NoError(t, err)
	n, err = rotation.RotationVector(r)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.1 / 3, 2.2 / 3, 2.2 / 3}, n[:], 1e-12)

	_, err = rotation.AxisAngle([3]float64{}, 1)
	require.ErrorIs(t, err, errors.ErrDomain)
}

func TestSymbols_Rz90(t *testing.T) {
	e := sympify(t, "k_x + 2*k_y + x*B_y")
	got, err := rotation.Symbols(e, rz90)
	require.NoError(t, err)

	// k_x ↦ −k_y, k_y ↦ k_x, x ↦ −y, B_y ↦ B_x, all at once
	want := sympify(t, "-k_y + 2*k_x - y*B_x")
	assert.True(t, got.Equal(want, 0), got.String())

	onlyK, err := rotation.Symbols(e, rz90, rotation.WithActOn(symbols.Momentum))
	require.NoError(t, err)
	assert.True(t, onlyK.Equal(sympify(t, "-k_y + 2*k_x + x*B_y"), 0), onlyK.String())
}

func TestRotate_InverseRestores(t *testing.T) {
	e := sympify(t, "gamma_1*(k_x**2 + k_y**2) + gamma_2*k_x*k_y*k_z + x*k_y - k_y*x + B_x*B_z")

	r, err := rotation.AxisAngle([3]float64{1, 1, 0}, 0.7)
	require.NoError(t, err)
	for _, rot := range []rotation.Matrix{rz90, r} {
		fwd, err := rotation.Rotate(e, rot)
		require.NoError(t, err)
		back, err := rotation.Rotate(fwd, rot.Transpose())
		require.NoError(t, err)
		assert.True(t, back.Equal(e, 1e-12), back.String())
	}
}

func TestRotate_ImproperRejected(t *testing.T) {
	_, err := rotation.Rotate(sympify(t, "k_x"), rotation.Matrix{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.ErrorIs(t, err, errors.ErrDomain)
}

func TestRotateMatrix_SpinDotMomentumIsInvariant(t *testing.T) {
	h, err := sym.MatrixFromRows([][]sym.Expr{
		{sympify(t, "k_z"), sympify(t, "k_x - I*k_y")},
		{sympify(t, "k_x + I*k_y"), sympify(t, "-k_z")},
	}) // σ·k
	require.NoError(t, err)
	ops, err := spin.Matrices(0.5)
	require.NoError(t, err)

	r, err := rotation.AxisAngle([3]float64{0.3, -1, 2}, 2.2)
	require.NoError(t, err)
	got, err := rotation.RotateMatrix(h, r, rotation.WithSpinOperators(ops))
	require.NoError(t, err)

	clean, err := monomial.PrettifyMatrix(got, monomial.WithZeroAtol(1e-12))
	require.NoError(t, err)
	assert.True(t, clean.Equal(h, 1e-12), clean.String())

	// without spin conjugation the same matrix is not invariant
	noSpin, err := rotation.RotateMatrix(h, r)
	require.NoError(t, err)
	assert.False(t, noSpin.Equal(h, 1e-6))
}

func TestRotateMatrix_ShapeMismatch(t *testing.T) {
	h, err := sym.MatrixFromRows([][]sym.Expr{{sympify(t, "k_x")}})
	require.NoError(t, err)
	ops, err := spin.Matrices(0.5)
	require.NoError(t, err)
	_, err = rotation.RotateMatrix(h, rz90, rotation.WithSpinOperators(ops))
	require.Error(t, err)
}
