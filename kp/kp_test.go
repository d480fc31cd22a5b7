// SPDX-License-Identifier: MIT

package kp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/kp"
	"github.com/katalvlaran/semicon/rotation"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

// values binds every symbol the components use.
func values() map[string]complex128 {
	return map[string]complex128{
		"E_0": 1.5, "E_v": 0.1, "Delta_0": 0.3, "P": 0.9,
		"gamma_0": 2, "gamma_1": 6.8, "gamma_2": 2.1, "gamma_3": 2.9,
		"kappa": 1.2, "g_c": -0.44, "q": 0.05,
		"hbar": 197.3269804, "m_0": 0.51099895e6, "mu_B": 1,
		"k_x": 0.3, "k_y": -0.7, "k_z": 0.5,
		"B_x": 0.2, "B_y": 0.4, "B_z": -0.6,
	}
}

func TestValidateCoords(t *testing.T) {
	for _, ok := range []string{"", "x", "z", "xy", "xz", "xyz"} {
		assert.NoError(t, kp.ValidateCoords(ok), ok)
	}
	for _, bad := range []string{"yx", "zyx", "a", "xw"} {
		assert.ErrorIs(t, kp.ValidateCoords(bad), errors.ErrConfiguration, bad)
	}
}

func TestComponents_Hermitian(t *testing.T) {
	for _, name := range kp.Components() {
		for _, coords := range []string{"", "z", "xyz"} {
			h, err := kp.Component(name, coords)
			require.NoError(t, err)
			assert.Equal(t, 8, h.Rows())
			assert.True(t, h.Dagger().Equal(h, 1e-12), "%s(%q) is not Hermitian", name, coords)
		}
	}
}

func TestComponent_Cached(t *testing.T) {
	a, err := kp.Component(kp.ComponentForeman, "xyz")
	require.NoError(t, err)
	b, err := kp.Component(kp.ComponentForeman, "xyz")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = kp.Component("dresselhaus", "")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestForeman_ParameterDependence(t *testing.T) {
	plain, err := kp.Foreman("")
	require.NoError(t, err)
	assert.Contains(t, plain.Symbols(), sym.C("gamma_1"))
	for _, k := range symbols.Momentum {
		assert.Contains(t, plain.Symbols(), k)
	}

	varied, err := kp.Foreman("xyz")
	require.NoError(t, err)
	assert.Contains(t, varied.Symbols(), sym.Func("gamma_1", "x", "y", "z"))
	assert.NotContains(t, varied.Symbols(), sym.C("gamma_1"))

	z, err := kp.Zeeman("")
	require.NoError(t, err)
	for _, b := range symbols.Magnetic {
		assert.Contains(t, z.Symbols(), b)
	}
}

func TestForeman_GammaPointSpectrum(t *testing.T) {
	h, err := kp.Foreman("")
	require.NoError(t, err)
	zero := map[sym.Symbol]sym.Expr{}
	for _, k := range symbols.Momentum {
		zero[k] = sym.Expr{}
	}
	h0, err := h.Subs(zero)
	require.NoError(t, err)

	got, err := h0.Eval(values())
	require.NoError(t, err)
	want, err := cmatrix.NewDiag(1.6, 1.6, 0.1, 0.1, 0.1, 0.1, -0.2, -0.2)
	require.NoError(t, err)
	ok, err := cmatrix.AllClose(got, want, cmatrix.WithATol(1e-12))
	require.NoError(t, err)
	assert.True(t, ok, "Γ-point:\n%s", got)
}

func TestHamiltonian_BandSubsets(t *testing.T) {
	tests := []struct {
		bands []string
		dim   int
	}{
		{[]string{"gamma_6c"}, 2},
		{[]string{"gamma_8v"}, 4},
		{[]string{"gamma_7v"}, 2},
		{[]string{"gamma_6c", "gamma_8v"}, 6},
		{[]string{"gamma_6c", "gamma_7v"}, 4},
		{[]string{"gamma_8v", "gamma_7v"}, 6},
		{[]string{"gamma_6c", "gamma_8v", "gamma_7v"}, 8},
	}
	full, err := kp.Hamiltonian("", []string{kp.ComponentForeman, kp.ComponentZeeman}, bands.All)
	require.NoError(t, err)

	for _, tc := range tests {
		b := bands.MustCanonical(tc.bands...)
		h, err := kp.Hamiltonian("", []string{kp.ComponentForeman, kp.ComponentZeeman}, b)
		require.NoError(t, err)
		r, c := h.Shape()
		assert.Equal(t, tc.dim, r)
		assert.Equal(t, tc.dim, c)

		want, err := full.Induced(b.Indices(), b.Indices())
		require.NoError(t, err)
		assert.True(t, want.Equal(h, 0))

		ops, err := kp.SpinOperators(b)
		require.NoError(t, err)
		assert.Equal(t, tc.dim, ops.Dim())
	}

	_, err = kp.Hamiltonian("", nil, bands.All)
	require.ErrorIs(t, err, errors.ErrConfiguration)
	_, err = kp.Hamiltonian("", []string{kp.ComponentForeman}, bands.Set{})
	require.ErrorIs(t, err, errors.ErrConfiguration)
	_, err = kp.Hamiltonian("yx", []string{kp.ComponentForeman}, bands.All)
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

// The 8-band model has full cubic symmetry: rotating momenta, fields and
// spin together leaves it unchanged.
func TestHamiltonian_CubicInvariance(t *testing.T) {
	h, err := kp.Hamiltonian("", []string{kp.ComponentForeman, kp.ComponentZeeman}, bands.All)
	require.NoError(t, err)
	ops, err := kp.SpinOperators(bands.All)
	require.NoError(t, err)
	want, err := h.Eval(values())
	require.NoError(t, err)

	c3, err := rotation.AxisAngle([3]float64{1, 1, 1}, 2*math.Pi/3)
	require.NoError(t, err)
	for name, r := range map[string]rotation.Matrix{
		"C4z": {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		"C3":  c3,
	} {
		rotated, err := rotation.RotateMatrix(h, r, rotation.WithSpinOperators(ops))
		require.NoError(t, err, name)
		got, err := rotated.Eval(values())
		require.NoError(t, err, name)

		ok, err := cmatrix.AllClose(got, want, cmatrix.WithATol(1e-9))
		require.NoError(t, err)
		assert.True(t, ok, "%s breaks cubic symmetry", name)
	}
}

func TestHamiltonian_RejectsNonCanonicalBands(t *testing.T) {
	for _, b := range []bands.Set{
		{"gamma_9x"},
		{bands.Gamma6c, bands.Gamma6c, bands.Gamma6c},
		{bands.Gamma7v, bands.Gamma8v},
	} {
		_, err := kp.Hamiltonian("", []string{kp.ComponentForeman}, b)
		require.ErrorIs(t, err, errors.ErrConfiguration, "Hamiltonian %v", b)
		_, err = kp.SpinOperators(b)
		require.ErrorIs(t, err, errors.ErrConfiguration, "SpinOperators %v", b)
	}
}
