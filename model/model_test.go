// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/kp"
	"github.com/katalvlaran/semicon/model"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/parameters"
	"github.com/katalvlaran/semicon/rotation"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

var c4z = rotation.Matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

// sigmaK returns σ·k.
func sigmaK(t *testing.T) *sym.Matrix {
	t.Helper()
	s, err := spin.Matrices(0.5)
	require.NoError(t, err)

	var h *sym.Matrix
	for i, k := range symbols.Momentum {
		pauli, err := cmatrix.Scale(s[i], 2)
		require.NoError(t, err)
		term, err := sym.FromDense(pauli)
		require.NoError(t, err)
		term = term.Scale(sym.Var(k))
		if h == nil {
			h = term
			continue
		}
		h, err = h.Add(term)
		require.NoError(t, err)
	}

	return h
}

func TestNew_SpinOptions(t *testing.T) {
	h := sigmaK(t)

	m, err := model.New(h, model.WithSpins(0.5))
	require.NoError(t, err)
	ops, ok := m.SpinOperators()
	require.True(t, ok)
	assert.Equal(t, 2, ops.Dim())

	plain, err := model.New(h)
	require.NoError(t, err)
	_, ok = plain.SpinOperators()
	assert.False(t, ok)

	_, err = model.New(h, model.WithSpins(0.5), model.WithSpinOperators(ops))
	require.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = model.New(h, model.WithSpins(1.5))
	require.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = model.New(h, model.WithSpins(0.3))
	require.ErrorIs(t, err, errors.ErrDomain)
}

func TestModel_RotateKeepsSigmaK(t *testing.T) {
	m, err := model.New(sigmaK(t), model.WithSpins(0.5))
	require.NoError(t, err)

	rotated, err := m.Rotate(c4z)
	require.NoError(t, err)
	assert.True(t, rotated.Hamiltonian().Equal(m.Hamiltonian(), 1e-12), "got\n%s", rotated)

	bare, err := m.Rotate(c4z, model.WithoutSpin())
	require.NoError(t, err)
	assert.False(t, bare.Hamiltonian().Equal(m.Hamiltonian(), 1e-12))

	// Acting on positions only leaves σ·k untouched.
	same, err := m.Rotate(c4z, model.WithActOn(symbols.Position), model.WithoutSpin())
	require.NoError(t, err)
	assert.True(t, same.Hamiltonian().Equal(m.Hamiltonian(), 0))

	_, err = m.Rotate(rotation.Matrix{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.ErrorIs(t, err, errors.ErrDomain)
}

func TestModel_Prettify(t *testing.T) {
	h, err := sym.MatrixFromRows([][]sym.Expr{{
		sym.Var(symbols.Momentum[0]).Scale(0.49999999999),
	}})
	require.NoError(t, err)
	m, err := model.New(h)
	require.NoError(t, err)

	p, err := m.Prettify(monomial.WithDecimals(3))
	require.NoError(t, err)
	want, err := sym.MatrixFromRows([][]sym.Expr{{sym.Var(symbols.Momentum[0]).Scale(0.5)}})
	require.NoError(t, err)
	assert.True(t, p.Hamiltonian().Equal(want, 0))
	assert.False(t, m.Hamiltonian().Equal(want, 0), "original is not modified")
}

func TestNewZincBlende_Configuration(t *testing.T) {
	zb, err := model.NewZincBlende(model.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, 8, zb.Hamiltonian().Rows())
	assert.Equal(t, bands.All, zb.Bands())
	assert.Equal(t, []string{kp.ComponentForeman}, zb.Components())

	small, err := model.NewZincBlende(
		model.WithBands("gamma_8v", "gamma_6c"),
		model.WithComponents(kp.ComponentForeman, kp.ComponentZeeman),
		model.WithParameterCoords("z"),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, small.Hamiltonian().Rows())
	assert.Equal(t, "z", small.Coords())
	ops, ok := small.SpinOperators()
	require.True(t, ok)
	assert.Equal(t, 6, ops.Dim())

	for _, opt := range []model.ZincBlendeOption{
		model.WithBands("gamma_5v"),
		model.WithBands(),
		model.WithComponents("rashba"),
		model.WithParameterCoords("zx"),
	} {
		_, err := model.NewZincBlende(opt)
		require.ErrorIs(t, err, errors.ErrConfiguration)
	}
}

func TestZincBlende_Parameters(t *testing.T) {
	zb, err := model.NewZincBlende(model.WithBankCache(parameters.NewBankCache()))
	require.NoError(t, err)

	p, err := zb.Parameters("GaAs", "")
	require.NoError(t, err)
	assert.Equal(t, "GaAs", p.Material)

	values := p.Bindings()
	for _, k := range symbols.Momentum {
		values[k.Name] = 0
	}
	h, err := zb.Hamiltonian().Eval(values)
	require.NoError(t, err)
	want, err := cmatrix.NewDiag(1.52, 1.52, 0, 0, 0, 0, -0.34, -0.34)
	require.NoError(t, err)
	ok, err := cmatrix.AllClose(h, want, cmatrix.WithATol(1e-12))
	require.NoError(t, err)
	assert.True(t, ok, "Γ-point of GaAs:\n%s", h)

	// With only the conduction band nothing couples to gamma_0.
	cb, err := model.NewZincBlende(model.WithBands("gamma_6c"), model.WithBankCache(parameters.NewBankCache()))
	require.NoError(t, err)
	q, err := cb.Parameters("InAs", "winkler")
	require.NoError(t, err)
	g0, ok := q.Get("gamma_0")
	require.True(t, ok)
	assert.InDelta(t, 1/0.0229, g0, 1e-9)

	_, err = zb.Parameters("Si", "")
	require.ErrorIs(t, err, errors.ErrConfiguration)
	_, err = zb.Parameters("GaAs", "nope")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestZincBlende_RotateKeepsConfiguration(t *testing.T) {
	zb, err := model.NewZincBlende(model.WithBands("gamma_6c", "gamma_8v"))
	require.NoError(t, err)

	r, err := rotation.AxisAngle([3]float64{0, 0, 1}, 0.3)
	require.NoError(t, err)
	rotated, err := zb.Rotate(r)
	require.NoError(t, err)
	assert.Equal(t, zb.Bands(), rotated.Bands())
	assert.False(t, rotated.Hamiltonian().Equal(zb.Hamiltonian(), 1e-12))

	back, err := rotated.Rotate(r.Transpose())
	require.NoError(t, err)
	assert.True(t, back.Hamiltonian().Equal(zb.Hamiltonian(), 1e-9))
}
