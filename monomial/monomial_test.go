// SPDX-License-Identifier: MIT

package monomial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semicon/formula"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

func mustSympify(t *testing.T, src string) sym.Expr {
	t.Helper()
	e, err := formula.Sympify(src)
	require.NoError(t, err)

	return e
}

func TestDecompose_WithGenerators(t *testing.T) {
	e := mustSympify(t, "A * (x**2 + y) + B * x + C")
	x, y := symbols.Position[0], symbols.Position[1]

	got := monomial.Decompose(e, x, y)
	assert.Equal(t, []string{"1", "x", "x**2", "y"}, got.Keys())
	assert.Equal(t, "C", got["1"].Coeff.String())
	assert.Equal(t, "B", got["x"].Coeff.String())
	assert.Equal(t, "A", got["x**2"].Coeff.String())
	assert.Equal(t, "A", got["y"].Coeff.String())
}

func TestDecompose_NoGeneratorGoesToOne(t *testing.T) {
	got := monomial.Decompose(mustSympify(t, "2*A*B"), symbols.Momentum[0])
	require.Len(t, got, 1)
	assert.Equal(t, "2*A*B", got["1"].Coeff.String())
}

func TestDecompose_ResumIsIdentity(t *testing.T) {
	srcs := []string{
		"k_x**2*gamma_1 + 2*k_x*k_y*gamma_3 - k_z*k_x + 3",
		"(A + k_x)*(B - k_y)*(k_x + I*k_z)",
		"sqrt(3)/2*P*(k_x - I*k_y)",
	}
	for _, src := range srcs {
		e := mustSympify(t, src)
		assert.True(t, monomial.Decompose(e).Expr().Equal(e, 1e-14), src)
		mom := monomial.Decompose(e, symbols.Momentum[:]...)
		assert.True(t, mom.Expr().Equal(e, 1e-14), src)
	}

	// operator ordering survives when every symbol is a generator
	e := mustSympify(t, "x*k_x - k_x*x + E_0")
	assert.True(t, monomial.Decompose(e).Expr().Equal(e, 0))
}

func TestDecompose_NonCommutingCoefficientMovesAfterGenerators(t *testing.T) {
	kx := sym.Var(symbols.Momentum[0])
	e := kx.Mul(symbols.Var("gamma_0", "z")).Mul(kx)

	mom := monomial.Decompose(e, symbols.Momentum[:]...)
	require.Equal(t, []string{"k_x**2"}, mom.Keys())
	assert.True(t, mom["k_x**2"].Coeff.Equal(symbols.Var("gamma_0", "z"), 0))
	assert.False(t, mom.Expr().Equal(e, 1e-14), "interleaved order is not kept")

	assert.True(t, monomial.Decompose(e).Expr().Equal(e, 0))
}

func TestMap_EqualTreatsMissingAsZero(t *testing.T) {
	a := monomial.Decompose(mustSympify(t, "A*k_x + 0.0000000001*k_y"))
	b := monomial.Decompose(mustSympify(t, "A*k_x"))
	assert.True(t, a.Equal(b, 1e-9))
	assert.True(t, b.Equal(a, 1e-9))
	assert.False(t, a.Equal(b, 1e-12))
}

func TestDecomposeMatrix_Aggregates(t *testing.T) {
	m, err := sym.MatrixFromRows([][]sym.Expr{
		{mustSympify(t, "A*k_x"), mustSympify(t, "B")},
		{mustSympify(t, "C*k_x"), mustSympify(t, "0")},
	})
	require.NoError(t, err)

	mm, err := monomial.DecomposeMatrix(m, symbols.Momentum[0])
	require.NoError(t, err)
	require.Equal(t, []string{"1", "k_x"}, mm.Keys())

	want, err := sym.MatrixFromRows([][]sym.Expr{
		{mustSympify(t, "A"), sym.Expr{}},
		{mustSympify(t, "C"), sym.Expr{}},
	})
	require.NoError(t, err)
	assert.True(t, mm["k_x"].Coeff.Equal(want, 0))

	back, err := mm.Matrix()
	require.NoError(t, err)
	assert.True(t, back.Equal(m, 0))
	assert.True(t, mm.Equal(mm, 0))
}

func TestPrettify_Stages(t *testing.T) {
	noisy := sym.Var(symbols.Momentum[0]).Scale(complex(math.Sqrt(3)/2+1e-13, 1e-17)).
		Add(sym.Var(symbols.Momentum[1]).Scale(1e-16)).
		Add(sym.Real(0.123456))

	got := monomial.Prettify(noisy, monomial.WithZeroAtol(1e-12), monomial.WithExactForms())
	assert.Equal(t, "0.123456 + sqrt(3)/2*k_x", got.String())

	rounded := monomial.Prettify(noisy, monomial.WithDecimals(2), monomial.WithZeroAtol(1e-12))
	assert.Equal(t, "0.12 + 0.87*k_x", rounded.String())
}

func TestPrettifyMatrix(t *testing.T) {
	m, err := sym.MatrixFromRows([][]sym.Expr{{sym.Real(1e-20), sym.Real(0.5000000001)}})
	require.NoError(t, err)

	got, err := monomial.PrettifyMatrix(m, monomial.WithZeroAtol(1e-15), monomial.WithExactForms())
	require.NoError(t, err)
	assert.Equal(t, "[0, 1/2]\n", got.String())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { monomial.WithDecimals(-1) })
	assert.Panics(t, func() { monomial.WithZeroAtol(math.NaN()) })
}
