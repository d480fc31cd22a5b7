// SPDX-License-Identifier: MIT

package sym_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/sym"
)

var (
	kx = sym.Var(sym.NC("k_x"))
	ky = sym.Var(sym.NC("k_y"))
	x  = sym.Var(sym.NC("x"))
	A  = sym.Var(sym.C("A"))
	B  = sym.Var(sym.C("B"))
)

func TestExpr_CommutingFactorsMerge(t *testing.T) {
	ab := A.Mul(B)
	ba := B.Mul(A)
	assert.Equal(t, ab.String(), ba.String())
	assert.True(t, ab.Equal(ba, 0))

	sq := A.Mul(A)
	assert.Equal(t, "A**2", sq.String())
}

func TestExpr_NonCommutingOrderKept(t *testing.T) {
	kxX := kx.Mul(x)
	xKx := x.Mul(kx)
	assert.False(t, kxX.Equal(xKx, 0))
	assert.Equal(t, "k_x*x", kxX.String())
	assert.Equal(t, "x*k_x", xKx.String())

	// commuting parameters still move freely past operators
	assert.True(t, kx.Mul(A).Equal(A.Mul(kx), 0))
}

func TestExpr_ExpansionAndCancellation(t *testing.T) {
	// (A + k_x)(A − k_x) = A² − k_x²
	p := A.Add(kx).Mul(A.Sub(kx))
	want := A.Mul(A).Sub(kx.Mul(kx))
	assert.True(t, p.Equal(want, 0))

	assert.True(t, A.Sub(A).IsZero())
	assert.Equal(t, "0", A.Sub(A).String())
}

func TestExpr_LaurentMonomials(t *testing.T) {
	m0 := sym.Var(sym.C("m_0"))
	inv, err := m0.Inverse()
	require.NoError(t, err)
	one := m0.Mul(inv)
	c, ok := one.AsConst()
	require.True(t, ok)
	assert.Equal(t, complex128(1), c)

	_, err = A.Add(B).Inverse()
	require.ErrorIs(t, err, sym.ErrNotMonomial)

	// x·x⁻¹ cancels even between non-commuting neighbours
	xInv, err := x.Pow(-1)
	require.NoError(t, err)
	assert.True(t, kx.Mul(x).Mul(xInv).Mul(kx).Equal(kx.Mul(kx), 0))
}

func TestExpr_SubsIsSimultaneous(t *testing.T) {
	e := kx.Mul(kx).Add(ky.Scale(2))
	got, err := e.Subs(map[sym.Symbol]sym.Expr{
		sym.NC("k_x"): ky,
		sym.NC("k_y"): kx.Neg(),
	})
	require.NoError(t, err)

	want := ky.Mul(ky).Sub(kx.Scale(2))
	assert.True(t, got.Equal(want, 0), got.String())
}

func TestExpr_SubsRejectsInverseOfSum(t *testing.T) {
	inv, err := A.Inverse()
	require.NoError(t, err)
	_, err = inv.Subs(map[sym.Symbol]sym.Expr{sym.C("A"): A.Add(B)})
	require.ErrorIs(t, err, sym.ErrNotMonomial)
}

func TestExpr_Dagger(t *testing.T) {
	e := kx.Mul(x).Scale(1i)
	d := e.Dagger()
	assert.True(t, d.Equal(x.Mul(kx).Scale(-1i), 0))
}

func TestExpr_EvalAndSymbols(t *testing.T) {
	e0 := sym.Var(sym.Func("E_0", "x", "y", "z"))
	e := e0.Mul(kx).Add(A)

	syms := e.Symbols()
	require.Len(t, syms, 3)
	assert.Equal(t, "A", syms[0].String())
	assert.Equal(t, "E_0(x, y, z)", syms[1].String())

	v, err := e.Eval(map[string]complex128{"E_0": 2, "k_x": 3, "A": 1i})
	require.NoError(t, err)
	assert.Equal(t, 6+1i, v)

	_, err = e.Eval(map[string]complex128{"A": 1})
	require.ErrorIs(t, err, sym.ErrUnboundSymbol)

	inv, err := A.Inverse()
	require.NoError(t, err)
	_, err = inv.Eval(map[string]complex128{"A": 0})
	require.ErrorIs(t, err, sym.ErrNonFinite)
}

func TestExactForm(t *testing.T) {
	cases := []struct {
		v    float64
		text string
		ok   bool
	}{
		{math.Sqrt(3) / 2, "sqrt(3)/2", true},
		{-1.0 / 3, "-1/3", true},
		{2 * math.Sqrt(2) / 3, "2*sqrt(2)/3", true},
		{4, "4", true},
		{0, "0", true},
		{math.Pi, "", false},
	}
	for _, tc := range cases {
		_, text, ok := sym.ExactForm(tc.v, 1e-12)
		assert.Equal(t, tc.ok, ok, "v=%v", tc.v)
		assert.Equal(t, tc.text, text, "v=%v", tc.v)
	}
}

func TestExpr_StringCoefficients(t *testing.T) {
	assert.Equal(t, "sqrt(3)/2*k_x", kx.Scale(complex(math.Sqrt(3)/2, 0)).String())
	assert.Equal(t, "-I*k_x", kx.Scale(-1i).String())
	assert.Equal(t, "(1 + 2*I)", sym.Const(1+2i).String())
	assert.Equal(t, "A - B", A.Sub(B).String())
}

func TestMatrix_MulDaggerInduced(t *testing.T) {
	m, err := sym.MatrixFromRows([][]sym.Expr{
		{A, kx.Scale(1i)},
		{kx.Scale(-1i), B},
	})
	require.NoError(t, err)
	assert.True(t, m.Dagger().Equal(m, 0)) // Hermitian

	u := cmatrix.MustFromRows([][]complex128{{0, 1}, {1, 0}})
	left, err := m.MulDenseLeft(u)
	require.NoError(t, err)
	swapped, err := left.MulDenseRight(u)
	require.NoError(t, err)
	e, err := swapped.At(0, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(B, 0))

	sub, err := m.Induced([]int{1}, []int{1})
	require.NoError(t, err)
	e, err = sub.At(0, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(B, 0))

	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)

	sq, err := m.Mul(m)
	require.NoError(t, err)
	e, err = sq.At(0, 0)
	require.NoError(t, err)
	assert.True(t, e.Equal(A.Mul(A).Add(kx.Mul(kx)), 1e-15))
}

func TestMatrix_BlockDiagAndEval(t *testing.T) {
	a, err := sym.MatrixFromRows([][]sym.Expr{{A}})
	require.NoError(t, err)
	b, err := sym.MatrixFromRows([][]sym.Expr{{B}})
	require.NoError(t, err)
	bd, err := sym.BlockDiag(a, b)
	require.NoError(t, err)

	d, err := bd.Eval(map[string]complex128{"A": 1, "B": 2})
	require.NoError(t, err)
	want := cmatrix.MustFromRows([][]complex128{{1, 0}, {0, 2}})
	ok, err := cmatrix.AllClose(d, want)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.Add(bd)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}
