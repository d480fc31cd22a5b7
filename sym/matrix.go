// SPDX-License-Identifier: MIT

package sym

import (
	"strings"

	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
)

// Matrix is an immutable r×c matrix of expressions in row-major order.
type Matrix struct {
	r, c int
	data []Expr
}

// NewMatrix builds an r×c matrix whose (i, j) entry is f(i, j).
// A nil f yields the zero matrix.
func NewMatrix(r, c int, f func(i, j int) Expr) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, cmatrix.ErrInvalidDimensions
	}
	m := &Matrix{r: r, c: c, data: make([]Expr, r*c)}
	if f != nil {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				m.data[i*c+j] = f(i, j)
			}
		}
	}

	return m, nil
}

// MatrixFromRows builds a matrix from a row-major literal.
func MatrixFromRows(rows [][]Expr) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, cmatrix.ErrInvalidDimensions
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, errors.Wrapf(cmatrix.ErrRaggedRows, "sym: row %d", i)
		}
	}

	return NewMatrix(len(rows), c, func(i, j int) Expr { return rows[i][j] })
}

// FromDense lifts a numeric matrix to constant expressions.
func FromDense(d *cmatrix.Dense) (*Matrix, error) {
	if err := cmatrix.ValidateNotNil(d); err != nil {
		return nil, err
	}
	raw := d.RawRowMajor()
	r, c := d.Shape()

	return NewMatrix(r, c, func(i, j int) Expr { return Const(raw[i*c+j]) })
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.r, m.c }

// At returns entry (i, j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (Expr, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return Expr{}, errors.Wrapf(cmatrix.ErrOutOfRange, "sym: Matrix.At(%d,%d)", i, j)
	}

	return m.data[i*m.c+j], nil
}

// Map returns the matrix with f applied to every entry.
func (m *Matrix) Map(f func(i, j int, e Expr) (Expr, error)) (*Matrix, error) {
	out := &Matrix{r: m.r, c: m.c, data: make([]Expr, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := f(i, j, m.data[i*m.c+j])
			if err != nil {
				return nil, err
			}
			out.data[i*m.c+j] = v
		}
	}

	return out, nil
}

// Add returns m + o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if o == nil || m.r != o.r || m.c != o.c {
		return nil, errors.Wrap(cmatrix.ErrDimensionMismatch, "sym: Matrix.Add")
	}

	return m.Map(func(i, j int, e Expr) (Expr, error) { return e.Add(o.data[i*o.c+j]), nil })
}

// Mul returns the matrix product m·o; entry products keep m's factors first.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if o == nil || m.c != o.r {
		return nil, errors.Wrap(cmatrix.ErrDimensionMismatch, "sym: Matrix.Mul")
	}

	return NewMatrix(m.r, o.c, func(i, j int) Expr {
		parts := make([]Expr, 0, m.c)
		for k := 0; k < m.c; k++ {
			parts = append(parts, m.data[i*m.c+k].Mul(o.data[k*o.c+j]))
		}

		return Sum(parts...)
	})
}

// Scale returns e·m (e multiplies from the left).
func (m *Matrix) Scale(e Expr) *Matrix {
	out, _ := m.Map(func(_, _ int, x Expr) (Expr, error) { return e.Mul(x), nil })

	return out
}

// MulDenseLeft returns d·m for a numeric d.
func (m *Matrix) MulDenseLeft(d *cmatrix.Dense) (*Matrix, error) {
	if err := cmatrix.ValidateNotNil(d); err != nil {
		return nil, err
	}
	dr, dc := d.Shape()
	if dc != m.r {
		return nil, errors.Wrap(cmatrix.ErrDimensionMismatch, "sym: Matrix.MulDenseLeft")
	}
	raw := d.RawRowMajor()

	return NewMatrix(dr, m.c, func(i, j int) Expr {
		parts := make([]Expr, 0, dc)
		for k := 0; k < dc; k++ {
			if v := raw[i*dc+k]; v != 0 {
				parts = append(parts, m.data[k*m.c+j].Scale(v))
			}
		}

		return Sum(parts...)
	})
}

// MulDenseRight returns m·d for a numeric d.
func (m *Matrix) MulDenseRight(d *cmatrix.Dense) (*Matrix, error) {
	if err := cmatrix.ValidateNotNil(d); err != nil {
		return nil, err
	}
	dr, dc := d.Shape()
	if m.c != dr {
		return nil, errors.Wrap(cmatrix.ErrDimensionMismatch, "sym: Matrix.MulDenseRight")
	}
	raw := d.RawRowMajor()

	return NewMatrix(m.r, dc, func(i, j int) Expr {
		parts := make([]Expr, 0, dr)
		for k := 0; k < dr; k++ {
			if v := raw[k*dc+j]; v != 0 {
				parts = append(parts, m.data[i*m.c+k].Scale(v))
			}
		}

		return Sum(parts...)
	})
}

// Dagger returns the conjugate transpose with entry-wise Expr.Dagger.
func (m *Matrix) Dagger() *Matrix {
	out, _ := NewMatrix(m.c, m.r, func(i, j int) Expr { return m.data[j*m.c+i].Dagger() })

	return out
}

// Subs applies Expr.Subs to every entry.
func (m *Matrix) Subs(s map[Symbol]Expr) (*Matrix, error) {
	return m.Map(func(_, _ int, e Expr) (Expr, error) { return e.Subs(s) })
}

// Induced returns the submatrix selected by the index lists.
func (m *Matrix) Induced(rows, cols []int) (*Matrix, error) {
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return nil, errors.Wrapf(cmatrix.ErrOutOfRange, "sym: Matrix.Induced row %d", i)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, errors.Wrapf(cmatrix.ErrOutOfRange, "sym: Matrix.Induced col %d", j)
		}
	}

	return NewMatrix(len(rows), len(cols), func(i, j int) Expr { return m.data[rows[i]*m.c+cols[j]] })
}

// BlockDiag returns diag(blocks...). Off-diagonal blocks are zero.
func BlockDiag(blocks ...*Matrix) (*Matrix, error) {
	if len(blocks) == 0 {
		return nil, cmatrix.ErrInvalidDimensions
	}
	r, c := 0, 0
	for _, b := range blocks {
		if b == nil {
			return nil, cmatrix.ErrNilMatrix
		}
		r += b.r
		c += b.c
	}
	out, err := NewMatrix(r, c, nil)
	if err != nil {
		return nil, err
	}
	r0, c0 := 0, 0
	for _, b := range blocks {
		for i := 0; i < b.r; i++ {
			for j := 0; j < b.c; j++ {
				out.data[(r0+i)*c+c0+j] = b.data[i*b.c+j]
			}
		}
		r0 += b.r
		c0 += b.c
	}

	return out, nil
}

// Symbols returns the distinct symbols over all entries, sorted.
func (m *Matrix) Symbols() []Symbol {
	return Sum(m.data...).Symbols()
}

// Eval evaluates every entry numerically.
func (m *Matrix) Eval(values map[string]complex128) (*cmatrix.Dense, error) {
	out, err := cmatrix.NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := m.data[i*m.c+j].Eval(values)
			if err != nil {
				return nil, errors.Wrapf(err, "sym: entry (%d,%d)", i, j)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Equal compares entry-wise with Expr.Equal.
func (m *Matrix) Equal(o *Matrix, atol float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k], atol) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
