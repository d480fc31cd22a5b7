// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/semicon/cmatrix"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
)

// Matrix is a 3×3 real matrix in row-major order, R[i][j].
type Matrix [3][3]float64

// Transpose returns Rᵀ, the inverse of a proper rotation.
func (r Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = r[i][j]
		}
	}

	return t
}

func (r Matrix) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	})
}

// AxisAngle returns the rotation by angle (radians) about axis
// (Rodrigues' formula). The axis is normalised.
//
// Errors:
//   - errors.ErrDomain for a zero or non-finite axis.
func AxisAngle(axis [3]float64, angle float64) (Matrix, error) {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Matrix{}, errors.Wrapf(errors.ErrDomain, "rotation: invalid axis %v / angle %v", axis, angle)
	}
	x, y, z := axis[0]/n, axis[1]/n, axis[2]/n
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	return Matrix{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}, nil
}

// Validate checks that r is a proper rotation: finite entries,
// det r = +1 and rᵀr = I within the tolerance. An improper rotation
// (det = −1) is rejected even though |det| = 1.
//
// Errors:
//   - errors.ErrDomain on any violation.
func Validate(r Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(r[i][j]) || math.IsInf(r[i][j], 0) {
				return errors.Wrapf(errors.ErrDomain, "rotation: R[%d][%d] is not finite", i, j)
			}
		}
	}

	d := r.dense()
	if det := mat.Det(d); math.Abs(det-1) > o.tol {
		return errors.Wrapf(errors.ErrDomain, "rotation: det(R) = %g, must be +1", det)
	}

	var rtr mat.Dense
	rtr.Mul(d.T(), d)
	if !mat.EqualApprox(&rtr, eye3(), o.tol) {
		return errors.Wrap(errors.ErrDomain, "rotation: R is not orthogonal")
	}

	return nil
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// RotationVector returns n = θ·û, the axis-angle vector of r with
// θ ∈ [0, π].
//
// Implementation:
//   - Stage 1: Validate.
//   - Stage 2: unit quaternion by Shepperd's method (largest pivot of
//     trace and diagonal), sign chosen so the real part is non-negative.
//   - Stage 3: n = 2·Im(log q).
func RotationVector(r Matrix, opts ...Option) ([3]float64, error) {
	if err := Validate(r, opts...); err != nil {
		return [3]float64{}, err
	}

	q := shepperd(r)
	l := quat.Log(q)

	return [3]float64{2 * l.Imag, 2 * l.Jmag, 2 * l.Kmag}, nil
}

// shepperd converts a proper rotation matrix to a unit quaternion.
func shepperd(r Matrix) quat.Number {
	tr := r[0][0] + r[1][1] + r[2][2]
	var w, x, y, z float64
	switch {
	case tr >= r[0][0] && tr >= r[1][1] && tr >= r[2][2]:
		w = math.Sqrt(1+tr) / 2
		x = (r[2][1] - r[1][2]) / (4 * w)
		y = (r[0][2] - r[2][0]) / (4 * w)
		z = (r[1][0] - r[0][1]) / (4 * w)
	case r[0][0] >= r[1][1] && r[0][0] >= r[2][2]:
		x = math.Sqrt(1+r[0][0]-r[1][1]-r[2][2]) / 2
		w = (r[2][1] - r[1][2]) / (4 * x)
		y = (r[0][1] + r[1][0]) / (4 * x)
		z = (r[0][2] + r[2][0]) / (4 * x)
	case r[1][1] >= r[2][2]:
		y = math.Sqrt(1-r[0][0]+r[1][1]-r[2][2]) / 2
		w = (r[0][2] - r[2][0]) / (4 * y)
		x = (r[0][1] + r[1][0]) / (4 * y)
		z = (r[1][2] + r[2][1]) / (4 * y)
	default:
		z = math.Sqrt(1-r[0][0]-r[1][1]+r[2][2]) / 2
		w = (r[1][0] - r[0][1]) / (4 * z)
		x = (r[0][2] + r[2][0]) / (4 * z)
		y = (r[1][2] + r[2][1]) / (4 * z)
	}

	q := quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
	if w < 0 {
		q = quat.Scale(-1, q)
	}

	return quat.Scale(1/quat.Abs(q), q)
}

// BasisRotation returns U = exp(i·n·S) for the rotation vector n of r.
//
// Errors:
//   - errors.ErrDomain for an invalid r.
//   - cmatrix errors for malformed operators.
func BasisRotation(r Matrix, ops spin.Operators, opts ...Option) (*cmatrix.Dense, error) {
	n, err := RotationVector(r, opts...)
	if err != nil {
		return nil, err
	}
	gen, err := cmatrix.LinearCombination(
		[]complex128{complex(0, n[0]), complex(0, n[1]), complex(0, n[2])},
		ops[:],
	)
	if err != nil {
		return nil, errors.Wrap(err, "rotation: spin generator")
	}

	return cmatrix.Expm(gen)
}

// substitution builds {v_i ↦ Σ_j R_ij v_j} for every acted-on triple.
func substitution(r Matrix, triples [][3]sym.Symbol) map[sym.Symbol]sym.Expr {
	m := make(map[sym.Symbol]sym.Expr, 3*len(triples))
	for _, v := range triples {
		for i := 0; i < 3; i++ {
			parts := make([]sym.Expr, 0, 3)
			for j := 0; j < 3; j++ {
				if r[i][j] != 0 {
					parts = append(parts, sym.Var(v[j]).Scale(complex(r[i][j], 0)))
				}
			}
			m[v[i]] = sym.Sum(parts...)
		}
	}

	return m
}

// Symbols substitutes every acted-on triple v ↦ R·v simultaneously and
// re-expands.
func Symbols(e sym.Expr, r Matrix, opts ...Option) (sym.Expr, error) {
	o := gatherOptions(opts...)
	if err := Validate(r, opts...); err != nil {
		return sym.Expr{}, err
	}

	return e.Subs(substitution(r, o.actOn))
}

// Rotate rotates a scalar expression. Spin operators do not apply to
// scalars and are ignored.
func Rotate(e sym.Expr, r Matrix, opts ...Option) (sym.Expr, error) {
	return Symbols(e, r, opts...)
}

// RotateMatrix rotates a matrix Hamiltonian: first the symbol substitution
// v ↦ R·v on every entry, then, with WithSpinOperators, H' = U·H·U†.
// The order is fixed; spin conjugation acts on the re-expressed entries.
//
// Errors:
//   - errors.ErrDomain for an invalid r.
//   - cmatrix.ErrDimensionMismatch when the operators do not match H.
func RotateMatrix(h *sym.Matrix, r Matrix, opts ...Option) (*sym.Matrix, error) {
	o := gatherOptions(opts...)
	if err := Validate(r, opts...); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.Wrap(cmatrix.ErrNilMatrix, "rotation: nil Hamiltonian")
	}

	out, err := h.Subs(substitution(r, o.actOn))
	if err != nil {
		return nil, err
	}
	if !o.withSpin {
		return out, nil
	}

	rows, cols := h.Shape()
	if o.spinOps.Dim() != rows || rows != cols {
		return nil, errors.Wrapf(cmatrix.ErrDimensionMismatch,
			"rotation: spin operators of size %d for a %dx%d Hamiltonian", o.spinOps.Dim(), rows, cols)
	}
	u, err := BasisRotation(r, o.spinOps, opts...)
	if err != nil {
		return nil, err
	}
	uDag, err := cmatrix.ConjTranspose(u)
	if err != nil {
		return nil, err
	}
	if out, err = out.MulDenseLeft(u); err != nil {
		return nil, err
	}

	return out.MulDenseRight(uDag)
}
