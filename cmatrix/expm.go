// SPDX-License-Identifier: MIT

package cmatrix

import "gonum.org/v1/gonum/mat"

// Expm returns the matrix exponential e^m of a square complex matrix.
//
// Implementation:
//   - Stage 1: embed m = A + iB into the real 2n×2n block [[A, -B], [B, A]].
//     The embedding is an algebra homomorphism, so exp commutes with it.
//   - Stage 2: exponentiate the real block with gonum (Padé approximant with
//     scaling and squaring).
//   - Stage 3: read A' (top-left) and B' (bottom-left) back as e^m = A' + iB'.
//
// Complexity: O(n^3) with the constant of gonum's Padé(13) evaluation.
func Expm(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}

	n := m.r
	embed := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.at(i, j)
			embed.Set(i, j, real(v))
			embed.Set(i+n, j+n, real(v))
			embed.Set(i, j+n, -imag(v))
			embed.Set(i+n, j, imag(v))
		}
	}

	var e mat.Dense
	e.Exp(embed)

	res := mustDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[i*n+j] = complex(e.At(i, j), e.At(i+n, j))
		}
	}
	for _, v := range res.data {
		if isNonFinite(real(v)) || isNonFinite(imag(v)) {
			return nil, matrixErrorf(opExpm, ErrNaNInf)
		}
	}

	return res, nil
}
