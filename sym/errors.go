// SPDX-License-Identifier: MIT

package sym

import "github.com/katalvlaran/semicon/errors"

var (
	// ErrNotMonomial indicates an operation defined only for single-term
	// expressions (inversion, negative powers, division) got a sum.
	ErrNotMonomial = errors.New("sym: expression is not a monomial")

	// ErrUnboundSymbol indicates Eval met a symbol without a value.
	ErrUnboundSymbol = errors.New("sym: unbound symbol")

	// ErrNonFinite indicates a numeric evaluation produced NaN or Inf.
	ErrNonFinite = errors.New("sym: non-finite value")
)
