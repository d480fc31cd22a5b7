// SPDX-License-Identifier: MIT

package formula

import (
	"math"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/sym"
)

// Expr converts a scalar formula into an expanded symbolic expression.
//
// Division is allowed only by monomials and powers only with integer
// constant exponents; sqrt only of constants. I is the imaginary unit and
// pi the constant π.
//
// Errors:
//   - ErrNotScalar for list literals.
//   - sym.ErrNotMonomial for division by a sum.
//   - ErrNonInteger for a non-integer or symbolic exponent.
func (f *Formula) Expr(opts ...Option) (sym.Expr, error) {
	if f.IsList() {
		return sym.Expr{}, errors.Wrapf(ErrNotScalar, "formula: %q is a list", f.src)
	}
	e, err := toExpr(f.root, gather(opts))
	if err != nil {
		return sym.Expr{}, errors.Wrapf(err, "formula: %q", f.src)
	}

	return e, nil
}

// List converts a list literal [a, b, ...] item by item. A scalar formula
// yields a single-item list.
func (f *Formula) List(opts ...Option) ([]sym.Expr, error) {
	o := gather(opts)
	items := []node{f.root}
	if l, ok := f.root.(listNode); ok {
		items = l.items
	}

	out := make([]sym.Expr, len(items))
	for i, it := range items {
		e, err := toExpr(it, o)
		if err != nil {
			return nil, errors.Wrapf(err, "formula: %q item %d", f.src, i)
		}
		out[i] = e
	}

	return out, nil
}

// Sympify parses src and converts it to an expression in one call.
func Sympify(src string, opts ...Option) (sym.Expr, error) {
	f, err := Parse(src)
	if err != nil {
		return sym.Expr{}, err
	}

	return f.Expr(opts...)
}

func toExpr(n node, o options) (sym.Expr, error) {
	switch n := n.(type) {
	case numNode:
		return sym.Real(n.v), nil
	case identNode:
		switch {
		case n.name == "I" && n.args == "":
			return sym.Const(1i), nil
		case n.name == "pi" && n.args == "":
			return sym.Real(math.Pi), nil
		}
		if e, ok := o.locals[n.name]; ok && n.args == "" {
			return e, nil
		}
		return sym.Var(o.resolve(n.name, n.args)), nil
	case callNode:
		x, err := toExpr(n.arg, o)
		if err != nil {
			return sym.Expr{}, err
		}
		c, ok := x.AsConst()
		if !ok || imag(c) != 0 || real(c) < 0 {
			return sym.Expr{}, errors.Wrapf(ErrNotScalar, "sqrt of %q", x.String())
		}
		return sym.Real(math.Sqrt(real(c))), nil
	case unaryNode:
		x, err := toExpr(n.x, o)
		if err != nil {
			return sym.Expr{}, err
		}
		return x.Neg(), nil
	case binaryNode:
		l, err := toExpr(n.l, o)
		if err != nil {
			return sym.Expr{}, err
		}
		r, err := toExpr(n.r, o)
		if err != nil {
			return sym.Expr{}, err
		}
		return combine(n.op, l, r)
	}

	return sym.Expr{}, errors.Wrap(ErrNotScalar, "nested list literal")
}

func combine(op tokenKind, l, r sym.Expr) (sym.Expr, error) {
	switch op {
	case tokPlus:
		return l.Add(r), nil
	case tokMinus:
		return l.Sub(r), nil
	case tokStar:
		return l.Mul(r), nil
	case tokSlash:
		inv, err := r.Inverse()
		if err != nil {
			return sym.Expr{}, err
		}
		return l.Mul(inv), nil
	}

	c, ok := r.AsConst()
	if !ok || imag(c) != 0 || real(c) != math.Trunc(real(c)) {
		return sym.Expr{}, errors.Wrapf(ErrNonInteger, "exponent %q", r.String())
	}
	if lc, isConst := l.AsConst(); isConst && imag(lc) == 0 {
		return sym.Real(math.Pow(real(lc), real(c))), nil
	}

	return l.Pow(int(real(c)))
}
