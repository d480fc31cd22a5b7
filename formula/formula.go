// SPDX-License-Identifier: MIT

package formula

import (
	"math"
	"sort"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/sym"
	"github.com/katalvlaran/semicon/symbols"
)

var (
	// ErrSyntax indicates a malformed formula string.
	ErrSyntax = errors.New("formula: syntax error")

	// ErrUnbound indicates Eval met a name without a binding.
	ErrUnbound = errors.New("formula: unbound name")

	// ErrNotScalar indicates a list literal where a scalar was required, or
	// the reverse.
	ErrNotScalar = errors.New("formula: not a scalar")

	// ErrNonInteger indicates a symbolic power with a non-integer exponent.
	ErrNonInteger = errors.New("formula: exponent is not an integer")
)

// Formula is a parsed, immutable formula.
type Formula struct {
	src  string
	root node
	vars []string
}

// Parse compiles src. The whole input must be consumed.
func Parse(src string) (*Formula, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, errors.Wrapf(ErrSyntax, "formula: trailing %q at %d", t.text, t.pos)
	}

	seen := make(map[string]struct{})
	collectVars(root, seen)
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	return &Formula{src: src, root: root, vars: vars}, nil
}

// MustParse is Parse for package-level tables; it panics on error.
func MustParse(src string) *Formula {
	f, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return f
}

// String returns the source text.
func (f *Formula) String() string { return f.src }

// Vars returns the sorted free names (builtins pi and I excluded).
func (f *Formula) Vars() []string {
	out := make([]string, len(f.vars))
	copy(out, f.vars)

	return out
}

// IsList reports whether the formula is a list literal [a, b, ...].
func (f *Formula) IsList() bool {
	_, ok := f.root.(listNode)

	return ok
}

func collectVars(n node, seen map[string]struct{}) {
	switch n := n.(type) {
	case identNode:
		if n.name != "pi" && n.name != "I" {
			seen[n.name] = struct{}{}
		}
	case callNode:
		collectVars(n.arg, seen)
	case unaryNode:
		collectVars(n.x, seen)
	case binaryNode:
		collectVars(n.l, seen)
		collectVars(n.r, seen)
	case listNode:
		for _, it := range n.items {
			collectVars(it, seen)
		}
	}
}

// Eval evaluates a scalar formula with the given bindings.
//
// Errors:
//   - ErrUnbound for a name missing from env.
//   - ErrNotScalar for list literals and the imaginary unit.
//   - errors.ErrDomain when the result is NaN or ±Inf (e.g. E_0 = 0 in a
//     denominator).
func (f *Formula) Eval(env map[string]float64) (float64, error) {
	v, err := evalNode(f.root, env)
	if err != nil {
		return 0, errors.Wrapf(err, "formula: %q", f.src)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(errors.ErrDomain, "formula: %q evaluates to %v", f.src, v)
	}

	return v, nil
}

func evalNode(n node, env map[string]float64) (float64, error) {
	switch n := n.(type) {
	case numNode:
		return n.v, nil
	case identNode:
		if n.name == "pi" && n.args == "" {
			return math.Pi, nil
		}
		if n.name == "I" {
			return 0, errors.Wrap(ErrNotScalar, "imaginary unit in real evaluation")
		}
		v, ok := env[n.name]
		if !ok {
			return 0, errors.Wrapf(ErrUnbound, "%s", n.name)
		}
		return v, nil
	case callNode:
		x, err := evalNode(n.arg, env)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(x), nil
	case unaryNode:
		x, err := evalNode(n.x, env)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case binaryNode:
		l, err := evalNode(n.l, env)
		if err != nil {
			return 0, err
		}
		r, err := evalNode(n.r, env)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case tokPlus:
			return l + r, nil
		case tokMinus:
			return l - r, nil
		case tokStar:
			return l * r, nil
		case tokSlash:
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	}

	return 0, errors.Wrap(ErrNotScalar, "list literal")
}

// Option configures symbolic conversion.
type Option func(*options)

type options struct {
	resolve func(name, args string) sym.Symbol
	locals  map[string]sym.Expr
}

// WithResolver overrides how identifiers become symbols. The default is
// symbols.Resolve.
func WithResolver(f func(name, args string) sym.Symbol) Option {
	if f == nil {
		panic("formula: WithResolver: nil resolver")
	}

	return func(o *options) { o.resolve = f }
}

// WithLocals binds names to fixed expressions before resolution, e.g.
// E_0 ↦ E_0(x, y, z).
func WithLocals(locals map[string]sym.Expr) Option {
	return func(o *options) { o.locals = locals }
}

func gather(opts []Option) options {
	o := options{resolve: symbols.Resolve}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
