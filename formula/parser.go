// SPDX-License-Identifier: MIT

package formula

import (
	"strings"

	"github.com/katalvlaran/semicon/errors"
)

// node is a parsed formula tree.
type node interface{ isNode() }

type (
	numNode struct{ v float64 }

	// identNode is a name, optionally with coordinate arguments: E_0(x, y).
	identNode struct {
		name string
		args string
	}

	// callNode applies a builtin function (sqrt) to an expression.
	callNode struct {
		fn  string
		arg node
	}

	unaryNode struct {
		neg bool
		x   node
	}

	binaryNode struct {
		op   tokenKind
		l, r node
	}

	listNode struct{ items []node }
)

func (numNode) isNode()    {}
func (identNode) isNode()  {}
func (callNode) isNode()   {}
func (unaryNode) isNode()  {}
func (binaryNode) isNode() {}
func (listNode) isNode()   {}

// builtin functions accepted in call position.
var builtins = map[string]bool{"sqrt": true}

// parser is a recursive-descent parser with Python operator precedence:
//
//	expr  := term (('+'|'-') term)*
//	term  := unary (('*'|'/') unary)*
//	unary := ('+'|'-') unary | power
//	power := primary (('**'|'^') unary)?
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) expect(k tokenKind, what string) error {
	if t := p.next(); t.kind != k {
		return errors.Wrapf(ErrSyntax, "formula: expected %s at %d, got %q", what, t.pos, t.text)
	}

	return nil
}

func (p *parser) parseExpr() (node, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		k := p.peek().kind
		if k != tokPlus && k != tokMinus {
			return l, nil
		}
		p.next()
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: k, l: l, r: r}
	}
}

func (p *parser) parseTerm() (node, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		k := p.peek().kind
		if k != tokStar && k != tokSlash {
			return l, nil
		}
		p.next()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: k, l: l, r: r}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{neg: true, x: x}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: tokPow, l: base, r: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numNode{v: t.num}, nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			return identNode{name: t.text}, nil
		}
		p.next()
		if builtins[t.text] {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err = p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
			return callNode{fn: t.text, arg: arg}, nil
		}
		args, err := p.parseArgNames()
		if err != nil {
			return nil, err
		}
		return identNode{name: t.text, args: args}, nil
	case tokLParen:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return x, nil
	case tokLBracket:
		var items []node
		for {
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, x)
			if p.peek().kind == tokComma {
				p.next()
				continue
			}
			if err = p.expect(tokRBracket, "']'"); err != nil {
				return nil, err
			}
			return listNode{items: items}, nil
		}
	}

	return nil, errors.Wrapf(ErrSyntax, "formula: unexpected %q at %d", t.text, t.pos)
}

// parseArgNames reads "x, y, z)" after an opening parenthesis.
func (p *parser) parseArgNames() (string, error) {
	var names []string
	for {
		t := p.next()
		if t.kind != tokIdent {
			return "", errors.Wrapf(ErrSyntax, "formula: expected coordinate name at %d", t.pos)
		}
		names = append(names, t.text)
		switch p.next().kind {
		case tokComma:
			continue
		case tokRParen:
			return strings.Join(names, ", "), nil
		default:
			return "", errors.Wrapf(ErrSyntax, "formula: malformed argument list at %d", t.pos)
		}
	}
}
