// SPDX-License-Identifier: MIT

package formula

import (
	"strconv"
	"unicode"

	"github.com/katalvlaran/semicon/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow // ** or ^
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lex splits src into tokens; the final token is always tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
				k := j + 1
				if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
					k++
				}
				if k < len(rs) && unicode.IsDigit(rs[k]) {
					for k < len(rs) && unicode.IsDigit(rs[k]) {
						k++
					}
					j = k
				}
			}
			text := string(rs[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "formula: bad number %q at %d", text, i)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: v, pos: i})
			i = j
		case r == '_' || unicode.IsLetter(r):
			j := i
			for j < len(rs) && (rs[j] == '_' || unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j])) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[i:j]), pos: i})
			i = j
		default:
			kind, width := punct(rs, i)
			if kind == tokEOF {
				return nil, errors.Wrapf(ErrSyntax, "formula: unexpected %q at %d", string(r), i)
			}
			toks = append(toks, token{kind: kind, text: string(rs[i : i+width]), pos: i})
			i += width
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(rs)}), nil
}

// punct recognises operator and bracket tokens; tokEOF means unknown.
func punct(rs []rune, i int) (tokenKind, int) {
	switch rs[i] {
	case '+':
		return tokPlus, 1
	case '-':
		return tokMinus, 1
	case '*':
		if i+1 < len(rs) && rs[i+1] == '*' {
			return tokPow, 2
		}
		return tokStar, 1
	case '^':
		return tokPow, 1
	case '/':
		return tokSlash, 1
	case '(':
		return tokLParen, 1
	case ')':
		return tokRParen, 1
	case '[':
		return tokLBracket, 1
	case ']':
		return tokRBracket, 1
	case ',':
		return tokComma, 1
	}

	return tokEOF, 0
}
