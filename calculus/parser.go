// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math/big"
)

// functions maps accepted call names to their canonical name.
var functions = map[string]string{
	"sin":  fnSin,
	"cos":  fnCos,
	"tan":  fnTan,
	"exp":  fnExp,
	"ln":   fnLn,
	"log":  fnLn,
	"sqrt": fnSqrt,
}

// parser is a recursive-descent parser over a token slice.
type parser struct {
	toks []token
	i    int
}

// parse turns src into an expression tree.
func parse(src string) (node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrParse, t.text, t.pos)
	}

	return n, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.typ != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) match(tt tokenType) bool {
	if p.peek().typ == tt {
		p.i++
		return true
	}

	return false
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.match(tokPlus):
			op = opAdd
		case p.match(tokMinus):
			op = opSub
		default:
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &binary{op: op, l: left, r: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.match(tokStar):
			op = opMul
		case p.match(tokSlash):
			op = opDiv
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binary{op: op, l: left, r: right}
	}
}

func (p *parser) unary() (node, error) {
	switch {
	case p.match(tokMinus):
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &negate{x: x}, nil
	case p.match(tokPlus):
		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.match(tokCaret) {
		return base, nil
	}
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &binary{op: opPow, l: base, r: exp}, nil
}

func (p *parser) primary() (node, error) {
	t := p.next()
	switch t.typ {
	case tokNumber:
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, fmt.Errorf("%w: bad number %q at %d", ErrParse, t.text, t.pos)
		}
		return &number{v: r}, nil
	case tokIdent:
		if p.peek().typ != tokLParen {
			return &symbol{name: t.text}, nil
		}
		fn, ok := functions[t.text]
		if !ok {
			return nil, fmt.Errorf("%w: unknown function %q at %d", ErrParse, t.text, t.pos)
		}
		p.next() // (
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.match(tokRParen) {
			return nil, fmt.Errorf("%w: missing ')' after %s argument", ErrParse, t.text)
		}
		return &call{fn: fn, arg: arg}, nil
	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.match(tokRParen) {
			return nil, fmt.Errorf("%w: missing ')' at %d", ErrParse, p.peek().pos)
		}
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrParse, t.text, t.pos)
	}
}
