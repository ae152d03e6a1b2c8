// SPDX-License-Identifier: MIT

package calculus

import (
	"math/big"
	"strings"
)

// Binary operators.
const (
	opAdd byte = '+'
	opSub byte = '-'
	opMul byte = '*'
	opDiv byte = '/'
	opPow byte = '^'
)

// Canonical function names.
const (
	fnSin  = "sin"
	fnCos  = "cos"
	fnTan  = "tan"
	fnExp  = "exp"
	fnLn   = "ln"
	fnSqrt = "sqrt"
)

// Formatting precedence, low to high.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

// node is an expression tree node.
type node interface {
	format(b *strings.Builder)
	prec() int
}

type number struct{ v *big.Rat }

type symbol struct{ name string }

type negate struct{ x node }

type binary struct {
	op   byte
	l, r node
}

type call struct {
	fn  string
	arg node
}

func (n *number) prec() int {
	switch {
	case n.v.Sign() < 0:
		if n.v.IsInt() {
			return precUnary
		}
		return precProduct
	case n.v.IsInt():
		return precAtom
	default:
		return precProduct // rendered as p/q
	}
}

func (n *symbol) prec() int { return precAtom }
func (n *negate) prec() int { return precUnary }
func (n *call) prec() int   { return precAtom }

func (n *binary) prec() int {
	switch n.op {
	case opAdd, opSub:
		return precSum
	case opMul, opDiv:
		return precProduct
	default:
		return precPower
	}
}

func (n *number) format(b *strings.Builder) { b.WriteString(n.v.RatString()) }
func (n *symbol) format(b *strings.Builder) { b.WriteString(n.name) }

func (n *negate) format(b *strings.Builder) {
	b.WriteByte('-')
	child(b, n.x, precProduct)
}

func (n *call) format(b *strings.Builder) {
	b.WriteString(n.fn)
	b.WriteByte('(')
	n.arg.format(b)
	b.WriteByte(')')
}

func (n *binary) format(b *strings.Builder) {
	switch n.op {
	case opAdd:
		child(b, n.l, precSum)
		b.WriteString(" + ")
		child(b, n.r, precSum)
	case opSub:
		child(b, n.l, precSum)
		b.WriteString(" - ")
		child(b, n.r, precProduct)
	case opMul:
		child(b, n.l, precProduct)
		b.WriteByte('*')
		child(b, n.r, precProduct)
	case opDiv:
		child(b, n.l, precProduct)
		b.WriteByte('/')
		child(b, n.r, precUnary)
	case opPow:
		child(b, n.l, precAtom)
		b.WriteByte('^')
		child(b, n.r, precPower)
	}
}

// child formats n, parenthesized when it binds looser than min.
func child(b *strings.Builder, n node, min int) {
	if n.prec() < min {
		b.WriteByte('(')
		n.format(b)
		b.WriteByte(')')
		return
	}
	n.format(b)
}

// render formats a whole tree.
func render(n node) string {
	var b strings.Builder
	n.format(&b)

	return b.String()
}

// dependsOn reports whether n mentions the variable v.
func dependsOn(n node, v string) bool {
	switch t := n.(type) {
	case *symbol:
		return t.name == v
	case *negate:
		return dependsOn(t.x, v)
	case *binary:
		return dependsOn(t.l, v) || dependsOn(t.r, v)
	case *call:
		return dependsOn(t.arg, v)
	default:
		return false
	}
}

// equal reports structural equality.
func equal(a, b node) bool {
	switch x := a.(type) {
	case *number:
		y, ok := b.(*number)
		return ok && x.v.Cmp(y.v) == 0
	case *symbol:
		y, ok := b.(*symbol)
		return ok && x.name == y.name
	case *negate:
		y, ok := b.(*negate)
		return ok && equal(x.x, y.x)
	case *binary:
		y, ok := b.(*binary)
		return ok && x.op == y.op && equal(x.l, y.l) && equal(x.r, y.r)
	case *call:
		y, ok := b.(*call)
		return ok && x.fn == y.fn && equal(x.arg, y.arg)
	default:
		return false
	}
}
