// SPDX-License-Identifier: MIT
// Package: axiomic/calculus
//
// simplify.go: smart constructors. Every tree built by derive/integrate
// goes through these, so constants are folded and identity elements
// (x+0, x*1, x^1, x^0, 0/x, x/1) never reach the output. A product with
// numeric factors always comes out as p*r/q, never 3*x^2/2/2.

package calculus

import "math/big"

// maxFoldExponent caps exact folding of num^int to keep rationals small.
const maxFoldExponent = 64

func num(i int64) *number { return &number{v: big.NewRat(i, 1)} }

func asNumber(n node) (*big.Rat, bool) {
	if x, ok := n.(*number); ok {
		return x.v, true
	}

	return nil, false
}

func isZero(n node) bool {
	v, ok := asNumber(n)
	return ok && v.Sign() == 0
}

func isOne(n node) bool {
	v, ok := asNumber(n)
	return ok && v.Cmp(big.NewRat(1, 1)) == 0
}

func isMinusOne(n node) bool {
	v, ok := asNumber(n)
	return ok && v.Cmp(big.NewRat(-1, 1)) == 0
}

// positivePart returns p when n is -p in one of the shapes -x, -c, (-c)*x, (-u)/w.
func positivePart(n node) (node, bool) {
	switch t := n.(type) {
	case *negate:
		return t.x, true
	case *number:
		if t.v.Sign() < 0 {
			return &number{v: new(big.Rat).Neg(t.v)}, true
		}
	case *binary:
		if c, ok := asNumber(t.l); ok && t.op == opMul && c.Sign() < 0 {
			return mkMul(&number{v: new(big.Rat).Neg(c)}, t.r), true
		}
		if t.op == opDiv {
			if p, ok := positivePart(t.l); ok {
				return mkDiv(p, t.r), true
			}
		}
	}

	return nil, false
}

// split returns c and r with n == c*r, pulling out a leading numeric factor
// and any numeric divisor. r is nil when n is itself a number.
func split(n node) (*big.Rat, node) {
	switch t := n.(type) {
	case *number:
		return t.v, nil
	case *negate:
		c, r := split(t.x)
		return new(big.Rat).Neg(c), r
	case *binary:
		if c, ok := asNumber(t.l); ok && t.op == opMul {
			return c, t.r
		}
		if d, ok := asNumber(t.r); ok && t.op == opDiv && d.Sign() != 0 {
			c, r := split(t.l)
			return new(big.Rat).Quo(c, d), r
		}
	}

	return big.NewRat(1, 1), n
}

func isUnit(c *big.Rat) bool { return c.Cmp(big.NewRat(1, 1)) == 0 }

// scale builds c*r as p*r/q with p/q == c in lowest terms. It never calls
// back into the other constructors.
func scale(c *big.Rat, r node) node {
	if r == nil || c.Sign() == 0 {
		return &number{v: new(big.Rat).Set(c)}
	}
	out := r
	p := new(big.Rat).SetInt(c.Num())
	switch {
	case isUnit(p):
	case p.Cmp(big.NewRat(-1, 1)) == 0:
		out = &negate{x: r}
	default:
		out = &binary{op: opMul, l: &number{v: p}, r: r}
	}
	if !c.IsInt() {
		out = &binary{op: opDiv, l: out, r: &number{v: new(big.Rat).SetInt(c.Denom())}}
	}

	return out
}

func mkNeg(x node) node {
	switch t := x.(type) {
	case *number:
		return &number{v: new(big.Rat).Neg(t.v)}
	case *negate:
		return t.x
	}
	if c, r := split(x); !isUnit(c) {
		return scale(new(big.Rat).Neg(c), r)
	}

	return &negate{x: x}
}

func mkAdd(a, b node) node {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	switch {
	case aNum && bNum:
		return &number{v: new(big.Rat).Add(av, bv)}
	case isZero(a):
		return b
	case isZero(b):
		return a
	}
	if p, ok := positivePart(b); ok {
		return mkSub(a, p)
	}
	// (l - r) + r and r + (l - r)
	if t, ok := a.(*binary); ok && t.op == opSub && equal(t.r, b) {
		return t.l
	}
	if t, ok := b.(*binary); ok && t.op == opSub && equal(t.r, a) {
		return t.l
	}
	if equal(a, b) {
		return mkMul(num(2), a)
	}

	return &binary{op: opAdd, l: a, r: b}
}

func mkSub(a, b node) node {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	switch {
	case aNum && bNum:
		return &number{v: new(big.Rat).Sub(av, bv)}
	case isZero(b):
		return a
	case isZero(a):
		return mkNeg(b)
	case equal(a, b):
		return num(0)
	}
	if p, ok := positivePart(b); ok {
		return mkAdd(a, p)
	}
	// (l + r) - l, (l + r) - r and (l - r) - l
	if t, ok := a.(*binary); ok {
		switch {
		case t.op == opAdd && equal(t.l, b):
			return t.r
		case t.op == opAdd && equal(t.r, b):
			return t.l
		case t.op == opSub && equal(t.l, b):
			return mkNeg(t.r)
		}
	}

	return &binary{op: opSub, l: a, r: b}
}

func mkMul(a, b node) node {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	switch {
	case aNum && bNum:
		return &number{v: new(big.Rat).Mul(av, bv)}
	case isZero(a) || isZero(b):
		return num(0)
	case bNum:
		return mkMul(b, a) // constants lead
	}
	ca, ra := split(a)
	cb, rb := split(b)
	c := new(big.Rat).Mul(ca, cb)
	switch {
	case aNum:
		return scale(c, rb)
	case !isUnit(ca) || !isUnit(cb):
		return scale(c, mkMul(ra, rb))
	case equal(a, b):
		return mkPow(a, num(2))
	}

	return &binary{op: opMul, l: a, r: b}
}

func mkDiv(a, b node) node {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	switch {
	case bNum && bv.Sign() == 0:
		return &binary{op: opDiv, l: a, r: b} // left for Evaluate to reject
	case aNum && bNum:
		return &number{v: new(big.Rat).Quo(av, bv)}
	case isZero(a):
		return num(0)
	case bNum:
		c, r := split(a)
		return scale(new(big.Rat).Quo(c, bv), r)
	case equal(a, b):
		return num(1)
	}
	if t, ok := a.(*negate); ok {
		return mkNeg(mkDiv(t.x, b))
	}
	if t, ok := b.(*negate); ok {
		return mkNeg(mkDiv(a, t.x))
	}

	return &binary{op: opDiv, l: a, r: b}
}

func mkPow(a, b node) node {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	switch {
	case isZero(b):
		return num(1)
	case isOne(b):
		return a
	case isOne(a):
		return num(1)
	case aNum && bNum && bv.IsInt() && bv.Num().IsInt64():
		if r, ok := ratPow(av, bv.Num().Int64()); ok {
			return &number{v: r}
		}
	}

	return &binary{op: opPow, l: a, r: b}
}

// ratPow computes base^e exactly for |e| <= maxFoldExponent.
func ratPow(base *big.Rat, e int64) (*big.Rat, bool) {
	if e > maxFoldExponent || e < -maxFoldExponent {
		return nil, false
	}
	if e < 0 && base.Sign() == 0 {
		return nil, false
	}
	out := big.NewRat(1, 1)
	abs := e
	if abs < 0 {
		abs = -abs
	}
	for i := int64(0); i < abs; i++ {
		out.Mul(out, base)
	}
	if e < 0 {
		out.Inv(out)
	}

	return out, true
}

func mkCall(fn string, arg node) node {
	if isZero(arg) {
		switch fn {
		case fnSin, fnTan, fnSqrt:
			return num(0)
		case fnCos, fnExp:
			return num(1)
		}
	}
	if fn == fnLn && isOne(arg) {
		return num(0)
	}

	return &call{fn: fn, arg: arg}
}

// simplify rebuilds a parsed tree bottom-up through the smart constructors.
func simplify(n node) node {
	switch t := n.(type) {
	case *negate:
		return mkNeg(simplify(t.x))
	case *call:
		return mkCall(t.fn, simplify(t.arg))
	case *binary:
		l, r := simplify(t.l), simplify(t.r)
		switch t.op {
		case opAdd:
			return mkAdd(l, r)
		case opSub:
			return mkSub(l, r)
		case opMul:
			return mkMul(l, r)
		case opDiv:
			return mkDiv(l, r)
		default:
			return mkPow(l, r)
		}
	default:
		return n
	}
}
