// SPDX-License-Identifier: MIT

package calculus

// derive returns d n / d v.
func derive(n node, v string) node {
	switch t := n.(type) {
	case *number:
		return num(0)
	case *symbol:
		if t.name == v {
			return num(1)
		}
		return num(0)
	case *negate:
		return mkNeg(derive(t.x, v))
	case *call:
		return deriveCall(t, v)
	case *binary:
		return deriveBinary(t, v)
	default:
		return num(0)
	}
}

func deriveBinary(t *binary, v string) node {
	dl, dr := derive(t.l, v), derive(t.r, v)
	switch t.op {
	case opAdd:
		return mkAdd(dl, dr)
	case opSub:
		return mkSub(dl, dr)
	case opMul:
		return mkAdd(mkMul(dl, t.r), mkMul(t.l, dr))
	case opDiv:
		if !dependsOn(t.r, v) {
			return mkDiv(dl, t.r)
		}
		// (f/g)' = (f'g - fg') / g^2
		return mkDiv(mkSub(mkMul(dl, t.r), mkMul(t.l, dr)), mkPow(t.r, num(2)))
	default:
		return derivePow(t, dl, dr, v)
	}
}

func derivePow(t *binary, dl, dr node, v string) node {
	base, exp := t.l, t.r
	switch {
	case !dependsOn(exp, v):
		// (u^c)' = c*u^(c-1)*u'
		return mkMul(mkMul(exp, mkPow(base, mkSub(exp, num(1)))), dl)
	case !dependsOn(base, v):
		// (a^u)' = a^u*ln(a)*u'
		return mkMul(mkMul(t, mkCall(fnLn, base)), dr)
	default:
		// (u^w)' = u^w*(w'*ln(u) + w*u'/u)
		return mkMul(t, mkAdd(mkMul(dr, mkCall(fnLn, base)), mkDiv(mkMul(exp, dl), base)))
	}
}

func deriveCall(t *call, v string) node {
	u := t.arg
	du := derive(u, v)
	if isZero(du) {
		return num(0)
	}
	switch t.fn {
	case fnSin:
		return mkMul(du, mkCall(fnCos, u))
	case fnCos:
		return mkMul(du, mkNeg(mkCall(fnSin, u)))
	case fnTan:
		return mkMul(du, mkAdd(mkPow(mkCall(fnTan, u), num(2)), num(1)))
	case fnExp:
		return mkMul(du, mkCall(fnExp, u))
	case fnLn:
		return mkDiv(du, u)
	default: // fnSqrt
		return mkDiv(du, mkMul(num(2), mkCall(fnSqrt, u)))
	}
}
