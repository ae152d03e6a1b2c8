// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math/big"
)

// integrate returns an antiderivative of n with respect to v, or ErrUnsupported.
func integrate(n node, v string) (node, error) {
	if !dependsOn(n, v) {
		return mkMul(n, &symbol{name: v}), nil
	}

	switch t := n.(type) {
	case *symbol: // t.name == v
		return mkDiv(mkPow(t, num(2)), num(2)), nil
	case *negate:
		f, err := integrate(t.x, v)
		if err != nil {
			return nil, err
		}
		return mkNeg(f), nil
	case *call:
		return integrateCall(t, v)
	case *binary:
		return integrateBinary(t, v)
	}

	return nil, unsupported(n)
}

func integrateBinary(t *binary, v string) (node, error) {
	switch t.op {
	case opAdd, opSub:
		fl, err := integrate(t.l, v)
		if err != nil {
			return nil, err
		}
		fr, err := integrate(t.r, v)
		if err != nil {
			return nil, err
		}
		if t.op == opAdd {
			return mkAdd(fl, fr), nil
		}
		return mkSub(fl, fr), nil
	case opMul:
		switch {
		case !dependsOn(t.l, v):
			return scaled(t.l, t.r, v)
		case !dependsOn(t.r, v):
			return scaled(t.r, t.l, v)
		case equal(t.l, t.r):
			return integrate(mkPow(t.l, num(2)), v)
		}
	case opDiv:
		switch {
		case !dependsOn(t.r, v):
			f, err := integrate(t.l, v)
			if err != nil {
				return nil, err
			}
			return mkDiv(f, t.r), nil
		case !dependsOn(t.l, v):
			// c/u^k = c*u^-k
			if p, ok := t.r.(*binary); ok && p.op == opPow && !dependsOn(p.r, v) {
				return scaled(t.l, &binary{op: opPow, l: p.l, r: mkNeg(p.r)}, v)
			}
			return scaled(t.l, &binary{op: opPow, l: t.r, r: num(-1)}, v)
		}
	case opPow:
		return integratePow(t, v)
	}

	return nil, unsupported(t)
}

// scaled integrates c*f for a constant c.
func scaled(c, f node, v string) (node, error) {
	F, err := integrate(f, v)
	if err != nil {
		return nil, err
	}

	return mkMul(c, F), nil
}

func integratePow(t *binary, v string) (node, error) {
	base, exp := t.l, t.r
	if !dependsOn(exp, v) {
		a, ok := linearSlope(base, v)
		if !ok {
			return nil, unsupported(t)
		}
		if isMinusOne(exp) {
			return overSlope(mkCall(fnLn, base), a), nil
		}
		e1 := mkAdd(exp, num(1))
		return mkDiv(mkPow(base, e1), mkMul(e1, a)), nil
	}
	if !dependsOn(base, v) {
		a, ok := linearSlope(exp, v)
		if !ok {
			return nil, unsupported(t)
		}
		return mkDiv(t, mkMul(mkCall(fnLn, base), a)), nil
	}

	return nil, unsupported(t)
}

func integrateCall(t *call, v string) (node, error) {
	u := t.arg
	a, ok := linearSlope(u, v)
	if !ok {
		return nil, unsupported(t)
	}
	var F node
	switch t.fn {
	case fnSin:
		F = mkNeg(mkCall(fnCos, u))
	case fnCos:
		F = mkCall(fnSin, u)
	case fnTan:
		F = mkNeg(mkCall(fnLn, mkCall(fnCos, u)))
	case fnExp:
		F = t
	case fnLn:
		F = mkSub(mkMul(u, t), u)
	case fnSqrt:
		F = mkDiv(mkMul(num(2), mkPow(u, &number{v: big.NewRat(3, 2)})), num(3))
	default:
		return nil, unsupported(t)
	}

	return overSlope(F, a), nil
}

// linearSlope returns a when u = a*v + b with constant a != 0.
func linearSlope(u node, v string) (node, bool) {
	a := derive(u, v)
	if dependsOn(a, v) || isZero(a) {
		return nil, false
	}

	return a, true
}

func overSlope(F, a node) node {
	if isOne(a) {
		return F
	}

	return mkDiv(F, a)
}

func unsupported(n node) error {
	return fmt.Errorf("%w: no rule for %s", ErrUnsupported, render(n))
}
