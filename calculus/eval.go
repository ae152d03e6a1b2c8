// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math"
)

// eval computes n numerically under the bindings in vars.
func eval(n node, vars map[string]float64) (float64, error) {
	switch t := n.(type) {
	case *number:
		f, _ := t.v.Float64()
		return f, nil
	case *symbol:
		x, ok := vars[t.name]
		if !ok {
			return 0, fmt.Errorf("%w: unbound variable %q", ErrUndefined, t.name)
		}
		return x, nil
	case *negate:
		x, err := eval(t.x, vars)
		return -x, err
	case *call:
		x, err := eval(t.arg, vars)
		if err != nil {
			return 0, err
		}
		return applyFn(t.fn, x), nil
	case *binary:
		l, err := eval(t.l, vars)
		if err != nil {
			return 0, err
		}
		r, err := eval(t.r, vars)
		if err != nil {
			return 0, err
		}
		switch t.op {
		case opAdd:
			return l + r, nil
		case opSub:
			return l - r, nil
		case opMul:
			return l * r, nil
		case opDiv:
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown node %T", ErrUndefined, n)
}

func applyFn(fn string, x float64) float64 {
	switch fn {
	case fnSin:
		return math.Sin(x)
	case fnCos:
		return math.Cos(x)
	case fnTan:
		return math.Tan(x)
	case fnExp:
		return math.Exp(x)
	case fnLn:
		return math.Log(x)
	case fnSqrt:
		return math.Sqrt(x)
	default:
		return math.NaN()
	}
}
