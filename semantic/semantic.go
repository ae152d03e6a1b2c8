// SPDX-License-Identifier: MIT
// Package: axiomic/semantic
//
// semantic.go: Apply and the overflow-checked integer kernels.
//
// Contract:
//   - Arithmetic stays in int64; a result that does not fit is reported as
//     axiomic.ErrBoundExceeded instead of wrapping silently.
//   - Division projects the truncated quotient (7 ÷ 2 projects as 3); the
//     exact quotient is kept alongside for display.

package semantic

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/axiom"
	"github.com/katalvlaran/axiomic/primes"
)

// Result is the outcome of one semantic operation.
type Result struct {
	Op Op    `json:"op"`
	A  int64 `json:"a"`
	B  int64 `json:"b"`

	// Value is the integer result; for Div, the quotient truncated toward zero.
	Value int64 `json:"value"`
	// Quotient is the real-valued a/b; zero for every op but Div.
	Quotient float64 `json:"quotient"`

	Axiom   axiom.Entry `json:"axiom"`
	IsPrime bool        `json:"is_prime"`
}

// Apply evaluates op on a and b (b is ignored for Not) and annotates the
// value with its axiom and primality.
//
// Errors:
//   - axiomic.ErrDivisionByZero for Div/Mod with b == 0.
//   - axiomic.ErrBoundExceeded when the result overflows int64.
//   - axiomic.ErrInvalidInput for Pow with a negative exponent or an unknown op.
func Apply(op Op, a, b int64) (Result, error) {
	res := Result{Op: op, A: a, B: b}
	if op.Unary() {
		res.B = 0
	}

	var err error
	switch op {
	case Add:
		res.Value, err = add(a, b)
	case Sub:
		res.Value, err = sub(a, b)
	case Mul:
		res.Value, err = mul(a, b)
	case Pow:
		res.Value, err = pow(a, b)
	case Div:
		if b == 0 {
			return Result{}, fmt.Errorf("semantic: %d ÷ 0: %w", a, axiomic.ErrDivisionByZero)
		}
		if a == math.MinInt64 && b == -1 {
			return Result{}, fmt.Errorf("semantic: %d ÷ %d: %w", a, b, axiomic.ErrBoundExceeded)
		}
		res.Quotient = float64(a) / float64(b)
		res.Value = a / b // Go integer division truncates toward zero
	case Mod:
		if b == 0 {
			return Result{}, fmt.Errorf("semantic: %d mod 0: %w", a, axiomic.ErrDivisionByZero)
		}
		res.Value = a % b
	case And:
		res.Value = a & b
	case Or:
		res.Value = a | b
	case Not:
		res.Value = ^a
	default:
		return Result{}, fmt.Errorf("semantic: Apply(%v): unknown operator: %w", op, axiomic.ErrInvalidInput)
	}
	if err != nil {
		return Result{}, fmt.Errorf("semantic: %d %v %d: %w", a, op, b, err)
	}

	res.Axiom = axiom.Project(res.Value)
	res.IsPrime = primes.IsPrime(res.Value)

	return res, nil
}

func add(a, b int64) (int64, error) {
	s := a + b
	// overflow iff both operands share a sign that the sum does not
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, axiomic.ErrBoundExceeded
	}

	return s, nil
}

func sub(a, b int64) (int64, error) {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, axiomic.ErrBoundExceeded
	}

	return d, nil
}

func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi != 0 {
		return 0, axiomic.ErrBoundExceeded
	}
	if neg {
		if lo > 1<<63 {
			return 0, axiomic.ErrBoundExceeded
		}
		return int64(-lo), nil // lo == 1<<63 wraps to MinInt64, which is exact
	}
	if lo > math.MaxInt64 {
		return 0, axiomic.ErrBoundExceeded
	}

	return int64(lo), nil
}

// pow computes base^exp by squaring with overflow checks. 0^0 == 1.
func pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, axiomic.ErrInvalidInput
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, err := mul(result, base)
			if err != nil {
				return 0, err
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		b, err := mul(base, base)
		if err != nil {
			return 0, err
		}
		base = b
	}

	return result, nil
}

// absU returns |x| as uint64; MinInt64 maps to 1<<63.
func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}
