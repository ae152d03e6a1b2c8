// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math"
)

// Engine is the capability the calculator needs from a computer-algebra
// backend. Symbolic implements it; front-ends depend on the interface.
type Engine interface {
	Derivative(expr, variable string) (string, error)
	Integral(expr, variable string) (string, error)
}

// Symbolic is the built-in Engine.
type Symbolic struct{}

var _ Engine = Symbolic{}

// Derivative implements Engine.
func (Symbolic) Derivative(expr, variable string) (string, error) { return Derivative(expr, variable) }

// Integral implements Engine.
func (Symbolic) Integral(expr, variable string) (string, error) { return Integral(expr, variable) }

// Derivative returns d expr / d variable in formatted form.
func Derivative(expr, variable string) (string, error) {
	n, err := prepare(expr, variable)
	if err != nil {
		return "", err
	}

	return render(derive(n, variable)), nil
}

// Integral returns an antiderivative of expr with respect to variable,
// without the integration constant.
func Integral(expr, variable string) (string, error) {
	n, err := prepare(expr, variable)
	if err != nil {
		return "", err
	}
	F, err := integrate(n, variable)
	if err != nil {
		return "", err
	}

	return render(F), nil
}

// Simplify parses expr and returns its simplified formatted form.
func Simplify(expr string) (string, error) {
	n, err := parse(expr)
	if err != nil {
		return "", err
	}

	return render(simplify(n)), nil
}

// Evaluate computes expr numerically with the given variable bindings.
// Non-finite results (division by zero, ln of a negative) are ErrUndefined.
func Evaluate(expr string, vars map[string]float64) (float64, error) {
	n, err := parse(expr)
	if err != nil {
		return 0, err
	}
	x, err := eval(n, vars)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrUndefined, expr)
	}

	return x, nil
}

func prepare(expr, variable string) (node, error) {
	if !validVariable(variable) {
		return nil, fmt.Errorf("%w: %q", ErrVariable, variable)
	}
	n, err := parse(expr)
	if err != nil {
		return nil, err
	}

	return simplify(n), nil
}

// validVariable accepts a single identifier that is not a function name.
func validVariable(v string) bool {
	toks, err := lex(v)
	if err != nil || len(toks) != 2 || toks[0].typ != tokIdent {
		return false
	}
	_, isFn := functions[v]

	return !isFn
}
