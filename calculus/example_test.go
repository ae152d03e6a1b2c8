package calculus_test

import (
	"fmt"

	"github.com/katalvlaran/axiomic/calculus"
)

// ExampleDerivative differentiates a polynomial.
func ExampleDerivative() {
	d, _ := calculus.Derivative("x**2 + 3*x", "x")
	fmt.Println(d)
	// Output: 2*x + 3
}

// ExampleIntegral integrates term by term and reports what it cannot do.
func ExampleIntegral() {
	F, _ := calculus.Integral("x^2 + 3*x", "x")
	fmt.Println(F)

	_, err := calculus.Integral("sin(x^2)", "x")
	fmt.Println(err)
	// Output:
	// x^3/3 + 3*x^2/2
	// calculus: unsupported expression: no rule for sin(x^2)
}
