package semantic_test

import (
	"fmt"

	"github.com/katalvlaran/axiomic/semantic"
)

// ExampleApply shows the annotated result of an addition and a division.
func ExampleApply() {
	r, _ := semantic.Apply(semantic.Add, 5, 6)
	fmt.Println(r.Value, r.Axiom.Index, r.Axiom.Label, r.IsPrime)

	d, _ := semantic.Apply(semantic.Div, 7, 2)
	fmt.Println(d.Quotient, d.Value, d.Axiom.Label)
	// Output:
	// 11 0 Void – potential true
	// 3.5 3 Triad – transformation
}

// ExampleParseExpr evaluates a pad line.
func ExampleParseExpr() {
	e, _ := semantic.ParseExpr("NOT 5")
	r, _ := e.Eval()
	fmt.Println(e, "=", r.Value, r.IsPrime)
	// Output:
	// NOT 5 = -6 false
}
