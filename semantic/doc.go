// Package semantic wraps integer arithmetic and bitwise operators with the
// axiom projector and a primality annotation.
//
// Every operation returns a Result carrying the raw numeric value, the
// projected axiom.Entry and whether the value is prime:
//
//	r, err := semantic.Apply(semantic.Add, 5, 6)
//	// r.Value == 11, r.Axiom.Index == 0, r.IsPrime == true
//
// Operators:
//
//	Add Sub Mul Pow   raw integer result; overflow → axiomic.ErrBoundExceeded
//	Div               real quotient kept in Result.Quotient; axiom and
//	                  primality use the quotient truncated toward zero
//	Mod               truncating remainder (Go %), not the axiom modulo
//	And Or            two's-complement bitwise
//	Not               bitwise complement, ^a == -(a+1); negative, so never prime
//
// Div and Mod fail with axiomic.ErrDivisionByZero when b == 0.
//
// ParseExpr turns a calculator-pad line ("7 ÷ 2", "NOT 5", "2 ** 10") into an
// Expr that evaluates through Apply.
package semantic
