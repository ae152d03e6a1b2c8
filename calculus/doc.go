// Package calculus is the symbolic-math collaborator of the calculator: it
// differentiates, integrates and evaluates a typed expression with respect
// to a named variable.
//
// Grammar
//
//	expr    := term (("+" | "-") term)*
//	term    := unary (("*" | "/") unary)*
//	unary   := ("+" | "-") unary | power
//	power   := primary (("^" | "**") unary)?      right-associative
//	primary := number | ident | ident "(" expr ")" | "(" expr ")"
//
//	Functions: sin cos tan exp ln log sqrt (log is the natural logarithm).
//	Numbers are exact rationals: "1.5" is 3/2.
//
// Results
//
//	Derivative and Integral return a formatted expression ("2*x + 3",
//	"x^3/3 + 3*x^2/2"); the integration constant is left to the caller.
//	Failures are sentinel errors: ErrParse, ErrVariable, ErrUnsupported,
//	ErrUndefined.
//
// Integration covers linearity, constant factors, the power rule
// (x^-1 → ln(x)) and sin/cos/tan/exp/ln/sqrt/powers of linear arguments.
// Anything else is ErrUnsupported rather than a guess.
package calculus
