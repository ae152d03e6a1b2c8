// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/axiomic/axiom"
	"github.com/katalvlaran/axiomic/primes"
	"github.com/katalvlaran/axiomic/semantic"
)

// Semantic renders an operation and the axiom its value lands on.
func Semantic(r semantic.Result) string {
	var b strings.Builder
	switch {
	case r.Op.Unary():
		fmt.Fprintf(&b, "%s %d = %d", r.Op, r.A, r.Value)
	case r.Op == semantic.Div:
		fmt.Fprintf(&b, "%d %s %d = %.2f", r.A, r.Op, r.B, r.Quotient)
	default:
		fmt.Fprintf(&b, "%d %s %d = %d", r.A, r.Op, r.B, r.Value)
	}
	fmt.Fprintf(&b, "\n→ %s", entry(r.Axiom))
	if r.IsPrime {
		b.WriteString(" (prime)")
	}

	return b.String()
}

func entry(e axiom.Entry) string {
	return fmt.Sprintf("Axiom %d: %s %s", e.Index, e.Glyph, e.Label)
}

// Trace renders each step as "<glyph> <value> → <label>", joined by " →→→ ".
func Trace(t axiom.Trace) string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = fmt.Sprintf("%s %d → %s", s.Entry.Glyph, s.Value, s.Entry.Label)
	}

	return strings.Join(parts, " →→→ ")
}

// Legend lists the axiom table, one entry per line.
func Legend() string {
	var b strings.Builder
	for _, e := range axiom.Table() {
		fmt.Fprintf(&b, "%2d: %s %s\n", e.Index, e.Glyph, e.Label)
	}

	return b.String()
}

// Ints joins xs with ", "; an empty slice renders as "none".
func Ints(xs []int64) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}

	return strings.Join(parts, ", ")
}

// Factors renders n = p1^e1 × p2 × ...; a prime input says so instead.
func Factors(n int64, f primes.FactorList) string {
	if f.AlreadyPrime() {
		return fmt.Sprintf("%d is already prime", n)
	}
	pw := f.Powers()
	parts := make([]string, len(pw))
	for i, p := range pw {
		if p.Exp == 1 {
			parts[i] = strconv.FormatInt(p.Prime, 10)
			continue
		}
		parts[i] = fmt.Sprintf("%d^%d", p.Prime, p.Exp)
	}

	return fmt.Sprintf("%d = %s", n, strings.Join(parts, " × "))
}

// Twins renders pairs as "(3, 5), (5, 7)".
func Twins(ps []primes.TwinPair) string {
	if len(ps) == 0 {
		return "no twin primes"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("(%d, %d)", p.P, p.Q)
	}

	return strings.Join(parts, ", ")
}

// Goldbach renders "N = P + Q".
func Goldbach(g primes.Goldbach) string {
	return fmt.Sprintf("%d = %d + %d", g.N, g.P, g.Q)
}

// Prime renders a primality verdict with the number's axiom.
func Prime(n int64, prime bool) string {
	verdict := "is not prime"
	if prime {
		verdict = "is prime"
	}

	return fmt.Sprintf("%d %s\n→ %s", n, verdict, entry(axiom.Project(n)))
}

// Derivative renders "d/dx(expr) = result".
func Derivative(expr, variable, result string) string {
	return fmt.Sprintf("d/d%s(%s) = %s", variable, expr, result)
}

// Integral renders "∫ expr dx = result + C".
func Integral(expr, variable, result string) string {
	return fmt.Sprintf("∫ %s d%s = %s + C", expr, variable, result)
}
