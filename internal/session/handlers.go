// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/axiom"
	"github.com/katalvlaran/axiomic/calculus"
	"github.com/katalvlaran/axiomic/primes"
	"github.com/katalvlaran/axiomic/render"
	"github.com/katalvlaran/axiomic/semantic"
)

// handler runs one command on its (trimmed) argument string.
type handler func(s *Session, args string) (Reply, error)

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"isprime":   isPrime,
		"primes":    primesUpTo,
		"next":      nextPrime,
		"nth":       nthPrime,
		"factor":    factor,
		"gaps":      gaps,
		"twins":     twins,
		"goldbach":  goldbach,
		"calc":      calc,
		"compose":   compose,
		"legend":    legend,
		"derive":    derive,
		"integrate": integrate,
		"chart":     chart,
		"help":      help,
	}
}

// Verdict is the structured result of a primality check.
type Verdict struct {
	N     int64       `json:"n"`
	Prime bool        `json:"prime"`
	Axiom axiom.Entry `json:"axiom"`
}

// Calculus is the structured result of derive and integrate.
type Calculus struct {
	Expr     string `json:"expr"`
	Variable string `json:"variable"`
	Result   string `json:"result"`
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("session: %q: %w", s, axiomic.ErrBoundExceeded)
		}
		return 0, fmt.Errorf("session: %q is not an integer: %w", s, axiomic.ErrInvalidInput)
	}

	return v, nil
}

func isPrime(_ *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	ok := primes.IsPrime(n)

	return Reply{Command: "isprime", Text: render.Prime(n, ok), Data: Verdict{N: n, Prime: ok, Axiom: axiom.Project(n)}}, nil
}

func primesUpTo(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	ps, err := primes.PrimesUpTo(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "primes", Text: render.Ints(ps), Data: ps}, nil
}

func nextPrime(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	p, err := primes.NextPrime(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "next", Text: fmt.Sprintf("next prime after %d: %d", n, p), Data: p}, nil
}

func nthPrime(s *Session, args string) (Reply, error) {
	k, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	if k > int64(s.cfg.Limits.MaxNthPrime) {
		// int(k) would truncate on 32-bit targets
		return Reply{}, fmt.Errorf("session: nth %d (max=%d): %w", k, s.cfg.Limits.MaxNthPrime, axiomic.ErrBoundExceeded)
	}
	p, err := primes.NthPrime(int(k), s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "nth", Text: fmt.Sprintf("prime #%d is %d", k, p), Data: p}, nil
}

func factor(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	f, err := primes.Factorize(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "factor", Text: render.Factors(n, f), Data: f.Powers()}, nil
}

func gaps(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	g, err := primes.PrimeGaps(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "gaps", Text: render.Ints(g), Data: g}, nil
}

func twins(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	tw, err := primes.TwinPrimes(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "twins", Text: render.Twins(tw), Data: tw}, nil
}

func goldbach(s *Session, args string) (Reply, error) {
	n, err := parseInt(args)
	if err != nil {
		return Reply{}, err
	}
	g, err := primes.GoldbachPair(n, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "goldbach", Text: render.Goldbach(g), Data: g}, nil
}

func calc(_ *Session, args string) (Reply, error) {
	e, err := semantic.ParseExpr(args)
	if err != nil {
		return Reply{}, err
	}
	r, err := e.Eval()
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "calc", Text: render.Semantic(r), Data: r}, nil
}

func compose(_ *Session, args string) (Reply, error) {
	path, err := axiom.ParsePath(args)
	if err != nil {
		return Reply{}, err
	}
	tr := axiom.ComposeTrace(path)

	return Reply{Command: "compose", Text: render.Trace(tr), Data: tr}, nil
}

func legend(_ *Session, _ string) (Reply, error) {
	return Reply{Command: "legend", Text: strings.TrimSuffix(render.Legend(), "\n"), Data: axiom.Table()}, nil
}

// splitVariable separates "EXPR wrt v" into EXPR and v; the variable
// defaults to x.
func splitVariable(args string) (string, string) {
	if i := strings.LastIndex(args, " wrt "); i >= 0 {
		return strings.TrimSpace(args[:i]), strings.TrimSpace(args[i+len(" wrt "):])
	}

	return args, "x"
}

// calculusErr marks malformed input as invalid so it is rendered as such.
func calculusErr(op string, err error) error {
	if errors.Is(err, calculus.ErrParse) || errors.Is(err, calculus.ErrVariable) {
		return fmt.Errorf("session: %s: %w: %w", op, axiomic.ErrInvalidInput, err)
	}

	return fmt.Errorf("session: %s: %w", op, err)
}

func derive(s *Session, args string) (Reply, error) {
	expr, v := splitVariable(args)
	d, err := s.engine.Derivative(expr, v)
	if err != nil {
		return Reply{}, calculusErr("derive", err)
	}

	return Reply{Command: "derive", Text: render.Derivative(expr, v, d), Data: Calculus{Expr: expr, Variable: v, Result: d}}, nil
}

func integrate(s *Session, args string) (Reply, error) {
	expr, v := splitVariable(args)
	F, err := s.engine.Integral(expr, v)
	if err != nil {
		return Reply{}, calculusErr("integrate", err)
	}

	return Reply{Command: "integrate", Text: render.Integral(expr, v, F), Data: Calculus{Expr: expr, Variable: v, Result: F}}, nil
}

// chart draws the prime distribution; "chart N [W]" with W defaulting to
// a tenth of N.
func chart(s *Session, args string) (Reply, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return Reply{}, fmt.Errorf("session: chart wants N [WIDTH]: %w", axiomic.ErrInvalidInput)
	}
	n, err := parseInt(fields[0])
	if err != nil {
		return Reply{}, err
	}
	width := max(n/10, 1)
	if len(fields) == 2 {
		if width, err = parseInt(fields[1]); err != nil {
			return Reply{}, err
		}
	}
	bs, err := primes.Distribution(n, width, s.popts...)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Command: "chart", Text: render.BarChart(bs, s.copts...), Data: bs}, nil
}

func help(_ *Session, _ string) (Reply, error) {
	text := "commands: " + strings.Join(Commands(), ", ") +
		"\nor type an expression such as 5 + 6, 7 ÷ 2, NOT 5"

	return Reply{Command: "help", Text: text}, nil
}
