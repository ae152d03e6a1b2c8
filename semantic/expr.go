// SPDX-License-Identifier: MIT

package semantic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/axiomic"
)

// Expr is a single parsed calculator-pad operation.
type Expr struct {
	Op Op
	A  int64
	B  int64
}

// Eval applies the expression.
func (e Expr) Eval() (Result, error) { return Apply(e.Op, e.A, e.B) }

// String renders the expression in display form ("5 + 6", "NOT 5").
func (e Expr) String() string {
	if e.Op.Unary() {
		return fmt.Sprintf("%v %d", e.Op, e.A)
	}

	return fmt.Sprintf("%d %v %d", e.A, e.Op, e.B)
}

// ParseExpr parses "<int> <op> <int>" or "<unary-op> <int>". Spaces around
// the operator are optional for symbols ("5+6", "2**10", "7÷2") and
// required for word operators ("7 mod 3", "NOT 5").
func ParseExpr(line string) (Expr, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Expr{}, fmt.Errorf("semantic: ParseExpr: empty input: %w", axiomic.ErrInvalidInput)
	}

	// unary form
	if word, rest := leadingOperator(s); word != "" {
		if op, err := ParseOp(word); err == nil && op.Unary() {
			a, err := parseOperand(rest)
			if err != nil {
				return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): %w", line, err)
			}
			return Expr{Op: op, A: a}, nil
		}
	}

	a, rest, err := scanInt(s)
	if err != nil {
		return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): %w", line, err)
	}
	word, rest := leadingOperator(strings.TrimLeftFunc(rest, unicode.IsSpace))
	if word == "" {
		return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): missing operator: %w", line, axiomic.ErrInvalidInput)
	}
	op, err := ParseOp(word)
	if err != nil {
		return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): %w", line, err)
	}
	if op.Unary() {
		return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): %v takes one operand: %w", line, op, axiomic.ErrInvalidInput)
	}
	b, err := parseOperand(rest)
	if err != nil {
		return Expr{}, fmt.Errorf("semantic: ParseExpr(%q): %w", line, err)
	}

	return Expr{Op: op, A: a, B: b}, nil
}

// leadingOperator splits off an operator token: a run of letters, "**",
// or a single non-digit, non-space rune.
func leadingOperator(s string) (string, string) {
	if s == "" {
		return "", s
	}
	if strings.HasPrefix(s, "**") {
		return "**", s[2:]
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsLetter(r) {
		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
		if end < 0 {
			end = len(s)
		}
		return s[:end], s[end:]
	}
	if unicode.IsDigit(r) || unicode.IsSpace(r) {
		return "", s
	}

	return s[:size], s[size:]
}

// scanInt reads an optionally signed integer prefix.
func scanInt(s string) (int64, string, error) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, s, fmt.Errorf("expected integer at %q: %w", s, axiomic.ErrInvalidInput)
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, s, fmt.Errorf("integer %q out of range: %w", s[:end], axiomic.ErrBoundExceeded)
	}

	return v, s[end:], nil
}

// parseOperand reads exactly one integer, surrounded by optional spaces.
func parseOperand(s string) (int64, error) {
	v, rest, err := scanInt(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("trailing input %q: %w", rest, axiomic.ErrInvalidInput)
	}

	return v, nil
}
