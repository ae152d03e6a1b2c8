// SPDX-License-Identifier: MIT

package semantic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/axiomic"
)

// Op is an arithmetic or bitwise operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
	Mod
	And
	Or
	Not
)

// opSymbols holds the display symbol of each operator.
var opSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "×",
	Div: "÷",
	Pow: "^",
	Mod: "mod",
	And: "AND",
	Or:  "OR",
	Not: "NOT",
}

// opAliases maps every accepted spelling (lower-cased) to its operator.
var opAliases = map[string]Op{
	"+": Add, "add": Add, "plus": Add,
	"-": Sub, "−": Sub, "sub": Sub, "minus": Sub,
	"*": Mul, "×": Mul, "x": Mul, "mul": Mul, "times": Mul,
	"/": Div, "÷": Div, "div": Div,
	"^": Pow, "**": Pow, "pow": Pow,
	"%": Mod, "mod": Mod,
	"&": And, "and": And,
	"|": Or, "or": Or,
	"~": Not, "!": Not, "not": Not,
}

// String returns the display symbol.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opSymbols) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opSymbols[o]
}

// MarshalText encodes the display symbol, so JSON shows "÷" rather than 3.
func (o Op) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("semantic: marshal %v: unknown operator: %w", o, axiomic.ErrInvalidInput)
	}

	return []byte(opSymbols[o]), nil
}

// UnmarshalText accepts anything ParseOp does.
func (o *Op) UnmarshalText(b []byte) error {
	op, err := ParseOp(string(b))
	if err != nil {
		return err
	}
	*o = op

	return nil
}

// Unary reports whether the operator takes a single operand.
func (o Op) Unary() bool { return o == Not }

// Valid reports whether o is one of the declared operators.
func (o Op) Valid() bool { return o >= Add && o <= Not }

// Ops returns every operator in declaration order.
func Ops() []Op {
	return []Op{Add, Sub, Mul, Div, Pow, Mod, And, Or, Not}
}

// ParseOp resolves a symbol or word ("+", "×", "**", "mod", "AND", "~") to an Op.
func ParseOp(s string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return 0, fmt.Errorf("semantic: ParseOp(%q): unknown operator: %w", s, axiomic.ErrInvalidInput)
}
