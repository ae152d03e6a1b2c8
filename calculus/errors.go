// SPDX-License-Identifier: MIT

package calculus

import "errors"

var (
	// ErrParse indicates the expression is not valid in the accepted grammar.
	ErrParse = errors.New("calculus: parse error")

	// ErrVariable indicates the variable name is empty or not an identifier.
	ErrVariable = errors.New("calculus: invalid variable")

	// ErrUnsupported indicates no closed-form rule applies (integration only).
	ErrUnsupported = errors.New("calculus: unsupported expression")

	// ErrUndefined indicates evaluation hit an unbound variable or a non-finite value.
	ErrUndefined = errors.New("calculus: undefined value")
)
